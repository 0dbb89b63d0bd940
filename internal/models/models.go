// Package models содержит доменные типы сервиса аналитики коммерческих районов.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound возвращается хранилищами, когда запись не найдена.
var ErrNotFound = errors.New("record not found")

// Period представляет отчетный период (год, квартал).
type Period struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

func (p Period) String() string {
	return fmt.Sprintf("%d-Q%d", p.Year, p.Quarter)
}

// GeoPoint представляет географические координаты
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// District представляет коммерческий район в Elasticsearch.
// Оценки рассчитываются внешним процессом загрузки и здесь только читаются.
type District struct {
	Code                    int64     `json:"code"`
	Name                    string    `json:"name"`
	Coordinates             GeoPoint  `json:"coordinates"`
	RegionCode              int64     `json:"region_code"`
	RegionName              string    `json:"region_name"`
	SubRegionCode           int64     `json:"sub_region_code"`
	SubRegionName           string    `json:"sub_region_name"`
	AreaSize                float64   `json:"area_size"`
	CommercialScore         float64   `json:"commercial_score"`
	SalesScore              float64   `json:"sales_score"`
	ResidentPopulationScore float64   `json:"resident_population_score"`
	FloatingPopulationScore float64   `json:"floating_population_score"`
	DiversityScore          float64   `json:"diversity_score"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// DistrictView - представление района для API.
type DistrictView struct {
	Code                    int64   `json:"commercialDistrictCode"`
	Name                    string  `json:"commercialDistrictName"`
	Latitude                float64 `json:"latitude"`
	Longitude               float64 `json:"longitude"`
	RegionCode              int64   `json:"guCode"`
	RegionName              string  `json:"guName"`
	SubRegionCode           int64   `json:"dongCode"`
	SubRegionName           string  `json:"dongName"`
	AreaSize                float64 `json:"areaSize"`
	CommercialScore         float64 `json:"commercialDistrictScore"`
	SalesScore              float64 `json:"salesScore"`
	ResidentPopulationScore float64 `json:"residentPopulationScore"`
	FloatingPopulationScore float64 `json:"floatingPopulationScore"`
	DiversityScore          float64 `json:"rdiScore"`
}

// ServiceScoreView - представление района с оценками по конкретному виду услуг.
// Нулевое значение означает отсутствие района или продаж.
type ServiceScoreView struct {
	Name                    string  `json:"commercialDistrictName"`
	Latitude                float64 `json:"latitude"`
	Longitude               float64 `json:"longitude"`
	RegionCode              int64   `json:"guCode"`
	RegionName              string  `json:"guName"`
	SubRegionCode           int64   `json:"dongCode"`
	SubRegionName           string  `json:"dongName"`
	AreaSize                float64 `json:"areaSize"`
	CommercialScore         float64 `json:"commercialDistrictScore"`
	SalesScore              float64 `json:"salesScore"`
	ResidentPopulationScore float64 `json:"residentPopulationScore"`
	FloatingPopulationScore float64 `json:"floatingPopulationScore"`
	DiversityScore          float64 `json:"rdiScore"`
	MajorCategoryCode       string  `json:"serviceBigCategory"`
	MajorCategoryName       string  `json:"serviceBigCategoryName"`
	MiddleCategoryCode      string  `json:"serviceMcategory"`
	MiddleCategoryName      string  `json:"serviceMcategoryName"`
	ServiceCode             string  `json:"serviceCode"`
	ServiceName             string  `json:"serviceCodeName"`
}

// MarshalJSON кодирует пустое представление как {}, а заполненное - со всеми полями, включая нулевые.
func (v ServiceScoreView) MarshalJSON() ([]byte, error) {
	if v == (ServiceScoreView{}) {
		return []byte("{}"), nil
	}
	type plain ServiceScoreView
	return json.Marshal(plain(v))
}

// ValueScore - пара "сырое значение / нормированная оценка".
type ValueScore[T int64 | float64] struct {
	Value T       `json:"value"`
	Score float64 `json:"score"`
}

// RankEntry - итоговая строка рейтинга района.
type RankEntry struct {
	Code                  int64               `json:"cdCode"`
	Name                  string              `json:"name"`
	TotalScore            ValueScore[int64]   `json:"totalScore"`
	Sales                 ValueScore[float64] `json:"sales"`
	BusinessDiversity     ValueScore[int64]   `json:"businessDiversity"`
	FootTraffic           ValueScore[int64]   `json:"footTraffic"`
	ResidentialPopulation ValueScore[int64]   `json:"residentialPopulation"`
}

// Service представляет вид услуг из справочника продаж в PostgreSQL
type Service struct {
	Code              string `json:"serviceCode"`
	Name              string `json:"serviceName"`
	MajorCategoryCode string `json:"majorCategoryCode"`
	MajorCategoryName string `json:"majorCategoryName"`
}
