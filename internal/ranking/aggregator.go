// Package ranking формирует представления и рейтинги коммерческих районов.
package ranking

import (
	"sort"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

// TopLimit - размер топа районов по суммарной оценке.
const TopLimit = 10

// ToView переводит документ района в представление API.
func ToView(d models.District) models.DistrictView {
	return models.DistrictView{
		Code:                    d.Code,
		Name:                    d.Name,
		Latitude:                d.Coordinates.Lat,
		Longitude:               d.Coordinates.Lon,
		RegionCode:              d.RegionCode,
		RegionName:              d.RegionName,
		SubRegionCode:           d.SubRegionCode,
		SubRegionName:           d.SubRegionName,
		AreaSize:                d.AreaSize,
		CommercialScore:         d.CommercialScore,
		SalesScore:              d.SalesScore,
		ResidentPopulationScore: d.ResidentPopulationScore,
		FloatingPopulationScore: d.FloatingPopulationScore,
		DiversityScore:          d.DiversityScore,
	}
}

// MapToView переводит список документов в представления, сохраняя порядок.
func MapToView(districts []models.District) []models.DistrictView {
	views := make([]models.DistrictView, 0, len(districts))
	for _, d := range districts {
		views = append(views, ToView(d))
	}
	return views
}

// TopByScore возвращает не более limit районов с наибольшей суммарной оценкой.
// При равных оценках сохраняется входной порядок.
func TopByScore(districts []models.District, limit int) []models.DistrictView {
	sorted := make([]models.District, len(districts))
	copy(sorted, districts)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CommercialScore > sorted[j].CommercialScore
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return MapToView(sorted)
}

// ServiceView объединяет район с оценками его продаж по виду услуг.
// Суммарная оценка района берется из переданного значения commercialScore.
func ServiceView(d models.District, sales *models.SalesRecord, commercialScore float64) models.ServiceScoreView {
	return models.ServiceScoreView{
		Name:                    d.Name,
		Latitude:                d.Coordinates.Lat,
		Longitude:               d.Coordinates.Lon,
		RegionCode:              d.RegionCode,
		RegionName:              d.RegionName,
		SubRegionCode:           d.SubRegionCode,
		SubRegionName:           d.SubRegionName,
		AreaSize:                d.AreaSize,
		CommercialScore:         commercialScore,
		SalesScore:              sales.SalesScore,
		ResidentPopulationScore: d.ResidentPopulationScore,
		FloatingPopulationScore: d.FloatingPopulationScore,
		DiversityScore:          d.DiversityScore,
		MajorCategoryCode:       sales.MajorCategoryCode,
		MajorCategoryName:       sales.MajorCategoryName,
		MiddleCategoryCode:      sales.MiddleCategoryCode,
		MiddleCategoryName:      sales.MiddleCategoryName,
		ServiceCode:             sales.ServiceCode,
		ServiceName:             sales.ServiceName,
	}
}
