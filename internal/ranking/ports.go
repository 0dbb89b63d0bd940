package ranking

import (
	"context"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

// DistrictReader читает документы районов.
// GetDistrict возвращает models.ErrNotFound, если района нет.
type DistrictReader interface {
	GetDistrict(ctx context.Context, code int64) (*models.District, error)
	DistrictsByRegion(ctx context.Context, regionCode int64) ([]models.District, error)
	AllDistricts(ctx context.Context) ([]models.District, error)
}

// MetricsReader читает квартальные показатели районов.
// Методы, возвращающие одну запись, сообщают об отсутствии через models.ErrNotFound.
type MetricsReader interface {
	FindSales(ctx context.Context, period models.Period, district int64, serviceCode string) (*models.SalesRecord, error)
	FindStoreCountTotal(ctx context.Context, period models.Period, district int64) (*models.StoreCount, error)
	FindFloatingPopulation(ctx context.Context, district int64, period models.Period) (*models.PopulationRecord, error)
	FindResidentPopulation(ctx context.Context, district int64, period models.Period) (*models.PopulationRecord, error)
	FindRankTable(ctx context.Context, period models.Period, serviceCode string) ([]models.RankTableEntry, error)
}
