package ranking

import (
	"context"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

type fakeDistricts struct {
	districts []models.District
	err       error
}

func (f *fakeDistricts) GetDistrict(_ context.Context, code int64) (*models.District, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.districts {
		if f.districts[i].Code == code {
			return &f.districts[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeDistricts) DistrictsByRegion(_ context.Context, regionCode int64) ([]models.District, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.District
	for _, d := range f.districts {
		if d.RegionCode == regionCode {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDistricts) AllDistricts(context.Context) ([]models.District, error) {
	return f.districts, f.err
}

type fakeMetrics struct {
	sales      map[int64]models.SalesRecord
	stores     map[int64]int64
	floating   map[int64]int64
	resident   map[int64]int64
	rankTable  []models.RankTableEntry
	err        error
	tableCalls int
	periods    []models.Period
}

func (f *fakeMetrics) FindSales(_ context.Context, period models.Period, district int64, _ string) (*models.SalesRecord, error) {
	f.periods = append(f.periods, period)
	if f.err != nil {
		return nil, f.err
	}
	rec, ok := f.sales[district]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeMetrics) FindStoreCountTotal(_ context.Context, period models.Period, district int64) (*models.StoreCount, error) {
	total, ok := f.stores[district]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &models.StoreCount{DistrictCode: district, Period: period, Total: total}, nil
}

func (f *fakeMetrics) FindFloatingPopulation(_ context.Context, district int64, period models.Period) (*models.PopulationRecord, error) {
	total, ok := f.floating[district]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &models.PopulationRecord{DistrictCode: district, Period: period, Total: total}, nil
}

func (f *fakeMetrics) FindResidentPopulation(_ context.Context, district int64, period models.Period) (*models.PopulationRecord, error) {
	total, ok := f.resident[district]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &models.PopulationRecord{DistrictCode: district, Period: period, Total: total}, nil
}

func (f *fakeMetrics) FindRankTable(context.Context, models.Period, string) ([]models.RankTableEntry, error) {
	f.tableCalls++
	return f.rankTable, nil
}
