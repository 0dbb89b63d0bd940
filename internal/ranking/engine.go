package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

// Engine собирает рейтинг районов из продаж, числа точек, населения и таблицы мест.
type Engine struct {
	metrics MetricsReader
}

func NewEngine(metrics MetricsReader) *Engine {
	return &Engine{metrics: metrics}
}

// Rank возвращает строку рейтинга для каждого района в исходном порядке.
// Отсутствующие записи заменяются нулями; ошибка возвращается только при сбое хранилища.
func (e *Engine) Rank(ctx context.Context, districts []models.DistrictView, serviceCode string, period models.Period) ([]models.RankEntry, error) {
	entries := make([]models.RankEntry, 0, len(districts))
	if len(districts) == 0 {
		return entries, nil
	}

	table, err := e.metrics.FindRankTable(ctx, period, serviceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load rank table for %s/%s: %w", period, serviceCode, err)
	}
	ranks := indexRanks(table)

	for _, d := range districts {
		entry, err := e.rankOne(ctx, d, serviceCode, period, ranks)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (e *Engine) rankOne(ctx context.Context, d models.DistrictView, serviceCode string, period models.Period, ranks map[int64]int64) (models.RankEntry, error) {
	sales, err := optional(e.metrics.FindSales(ctx, period, d.Code, serviceCode))
	if err != nil {
		return models.RankEntry{}, fmt.Errorf("failed to load sales for district %d: %w", d.Code, err)
	}
	stores, err := optional(e.metrics.FindStoreCountTotal(ctx, period, d.Code))
	if err != nil {
		return models.RankEntry{}, fmt.Errorf("failed to load store count for district %d: %w", d.Code, err)
	}
	floating, err := optional(e.metrics.FindFloatingPopulation(ctx, d.Code, period))
	if err != nil {
		return models.RankEntry{}, fmt.Errorf("failed to load floating population for district %d: %w", d.Code, err)
	}
	resident, err := optional(e.metrics.FindResidentPopulation(ctx, d.Code, period))
	if err != nil {
		return models.RankEntry{}, fmt.Errorf("failed to load resident population for district %d: %w", d.Code, err)
	}

	entry := models.RankEntry{
		Code:                  d.Code,
		Name:                  d.Name,
		TotalScore:            models.ValueScore[int64]{Value: ranks[d.Code]},
		BusinessDiversity:     models.ValueScore[int64]{Score: d.DiversityScore},
		FootTraffic:           models.ValueScore[int64]{Score: d.FloatingPopulationScore},
		ResidentialPopulation: models.ValueScore[int64]{Score: d.ResidentPopulationScore},
	}
	if sales != nil {
		entry.TotalScore.Score = sales.ServiceTotalScore
		entry.Sales = models.ValueScore[float64]{Value: sales.MonthlySales, Score: sales.SalesScore}
	}
	if stores != nil {
		entry.BusinessDiversity.Value = stores.Total
	}
	if floating != nil {
		entry.FootTraffic.Value = floating.Total
	}
	if resident != nil {
		entry.ResidentialPopulation.Value = resident.Total
	}

	return entry, nil
}

// indexRanks строит индекс "код района -> место"; при повторе кода побеждает первая запись.
func indexRanks(table []models.RankTableEntry) map[int64]int64 {
	ranks := make(map[int64]int64, len(table))
	for _, row := range table {
		if _, ok := ranks[row.DistrictCode]; !ok {
			ranks[row.DistrictCode] = row.Rank
		}
	}
	return ranks
}

// optional превращает models.ErrNotFound в отсутствующее значение.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
