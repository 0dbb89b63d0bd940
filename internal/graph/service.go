package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/akozadaev/commdist_analytics/internal/cache"
	"github.com/akozadaev/commdist_analytics/internal/models"
	"github.com/akozadaev/commdist_analytics/internal/observability"
)

// SalesReader - порт чтения продаж из хранилища.
type SalesReader interface {
	FindSalesByDistrictAndCategory(ctx context.Context, year int, district int64, category string) ([]models.SalesRecord, error)
	FindQuarterlySales(ctx context.Context, district int64, category string, years []int) ([]models.QuarterlySales, error)
}

// Виды графиков продаж.
const (
	KindDay       = "day"
	KindTime      = "time"
	KindAge       = "age"
	KindRatio     = "ratio"
	KindQuarterly = "quarterly"
)

const (
	cacheFamily     = "salesGraph"
	ratioMetric     = "salesRatioGraph"
	quarterlyMetric = "quarterlyGraph"
)

// ErrUnknownKind возвращается для неподдерживаемого вида графика.
var ErrUnknownKind = errors.New("unknown graph kind")

// Service отдает графики продаж района через кэш производных данных.
type Service struct {
	sales    SalesReader
	cache    *cache.Derived
	category string
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewService создает сервис графиков для крупной категории услуг category.
func NewService(sales SalesReader, derived *cache.Derived, category string, metrics *observability.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sales:    sales,
		cache:    derived,
		category: category,
		metrics:  metrics,
		logger:   logger,
	}
}

// Graph возвращает JSON графика вида kind за год year.
// Отсутствие данных дает (nil, nil); сбой хранилища - (nil, err) с записью в лог и метрики.
func (s *Service) Graph(ctx context.Context, kind string, district int64, year int) (json.RawMessage, error) {
	var (
		metric  string
		compute cache.ComputeFunc
	)

	switch kind {
	case KindDay, KindTime, KindAge:
		dim := dimensionOf(kind)
		metric = dim.Name
		compute = func(ctx context.Context) (any, error) {
			records, err := s.sales.FindSalesByDistrictAndCategory(ctx, year, district, s.category)
			if err != nil {
				return nil, err
			}
			if len(records) == 0 {
				return nil, ErrNoData
			}
			return Fold(dim, records)
		}
	case KindRatio:
		metric = ratioMetric
		compute = func(ctx context.Context) (any, error) {
			records, err := s.sales.FindSalesByDistrictAndCategory(ctx, year, district, s.category)
			if err != nil {
				return nil, err
			}
			return MixPayload(year, records)
		}
	case KindQuarterly:
		metric = quarterlyMetric
		compute = func(ctx context.Context) (any, error) {
			points, err := s.sales.FindQuarterlySales(ctx, district, s.category, []int{year - 1, year})
			if err != nil {
				return nil, err
			}
			return QuarterlyPayload(year, points), nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	key := cache.Key{Family: cacheFamily, Name: metric, District: district, Year: year}
	raw, err := s.cache.GetOrCompute(ctx, key, compute)
	switch {
	case errors.Is(err, ErrNoData):
		return nil, nil
	case err != nil:
		s.metrics.UpstreamFailure(metric)
		s.logger.Error("failed to build sales graph",
			zap.String("graph", metric),
			zap.Int64("district", district),
			zap.Int("year", year),
			zap.Error(err))
		return nil, fmt.Errorf("failed to build %s for district %d: %w", metric, district, err)
	}

	return raw, nil
}

// Summary возвращает средние продажи района за год; при сбое - нулевую сводку и ошибку.
func (s *Service) Summary(ctx context.Context, district int64, year int) (models.SalesSummary, error) {
	records, err := s.sales.FindSalesByDistrictAndCategory(ctx, year, district, s.category)
	if err != nil {
		s.metrics.UpstreamFailure("salesSummary")
		s.logger.Error("failed to load sales summary", zap.Int64("district", district), zap.Error(err))
		return models.SalesSummary{}, fmt.Errorf("failed to load sales for district %d: %w", district, err)
	}
	return Summarize(records), nil
}

// Invalidate удаляет все графики района за год из кэша.
func (s *Service) Invalidate(ctx context.Context, district int64, year int) error {
	keys := make([]cache.Key, 0, 5)
	for _, metric := range []string{Daily.Name, Hourly.Name, Age.Name, ratioMetric, quarterlyMetric} {
		keys = append(keys, cache.Key{Family: cacheFamily, Name: metric, District: district, Year: year})
	}

	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Error("failed to invalidate sales graphs", zap.Int64("district", district), zap.Error(err))
		return err
	}
	s.logger.Info("sales graphs invalidated", zap.Int64("district", district), zap.Int("year", year))
	return nil
}

func dimensionOf(kind string) Dimension {
	switch kind {
	case KindTime:
		return Hourly
	case KindAge:
		return Age
	default:
		return Daily
	}
}
