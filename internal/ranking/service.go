package ranking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/akozadaev/commdist_analytics/internal/models"
	"github.com/akozadaev/commdist_analytics/internal/observability"
)

// Service предоставляет запросы по районам и рейтинги.
// Сбой хранилища не прерывает запрос: метод возвращает пустой результат, который можно отдать
// клиенту, и ошибку с причиной, уже записанной в лог и метрики.
type Service struct {
	districts DistrictReader
	metrics   MetricsReader
	engine    *Engine
	obs       *observability.Metrics
	logger    *zap.Logger
}

func NewService(districts DistrictReader, metrics MetricsReader, obs *observability.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		districts: districts,
		metrics:   metrics,
		engine:    NewEngine(metrics),
		obs:       obs,
		logger:    logger,
	}
}

// District возвращает район по коду или models.ErrNotFound.
func (s *Service) District(ctx context.Context, code int64) (*models.DistrictView, error) {
	d, err := s.districts.GetDistrict(ctx, code)
	if errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, s.fail("district", err, zap.Int64("district", code))
	}
	view := ToView(*d)
	return &view, nil
}

// AllDistricts возвращает все районы.
func (s *Service) AllDistricts(ctx context.Context) ([]models.DistrictView, error) {
	districts, err := s.districts.AllDistricts(ctx)
	if err != nil {
		return []models.DistrictView{}, s.fail("allDistricts", err)
	}
	return MapToView(districts), nil
}

// DistrictsByRegion возвращает районы административного округа.
func (s *Service) DistrictsByRegion(ctx context.Context, regionCode int64) ([]models.DistrictView, error) {
	districts, err := s.districts.DistrictsByRegion(ctx, regionCode)
	if err != nil {
		return []models.DistrictView{}, s.fail("districtsByRegion", err, zap.Int64("region", regionCode))
	}
	return MapToView(districts), nil
}

// TopDistricts возвращает TopLimit районов города по суммарной оценке.
func (s *Service) TopDistricts(ctx context.Context) ([]models.DistrictView, error) {
	districts, err := s.districts.AllDistricts(ctx)
	if err != nil {
		return []models.DistrictView{}, s.fail("topDistricts", err)
	}
	return TopByScore(districts, TopLimit), nil
}

// TopDistrictsByRegion возвращает TopLimit районов округа по суммарной оценке.
func (s *Service) TopDistrictsByRegion(ctx context.Context, regionCode int64) ([]models.DistrictView, error) {
	districts, err := s.districts.DistrictsByRegion(ctx, regionCode)
	if err != nil {
		return []models.DistrictView{}, s.fail("topDistrictsByRegion", err, zap.Int64("region", regionCode))
	}
	return TopByScore(districts, TopLimit), nil
}

// ServiceScore возвращает оценки района по виду услуг.
// Если нет района или его продаж, возвращается пустое представление.
func (s *Service) ServiceScore(ctx context.Context, code int64, serviceCode string, period models.Period) (models.ServiceScoreView, error) {
	d, err := optional(s.districts.GetDistrict(ctx, code))
	if err != nil {
		return models.ServiceScoreView{}, s.fail("serviceScore", err, zap.Int64("district", code))
	}
	if d == nil {
		return models.ServiceScoreView{}, nil
	}

	sales, err := optional(s.metrics.FindSales(ctx, period, code, serviceCode))
	if err != nil {
		return models.ServiceScoreView{}, s.fail("serviceScore", err, zap.Int64("district", code))
	}
	if sales == nil {
		return models.ServiceScoreView{}, nil
	}

	return ServiceView(*d, sales, d.CommercialScore), nil
}

// RegionServiceScores возвращает оценки по виду услуг для районов округа.
// Районы без продаж по этому виду услуг пропускаются.
func (s *Service) RegionServiceScores(ctx context.Context, regionCode int64, serviceCode string, period models.Period) ([]models.ServiceScoreView, error) {
	views := []models.ServiceScoreView{}

	districts, err := s.districts.DistrictsByRegion(ctx, regionCode)
	if err != nil {
		return views, s.fail("regionServiceScores", err, zap.Int64("region", regionCode))
	}

	for _, d := range districts {
		sales, err := optional(s.metrics.FindSales(ctx, period, d.Code, serviceCode))
		if err != nil {
			return []models.ServiceScoreView{}, s.fail("regionServiceScores", err, zap.Int64("region", regionCode), zap.Int64("district", d.Code))
		}
		if sales == nil {
			continue
		}
		views = append(views, ServiceView(d, sales, sales.ServiceTotalScore))
	}

	return views, nil
}

// DistrictRank возвращает рейтинг районов округа по виду услуг за период.
func (s *Service) DistrictRank(ctx context.Context, regionCode int64, serviceCode string, period models.Period) ([]models.RankEntry, error) {
	districts, err := s.districts.DistrictsByRegion(ctx, regionCode)
	if err != nil {
		return []models.RankEntry{}, s.fail("districtRank", err, zap.Int64("region", regionCode))
	}

	entries, err := s.engine.Rank(ctx, MapToView(districts), serviceCode, period)
	if err != nil {
		return []models.RankEntry{}, s.fail("districtRank", err, zap.Int64("region", regionCode), zap.String("service", serviceCode))
	}
	return entries, nil
}

func (s *Service) fail(op string, err error, fields ...zap.Field) error {
	s.obs.UpstreamFailure(op)
	s.logger.Error(op+" failed", append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", op, err)
}
