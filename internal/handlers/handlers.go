// Package handlers содержит HTTP обработчики для REST API аналитики коммерческих районов.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/akozadaev/commdist_analytics/internal/graph"
	"github.com/akozadaev/commdist_analytics/internal/models"
)

// DistrictService - операции поиска и ранжирования районов.
type DistrictService interface {
	District(ctx context.Context, code int64) (*models.DistrictView, error)
	AllDistricts(ctx context.Context) ([]models.DistrictView, error)
	DistrictsByRegion(ctx context.Context, regionCode int64) ([]models.DistrictView, error)
	TopDistricts(ctx context.Context) ([]models.DistrictView, error)
	TopDistrictsByRegion(ctx context.Context, regionCode int64) ([]models.DistrictView, error)
	ServiceScore(ctx context.Context, code int64, serviceCode string, period models.Period) (models.ServiceScoreView, error)
	RegionServiceScores(ctx context.Context, regionCode int64, serviceCode string, period models.Period) ([]models.ServiceScoreView, error)
	DistrictRank(ctx context.Context, regionCode int64, serviceCode string, period models.Period) ([]models.RankEntry, error)
}

// SalesGraphs - графики и сводки продаж района.
type SalesGraphs interface {
	Graph(ctx context.Context, kind string, district int64, year int) (json.RawMessage, error)
	Summary(ctx context.Context, district int64, year int) (models.SalesSummary, error)
	Invalidate(ctx context.Context, district int64, year int) error
}

// ServiceDirectory - справочник видов услуг.
type ServiceDirectory interface {
	ListServices(ctx context.Context, period models.Period) ([]models.Service, error)
}

// Handlers содержит зависимости для обработки HTTP запросов.
// Сбои хранилищ уже залогированы сервисами, поэтому обработчики отдают безопасное пустое значение.
type Handlers struct {
	districts     DistrictService  // Районы и рейтинги (Elasticsearch + PostgreSQL)
	graphs        SalesGraphs      // Графики продаж через кэш
	services      ServiceDirectory // Справочник видов услуг (PostgreSQL)
	defaultPeriod models.Period    // Период, если клиент его не указал
	logger        *zap.Logger
}

// NewHandlers создает новый экземпляр Handlers.
func NewHandlers(districts DistrictService, graphs SalesGraphs, services ServiceDirectory, defaultPeriod models.Period, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		districts:     districts,
		graphs:        graphs,
		services:      services,
		defaultPeriod: defaultPeriod,
		logger:        logger,
	}
}

// GetDistrict обрабатывает GET запрос на получение района по коду.
// Эндпоинт: GET /api/districts/{code}
//
// @Summary      Получить район
// @Description  Возвращает коммерческий район с оценками по его коду
// @Tags         districts
// @Produce      json
// @Param        code  path      int  true  "Код коммерческого района"
// @Success      200   {object}  models.DistrictView
// @Failure      400   {object}  map[string]string  "Неверный код района"
// @Failure      404   {object}  map[string]string  "Район не найден"
// @Router       /api/districts/{code} [get]
func (h *Handlers) GetDistrict(w http.ResponseWriter, r *http.Request) {
	code, ok := pathInt(w, r, "code")
	if !ok {
		return
	}

	view, err := h.districts.District(r.Context(), code)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "District not found")
		return
	}
	if err != nil {
		h.writeJSON(w, nil)
		return
	}

	h.writeJSON(w, view)
}

// ListDistricts обрабатывает GET запрос на получение районов города или округа.
// Эндпоинт: GET /api/districts?regionCode=
//
// @Summary      Список районов
// @Description  Возвращает все районы или районы административного округа, если указан regionCode
// @Tags         districts
// @Produce      json
// @Param        regionCode  query     int  false  "Код административного округа"
// @Success      200         {array}   models.DistrictView
// @Failure      400         {object}  map[string]string  "Неверный код округа"
// @Router       /api/districts [get]
func (h *Handlers) ListDistricts(w http.ResponseWriter, r *http.Request) {
	region, hasRegion, ok := queryInt(w, r, "regionCode")
	if !ok {
		return
	}

	// Ошибка уже залогирована и учтена сервисом, а views при сбое - пустой список.
	var views []models.DistrictView
	if hasRegion {
		views, _ = h.districts.DistrictsByRegion(r.Context(), region)
	} else {
		views, _ = h.districts.AllDistricts(r.Context())
	}

	h.writeJSON(w, views)
}

// TopDistricts обрабатывает GET запрос на получение лучших районов по суммарной оценке.
// Эндпоинт: GET /api/districts/top?regionCode=
//
// @Summary      Лучшие районы
// @Description  Возвращает до 10 районов с наибольшей суммарной оценкой по городу или округу
// @Tags         districts
// @Produce      json
// @Param        regionCode  query     int  false  "Код административного округа"
// @Success      200         {array}   models.DistrictView
// @Failure      400         {object}  map[string]string  "Неверный код округа"
// @Router       /api/districts/top [get]
func (h *Handlers) TopDistricts(w http.ResponseWriter, r *http.Request) {
	region, hasRegion, ok := queryInt(w, r, "regionCode")
	if !ok {
		return
	}

	// Сбой уже учтен сервисом, как в ListDistricts.
	var views []models.DistrictView
	if hasRegion {
		views, _ = h.districts.TopDistrictsByRegion(r.Context(), region)
	} else {
		views, _ = h.districts.TopDistricts(r.Context())
	}

	h.writeJSON(w, views)
}

// GetServiceScore обрабатывает GET запрос на получение оценок района по виду услуг.
// Эндпоинт: GET /api/districts/{code}/service?serviceCode=
//
// @Summary      Оценки района по виду услуг
// @Description  Возвращает оценки района и продажи по виду услуг; пустой объект, если данных нет
// @Tags         districts
// @Produce      json
// @Param        code         path      int     true   "Код коммерческого района"
// @Param        serviceCode  query     string  true   "Код вида услуг"
// @Param        year         query     int     false  "Отчетный год"
// @Param        quarter      query     int     false  "Отчетный квартал"
// @Success      200          {object}  models.ServiceScoreView
// @Failure      400          {object}  map[string]string  "Неверный запрос"
// @Router       /api/districts/{code}/service [get]
func (h *Handlers) GetServiceScore(w http.ResponseWriter, r *http.Request) {
	code, ok := pathInt(w, r, "code")
	if !ok {
		return
	}
	serviceCode, ok := requiredQuery(w, r, "serviceCode")
	if !ok {
		return
	}
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	view, _ := h.districts.ServiceScore(r.Context(), code, serviceCode, period)
	h.writeJSON(w, view)
}

// GetRegionServiceScores обрабатывает GET запрос на получение оценок районов округа по виду услуг.
// Эндпоинт: GET /api/regions/{regionCode}/service?serviceCode=
//
// @Summary      Оценки районов округа по виду услуг
// @Description  Возвращает районы округа, у которых есть продажи по виду услуг
// @Tags         regions
// @Produce      json
// @Param        regionCode   path      int     true   "Код административного округа"
// @Param        serviceCode  query     string  true   "Код вида услуг"
// @Param        year         query     int     false  "Отчетный год"
// @Param        quarter      query     int     false  "Отчетный квартал"
// @Success      200          {array}   models.ServiceScoreView
// @Failure      400          {object}  map[string]string  "Неверный запрос"
// @Router       /api/regions/{regionCode}/service [get]
func (h *Handlers) GetRegionServiceScores(w http.ResponseWriter, r *http.Request) {
	region, ok := pathInt(w, r, "regionCode")
	if !ok {
		return
	}
	serviceCode, ok := requiredQuery(w, r, "serviceCode")
	if !ok {
		return
	}
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	views, _ := h.districts.RegionServiceScores(r.Context(), region, serviceCode, period)
	h.writeJSON(w, views)
}

// GetRegionRank обрабатывает GET запрос на получение рейтинга районов округа.
// Эндпоинт: GET /api/regions/{regionCode}/rank?serviceCode=
//
// @Summary      Рейтинг районов округа
// @Description  Возвращает по каждому району округа место в рейтинге, продажи, число точек и население с оценками
// @Tags         regions
// @Produce      json
// @Param        regionCode   path      int     true   "Код административного округа"
// @Param        serviceCode  query     string  true   "Код вида услуг"
// @Param        year         query     int     false  "Отчетный год"
// @Param        quarter      query     int     false  "Отчетный квартал"
// @Success      200          {array}   models.RankEntry
// @Failure      400          {object}  map[string]string  "Неверный запрос"
// @Router       /api/regions/{regionCode}/rank [get]
func (h *Handlers) GetRegionRank(w http.ResponseWriter, r *http.Request) {
	region, ok := pathInt(w, r, "regionCode")
	if !ok {
		return
	}
	serviceCode, ok := requiredQuery(w, r, "serviceCode")
	if !ok {
		return
	}
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	entries, _ := h.districts.DistrictRank(r.Context(), region, serviceCode, period)
	h.writeJSON(w, entries)
}

// GetSalesSummary обрабатывает GET запрос на получение средних продаж района.
// Эндпоинт: GET /api/sales/{code}/summary
//
// @Summary      Средние продажи района
// @Description  Возвращает средние продажи за месяц, в будни и в выходные за год
// @Tags         sales
// @Produce      json
// @Param        code  path      int  true   "Код коммерческого района"
// @Param        year  query     int  false  "Отчетный год"
// @Success      200   {object}  models.SalesSummary
// @Failure      400   {object}  map[string]string  "Неверный запрос"
// @Router       /api/sales/{code}/summary [get]
func (h *Handlers) GetSalesSummary(w http.ResponseWriter, r *http.Request) {
	code, ok := pathInt(w, r, "code")
	if !ok {
		return
	}
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	summary, _ := h.graphs.Summary(r.Context(), code, period.Year)
	h.writeJSON(w, summary)
}

// GetSalesGraph обрабатывает GET запрос на получение графика продаж района.
// Отдает JSON из кэша без повторной сериализации. При отсутствии данных тело - null.
// Эндпоинт: GET /api/sales/graph/{kind}?commercialDistrictCode=
//
// @Summary      График продаж района
// @Description  Возвращает график продаж: day, time, age (bar), ratio (donut) или quarterly (stackbar)
// @Tags         sales
// @Produce      json
// @Param        kind                    path   string  true   "Вид графика"  Enums(day, time, age, ratio, quarterly)
// @Param        commercialDistrictCode  query  int     true   "Код коммерческого района"
// @Param        year                    query  int     false  "Отчетный год"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string  "Неверный запрос"
// @Router       /api/sales/graph/{kind} [get]
func (h *Handlers) GetSalesGraph(w http.ResponseWriter, r *http.Request) {
	district, ok := requiredQueryInt(w, r, "commercialDistrictCode")
	if !ok {
		return
	}
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	raw, err := h.graphs.Graph(r.Context(), mux.Vars(r)["kind"], district, period.Year)
	if errors.Is(err, graph.ErrUnknownKind) {
		writeError(w, http.StatusBadRequest, "Unknown graph kind")
		return
	}
	if raw == nil {
		raw = json.RawMessage("null")
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(raw); err != nil {
		h.logger.Warn("failed to write graph", zap.Error(err))
	}
}

// InvalidateSalesGraphs обрабатывает DELETE запрос на сброс закэшированных графиков района.
// Эндпоинт: DELETE /api/sales/graph/cache?commercialDistrictCode=
//
// @Summary      Сбросить кэш графиков
// @Description  Удаляет все закэшированные графики района за год
// @Tags         sales
// @Param        commercialDistrictCode  query  int  true   "Код коммерческого района"
// @Param        year                    query  int  false  "Отчетный год"
// @Success      204
// @Failure      400  {object}  map[string]string  "Неверный запрос"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/sales/graph/cache [delete]
func (h *Handlers) InvalidateSalesGraphs(w http.ResponseWriter, r *http.Request) {
	district, ok := requiredQueryInt(w, r, "commercialDistrictCode")
	if !ok {
		return
	}
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	if err := h.graphs.Invalidate(r.Context(), district, period.Year); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListServices обрабатывает GET запрос на получение справочника видов услуг.
// Эндпоинт: GET /api/services
//
// @Summary      Список видов услуг
// @Description  Возвращает виды услуг, по которым есть продажи за период
// @Tags         services
// @Produce      json
// @Param        year     query     int  false  "Отчетный год"
// @Param        quarter  query     int  false  "Отчетный квартал"
// @Success      200      {array}   models.Service
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/services [get]
func (h *Handlers) ListServices(w http.ResponseWriter, r *http.Request) {
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	services, err := h.services.ListServices(r.Context(), period)
	if err != nil {
		h.logger.Error("failed to list services", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, services)
}

// HealthCheck обрабатывает GET запрос на проверку работоспособности сервиса.
// Используется для мониторинга и проверки доступности API.
// Эндпоинт: GET /health
//
// @Summary      Проверка работоспособности сервиса
// @Description  Возвращает статус сервиса. Используется для мониторинга и проверки доступности.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{
		"status": "ok",
	})
}

// period читает year и quarter из запроса, подставляя отчетный период по умолчанию.
func (h *Handlers) period(w http.ResponseWriter, r *http.Request) (models.Period, bool) {
	p := h.defaultPeriod

	year, hasYear, ok := queryInt(w, r, "year")
	if !ok {
		return p, false
	}
	if hasYear {
		p.Year = int(year)
	}

	quarter, hasQuarter, ok := queryInt(w, r, "quarter")
	if !ok {
		return p, false
	}
	if hasQuarter {
		if quarter < 1 || quarter > 4 {
			writeError(w, http.StatusBadRequest, "quarter must be between 1 and 4")
			return p, false
		}
		p.Quarter = int(quarter)
	}

	return p, true
}

func (h *Handlers) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

// queryInt возвращает значение, признак его наличия и признак корректности.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int64, bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false, false
	}
	return v, true, true
}

func requiredQueryInt(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, present, ok := queryInt(w, r, name)
	if !ok {
		return 0, false
	}
	if !present {
		writeError(w, http.StatusBadRequest, name+" is required")
		return 0, false
	}
	return v, true
}

func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		writeError(w, http.StatusBadRequest, name+" is required")
		return "", false
	}
	return v, true
}
