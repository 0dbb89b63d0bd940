// @title           Commercial District Analytics API
// @version         1.0
// @description     REST API аналитики коммерческих районов: поиск и рейтинг районов, оценки по видам услуг и графики продаж.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  akozadaev@inbox.ru
// @contact.url    https://github.com/akozadaev/commdist_analytics

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @schemes   http https
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/akozadaev/commdist_analytics/docs" // swagger docs
	"github.com/akozadaev/commdist_analytics/internal/cache"
	"github.com/akozadaev/commdist_analytics/internal/config"
	"github.com/akozadaev/commdist_analytics/internal/graph"
	"github.com/akozadaev/commdist_analytics/internal/handlers"
	"github.com/akozadaev/commdist_analytics/internal/observability"
	"github.com/akozadaev/commdist_analytics/internal/ranking"
	"github.com/akozadaev/commdist_analytics/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	// Инициализация Elasticsearch клиента
	// Метазаголовок отключен, чтобы клиент работал и с OpenSearch
	esCfg := elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	}

	esClient, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		logger.Fatal("error creating Elasticsearch client", zap.Error(err))
	}
	logger.Info("Elasticsearch/OpenSearch client initialized", zap.String("url", cfg.ElasticsearchURL))

	esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL)
	ensureIndex(esStorage, logger)

	// Инициализация PostgreSQL клиента
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresDB,
	)

	pgStorage, err := storage.NewPostgresStorage(dsn)
	if err != nil {
		logger.Fatal("error creating PostgreSQL client", zap.Error(err))
	}
	defer pgStorage.Close()
	logger.Info("connected to PostgreSQL")

	store, closeStore := newCacheStore(cfg, logger)
	defer closeStore()

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	derived := cache.New(store, cache.Options{
		Version: cfg.CacheVersion,
		TTL:     cfg.CacheTTL,
		Metrics: metrics,
		Logger:  logger,
	})

	// Инициализация сервисов и handlers
	districts := ranking.NewService(esStorage, pgStorage, metrics, logger)
	graphs := graph.NewService(pgStorage, derived, cfg.DefaultCategory, metrics, logger)
	h := handlers.NewHandlers(districts, graphs, pgStorage, cfg.DefaultPeriod(), logger)

	router := handlers.NewRouter(h, metrics)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("http://localhost:"+cfg.AppPort+"/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Настройка CORS и access-лога
	handler := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodDelete, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)
	handler = gorillahandlers.LoggingHandler(os.Stdout, handler)

	// Настройка сервера
	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("port", cfg.AppPort), zap.Stringer("defaultPeriod", cfg.DefaultPeriod()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Ожидание сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// ensureIndex создает индекс районов по маппингу из migrations, если файл найден.
func ensureIndex(esStorage *storage.ElasticsearchStorage, logger *zap.Logger) {
	// Пытаемся найти файл маппинга в разных местах
	mappingPaths := []string{
		"migrations/elasticsearch_mapping.json",
		"../migrations/elasticsearch_mapping.json",
		filepath.Join(filepath.Dir(os.Args[0]), "../migrations/elasticsearch_mapping.json"),
	}

	var mappingData []byte
	for _, path := range mappingPaths {
		var readErr error
		mappingData, readErr = os.ReadFile(path)
		if readErr == nil {
			break
		}
	}

	if len(mappingData) == 0 {
		logger.Warn("could not read mapping file from any location")
		return
	}

	if err := esStorage.CreateIndex(context.Background(), string(mappingData)); err != nil {
		logger.Warn("could not create index", zap.Error(err))
		return
	}
	logger.Info("Elasticsearch index created/verified")
}

// newCacheStore выбирает хранилище графиков: Redis, если задан адрес, иначе память процесса.
func newCacheStore(cfg *config.Config, logger *zap.Logger) (cache.Store, func()) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR is empty, using in-memory chart cache")
		return cache.NewMemoryStore(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisCache, err := storage.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal("error connecting to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))

	return redisCache, func() { redisCache.Close() }
}
