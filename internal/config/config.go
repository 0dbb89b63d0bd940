// Package config предоставляет загрузку конфигурации приложения из переменных окружения.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

// Config содержит все параметры конфигурации приложения.
// Значения загружаются из переменных окружения с fallback на значения по умолчанию.
type Config struct {
	ElasticsearchURL   string // URL для подключения к Elasticsearch/OpenSearch
	ElasticsearchIndex string // Индекс с документами районов
	PostgresHost       string // Хост PostgreSQL
	PostgresPort       string // Порт PostgreSQL
	PostgresUser       string // Пользователь PostgreSQL
	PostgresPassword   string // Пароль PostgreSQL
	PostgresDB         string // Имя базы данных PostgreSQL
	AppPort            string // Порт для HTTP сервера

	RedisAddr     string        // Адрес Redis; пустое значение включает кэш в памяти
	RedisPassword string        // Пароль Redis
	RedisDB       int           // Номер базы Redis
	CacheTTL      time.Duration // Время жизни графиков в кэше, 0 - без ограничения
	CacheVersion  string        // Версия схемы ключей кэша

	ReportYear      int    // Отчетный год по умолчанию
	ReportQuarter   int    // Отчетный квартал по умолчанию
	DefaultCategory string // Крупная категория услуг для графиков продаж
	LogLevel        string // Уровень логирования zap
}

// Load загружает конфигурацию из переменных окружения.
// Если переменная не установлена, используется значение по умолчанию.
func Load() *Config {
	return &Config{
		ElasticsearchURL:   getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
		ElasticsearchIndex: getEnv("ELASTICSEARCH_INDEX", "districts"),
		PostgresHost:       getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:       getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:       getEnv("POSTGRES_USER", "analytical_user"),
		PostgresPassword:   getEnv("POSTGRES_PASSWORD", "analytical_pass"),
		PostgresDB:         getEnv("POSTGRES_DB", "analytical_db"),
		AppPort:            getEnv("APP_PORT", "8080"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      getEnvDuration("CACHE_TTL", 0),
		CacheVersion:  getEnv("CACHE_VERSION", "1"),

		// Данные за текущий год еще не опубликованы, поэтому по умолчанию берется прошлый год
		ReportYear:      getEnvInt("REPORT_YEAR", time.Now().Year()-1),
		ReportQuarter:   getEnvInt("REPORT_QUARTER", 3),
		DefaultCategory: getEnv("DEFAULT_CATEGORY", "외식업"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// DefaultPeriod возвращает отчетный период, используемый, когда клиент его не указал.
func (c *Config) DefaultPeriod() models.Period {
	return models.Period{Year: c.ReportYear, Quarter: c.ReportQuarter}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
