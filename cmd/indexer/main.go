package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"

	"github.com/akozadaev/commdist_analytics/internal/config"
	"github.com/akozadaev/commdist_analytics/internal/models"
	"github.com/akozadaev/commdist_analytics/internal/observability"
	"github.com/akozadaev/commdist_analytics/internal/storage"
)

func main() {
	file := flag.String("file", "", "JSON файл с массивом районов; если не задан, генерируются тестовые данные")
	count := flag.Int("count", 100, "число генерируемых районов")
	flag.Parse()

	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	// Инициализация Elasticsearch клиента
	esCfg := elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	}

	esClient, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		logger.Fatal("error creating Elasticsearch client", zap.Error(err))
	}

	esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL)

	var districts []*models.District
	if *file != "" {
		districts, err = loadDistrictsFromFile(*file)
		if err != nil {
			logger.Fatal("error loading districts", zap.String("file", *file), zap.Error(err))
		}
	} else {
		districts = generateSampleDistricts(*count)
	}

	logger.Info("indexing districts", zap.Int("count", len(districts)), zap.String("index", cfg.ElasticsearchIndex))

	// Индексация данных
	if err := esStorage.BulkIndexDistricts(context.Background(), districts); err != nil {
		logger.Fatal("error indexing districts", zap.Error(err))
	}

	logger.Info("indexing completed successfully")
}

type sampleRegion struct {
	code int64
	name string
	lat  float64
	lon  float64
}

// generateSampleDistricts генерирует тестовые районы вокруг центров нескольких округов
func generateSampleDistricts(count int) []*models.District {
	regions := []sampleRegion{
		{11110, "종로구", 37.573, 126.979},
		{11140, "중구", 37.564, 126.997},
		{11440, "마포구", 37.566, 126.901},
		{11560, "영등포구", 37.526, 126.896},
		{11650, "서초구", 37.483, 127.032},
		{11680, "강남구", 37.517, 127.047},
	}

	districts := make([]*models.District, 0, count)
	now := time.Now()

	for i := 0; i < count; i++ {
		region := regions[rand.Intn(len(regions))]
		subRegion := rand.Intn(20) + 1

		district := &models.District{
			Code: int64(3110001 + i),
			Name: fmt.Sprintf("%s 상권 %d", region.name, i+1),
			Coordinates: models.GeoPoint{
				Lat: region.lat + (rand.Float64()-0.5)*0.04,
				Lon: region.lon + (rand.Float64()-0.5)*0.04,
			},
			RegionCode:              region.code,
			RegionName:              region.name,
			SubRegionCode:           region.code*1000 + int64(subRegion)*10,
			SubRegionName:           fmt.Sprintf("%s %d동", region.name, subRegion),
			AreaSize:                float64(rand.Intn(200000) + 10000), // 10k-210k м²
			CommercialScore:         rand.Float64() * 100,
			SalesScore:              rand.Float64() * 100,
			ResidentPopulationScore: rand.Float64() * 100,
			FloatingPopulationScore: rand.Float64() * 100,
			DiversityScore:          rand.Float64() * 100,
			UpdatedAt:               now,
		}

		districts = append(districts, district)
	}

	return districts
}

// loadDistrictsFromFile загружает районы из JSON файла
func loadDistrictsFromFile(filename string) ([]*models.District, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var districts []*models.District
	if err := json.Unmarshal(data, &districts); err != nil {
		return nil, err
	}

	return districts, nil
}
