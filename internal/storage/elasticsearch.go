// Package storage содержит реализации хранилищ для Elasticsearch/OpenSearch, PostgreSQL и Redis.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/akozadaev/commdist_analytics/internal/models"
	"github.com/elastic/go-elasticsearch/v8"
)

// maxDistrictHits - верхняя граница выборки районов за один поиск.
// В городе около 1700 коммерческих районов, так что постраничный обход не нужен.
const maxDistrictHits = 5000

// ElasticsearchStorage предоставляет методы для работы с документами районов в Elasticsearch/OpenSearch.
// Использует прямые HTTP запросы для совместимости с OpenSearch.
type ElasticsearchStorage struct {
	client     *elasticsearch.Client // Официальный клиент Elasticsearch
	index      string                // Имя индекса районов
	httpClient *http.Client          // HTTP клиент для прямых запросов
	baseURL    string                // Базовый URL Elasticsearch/OpenSearch
}

// NewElasticsearchStorageWithURL создает новый экземпляр ElasticsearchStorage с указанным URL.
// Используется для поддержки OpenSearch через прямые HTTP запросы.
func NewElasticsearchStorageWithURL(client *elasticsearch.Client, index string, baseURL string) *ElasticsearchStorage {
	return &ElasticsearchStorage{
		client:     client,
		index:      index,
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// CreateIndex создает индекс в Elasticsearch/OpenSearch с заданным маппингом.
// Если индекс уже существует, функция возвращает nil без ошибки.
func (es *ElasticsearchStorage) CreateIndex(ctx context.Context, mappingJSON string) error {
	res, err := es.client.Indices.Exists([]string{es.index}, es.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		// Индекс уже существует
		return nil
	}

	res, err = es.client.Indices.Create(
		es.index,
		es.client.Indices.Create.WithBody(strings.NewReader(mappingJSON)),
		es.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error creating index: %s", string(body))
	}

	return nil
}

// BulkIndexDistricts индексирует несколько районов за один запрос через Bulk API.
// Использует прямые HTTP запросы для совместимости с OpenSearch.
func (es *ElasticsearchStorage) BulkIndexDistricts(ctx context.Context, districts []*models.District) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	for _, district := range districts {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": es.index,
				"_id":    fmt.Sprintf("%d", district.Code),
			},
		}

		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}
		if err := enc.Encode(district); err != nil {
			return fmt.Errorf("failed to encode district: %w", err)
		}
	}

	url := fmt.Sprintf("%s/_bulk?refresh=true", es.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-ndjson")

	res, err := es.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to bulk index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error bulk indexing: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}
	if result.Errors {
		return fmt.Errorf("bulk indexing reported item errors")
	}

	return nil
}

// GetDistrict получает район по коду. Возвращает models.ErrNotFound, если района нет.
func (es *ElasticsearchStorage) GetDistrict(ctx context.Context, code int64) (*models.District, error) {
	url := fmt.Sprintf("%s/%s/_doc/%d", es.baseURL, es.index, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	res, err := es.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get district: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, models.ErrNotFound
	}

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("error getting district: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Found  bool            `json:"found"`
		Source models.District `json:"_source"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.Found {
		return nil, models.ErrNotFound
	}

	return &result.Source, nil
}

// DistrictsByRegion возвращает районы административного округа, упорядоченные по коду.
func (es *ElasticsearchStorage) DistrictsByRegion(ctx context.Context, regionCode int64) ([]models.District, error) {
	return es.searchDistricts(ctx, map[string]interface{}{
		"term": map[string]interface{}{
			"region_code": regionCode,
		},
	})
}

// AllDistricts возвращает все районы, упорядоченные по коду.
func (es *ElasticsearchStorage) AllDistricts(ctx context.Context) ([]models.District, error) {
	return es.searchDistricts(ctx, map[string]interface{}{
		"match_all": map[string]interface{}{},
	})
}

func (es *ElasticsearchStorage) searchDistricts(ctx context.Context, query map[string]interface{}) ([]models.District, error) {
	body := map[string]interface{}{
		"query": query,
		"size":  maxDistrictHits,
		"sort": []map[string]interface{}{
			{"code": map[string]interface{}{"order": "asc"}},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	url := fmt.Sprintf("%s/%s/_search", es.baseURL, es.index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := es.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("error searching: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source models.District `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	districts := make([]models.District, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		districts = append(districts, hit.Source)
	}

	return districts, nil
}
