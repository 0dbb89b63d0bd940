package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

func newTestES(t *testing.T, handler http.HandlerFunc) *ElasticsearchStorage {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewElasticsearchStorageWithURL(client, "districts", srv.URL+"/")
}

func TestGetDistrict(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		es := newTestES(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/districts/_doc/3110001", r.URL.Path)
			io.WriteString(w, `{"found":true,"_source":{"code":3110001,"name":"강남역","region_code":11680,"commercial_score":91.5}}`)
		})

		d, err := es.GetDistrict(ctx, 3110001)
		require.NoError(t, err)
		assert.Equal(t, "강남역", d.Name)
		assert.Equal(t, int64(11680), d.RegionCode)
		assert.Equal(t, 91.5, d.CommercialScore)
	})

	t.Run("missing document", func(t *testing.T) {
		es := newTestES(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"found":false}`)
		})

		_, err := es.GetDistrict(ctx, 1)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		es := newTestES(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := es.GetDistrict(ctx, 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrNotFound)
	})
}

func TestDistrictsByRegion(t *testing.T) {
	var query map[string]any
	es := newTestES(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/districts/_search", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&query))
		io.WriteString(w, `{"hits":{"hits":[{"_source":{"code":1,"region_code":11680}},{"_source":{"code":2,"region_code":11680}}]}}`)
	})

	districts, err := es.DistrictsByRegion(context.Background(), 11680)
	require.NoError(t, err)

	require.Len(t, districts, 2)
	assert.Equal(t, int64(2), districts[1].Code)
	assert.Equal(t, map[string]any{"region_code": float64(11680)}, query["query"].(map[string]any)["term"])
	assert.Equal(t, float64(maxDistrictHits), query["size"])
}

func TestAllDistrictsEmpty(t *testing.T) {
	es := newTestES(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"hits":{"hits":[]}}`)
	})

	districts, err := es.AllDistricts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, districts)
	assert.Empty(t, districts)
}

func TestBulkIndexDistricts(t *testing.T) {
	ctx := context.Background()
	districts := []*models.District{{Code: 1, Name: "one"}, {Code: 2, Name: "two"}}

	t.Run("writes action and source lines", func(t *testing.T) {
		var lines []string
		es := newTestES(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/_bulk", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("refresh"))
			sc := bufio.NewScanner(r.Body)
			for sc.Scan() {
				lines = append(lines, sc.Text())
			}
			io.WriteString(w, `{"errors":false,"items":[]}`)
		})

		require.NoError(t, es.BulkIndexDistricts(ctx, districts))

		require.Len(t, lines, 4)
		assert.JSONEq(t, `{"index":{"_index":"districts","_id":"2"}}`, lines[2])
		assert.True(t, strings.Contains(lines[3], `"name":"two"`))
	})

	t.Run("item errors fail the batch", func(t *testing.T) {
		es := newTestES(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"errors":true}`)
		})

		assert.Error(t, es.BulkIndexDistricts(ctx, districts))
	})
}
