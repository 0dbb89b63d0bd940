package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/commdist_analytics/internal/cache"
	"github.com/akozadaev/commdist_analytics/internal/models"
)

type fakeSales struct {
	records   []models.SalesRecord
	quarters  []models.QuarterlySales
	err       error
	calls     int
	lastYears []int
	category  string
}

func (f *fakeSales) FindSalesByDistrictAndCategory(_ context.Context, _ int, _ int64, category string) ([]models.SalesRecord, error) {
	f.calls++
	f.category = category
	return f.records, f.err
}

func (f *fakeSales) FindQuarterlySales(_ context.Context, _ int64, _ string, years []int) ([]models.QuarterlySales, error) {
	f.calls++
	f.lastYears = years
	return f.quarters, f.err
}

func newTestService(sales *fakeSales) *Service {
	return NewService(sales, cache.New(cache.NewMemoryStore(), cache.Options{}), "외식업", nil, nil)
}

func TestServiceGraph(t *testing.T) {
	ctx := context.Background()

	t.Run("bar graphs are computed once", func(t *testing.T) {
		rec := salesRecord("A", 100)
		rec.AgeOver60Sales = f64(300)
		sales := &fakeSales{records: []models.SalesRecord{rec}}
		svc := newTestService(sales)

		first, err := svc.Graph(ctx, KindAge, 1, 2023)
		require.NoError(t, err)
		second, err := svc.Graph(ctx, KindAge, 1, 2023)
		require.NoError(t, err)

		assert.Equal(t, 1, sales.calls)
		assert.Equal(t, "외식업", sales.category)
		assert.Equal(t, []byte(first), []byte(second))
		assert.Contains(t, string(first), `"ageSales":[0,0,0,0,0,10]`)
	})

	t.Run("each kind has its own cache entry", func(t *testing.T) {
		sales := &fakeSales{records: []models.SalesRecord{salesRecord("A", 100)}}
		svc := newTestService(sales)

		for _, kind := range []string{KindDay, KindTime, KindAge, KindRatio} {
			raw, err := svc.Graph(ctx, kind, 1, 2023)
			require.NoError(t, err, kind)
			assert.NotNil(t, raw, kind)
		}
		assert.Equal(t, 4, sales.calls)
	})

	t.Run("no records is absent and not cached", func(t *testing.T) {
		sales := &fakeSales{}
		svc := newTestService(sales)

		raw, err := svc.Graph(ctx, KindDay, 1, 2023)
		require.NoError(t, err)
		assert.Nil(t, raw)

		_, err = svc.Graph(ctx, KindDay, 1, 2023)
		require.NoError(t, err)
		assert.Equal(t, 2, sales.calls)
	})

	t.Run("zero sales mix is absent", func(t *testing.T) {
		svc := newTestService(&fakeSales{records: []models.SalesRecord{salesRecord("A", 0)}})

		raw, err := svc.Graph(ctx, KindRatio, 1, 2023)
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("quarterly covers two years", func(t *testing.T) {
		sales := &fakeSales{quarters: []models.QuarterlySales{{Year: 2022, Quarter: 1, WeekdaySales: 5}}}
		svc := newTestService(sales)

		raw, err := svc.Graph(ctx, KindQuarterly, 1, 2023)
		require.NoError(t, err)

		assert.Equal(t, []int{2022, 2023}, sales.lastYears)
		assert.Contains(t, string(raw), `"year":"2023~2022"`)
	})

	t.Run("upstream failure", func(t *testing.T) {
		boom := errors.New("connection refused")
		svc := newTestService(&fakeSales{err: boom})

		raw, err := svc.Graph(ctx, KindTime, 1, 2023)
		assert.Nil(t, raw)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := newTestService(&fakeSales{}).Graph(ctx, "weekly", 1, 2023)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestServiceInvalidate(t *testing.T) {
	ctx := context.Background()
	sales := &fakeSales{records: []models.SalesRecord{salesRecord("A", 100)}}
	svc := newTestService(sales)

	_, err := svc.Graph(ctx, KindDay, 1, 2023)
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(ctx, 1, 2023))
	_, err = svc.Graph(ctx, KindDay, 1, 2023)
	require.NoError(t, err)

	assert.Equal(t, 2, sales.calls)
}

func TestServiceSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("averages", func(t *testing.T) {
		rec := salesRecord("A", 3000)
		rec.WeekdaySales, rec.WeekendSales = 2000, 1000
		svc := newTestService(&fakeSales{records: []models.SalesRecord{rec}})

		summary, err := svc.Summary(ctx, 1, 2023)
		require.NoError(t, err)
		assert.Equal(t, models.SalesSummary{MonthlySales: 3000, WeekdaySales: 2000, WeekendSales: 1000}, summary)
	})

	t.Run("failure degrades to zeros", func(t *testing.T) {
		svc := newTestService(&fakeSales{err: errors.New("down")})

		summary, err := svc.Summary(ctx, 1, 2023)
		assert.Error(t, err)
		assert.Equal(t, models.SalesSummary{}, summary)
	})
}
