package graph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func salesRecord(name string, monthly float64) models.SalesRecord {
	return models.SalesRecord{
		Period:       models.Period{Year: 2023, Quarter: 3},
		DistrictCode: 3110001,
		DistrictName: name,
		ServiceName:  "한식음식점",
		MonthlySales: monthly,
	}
}

func TestBucketTables(t *testing.T) {
	assert.Equal(t, []string{"월", "화", "수", "목", "금", "토", "일"}, Daily.Labels())
	assert.Equal(t, []string{"00~06시", "06~11시", "11~14시", "14~17시", "17~21시", "21~24시"}, Hourly.Labels())
	assert.Equal(t, []string{"10대", "20대", "30대", "40대", "50대", "60대이상"}, Age.Labels())
}

func TestAccumulate(t *testing.T) {
	t.Run("absent fields count as zero", func(t *testing.T) {
		records := []models.SalesRecord{salesRecord("A", 100), salesRecord("A", 200)}

		for _, dim := range []Dimension{Daily, Hourly, Age} {
			totals := Accumulate(dim, records)
			assert.Equal(t, make([]int64, len(dim.Buckets)), totals.Counts, dim.Type)
			assert.Equal(t, make([]float64, len(dim.Buckets)), totals.Amounts, dim.Type)
		}
	})

	t.Run("bucket amounts add up to monthly sales", func(t *testing.T) {
		a := salesRecord("A", 700)
		a.MonSales, a.TueSales, a.WedSales, a.ThuSales = f64(100), f64(100), f64(100), f64(100)
		a.FriSales, a.SatSales, a.SunSales = f64(100), f64(150), f64(50)
		b := salesRecord("A", 300)
		b.MonSales, b.SunSales = f64(200), f64(100)

		totals := Accumulate(Daily, []models.SalesRecord{a, b})

		var sum float64
		for _, v := range totals.Amounts {
			sum += v
		}
		assert.Equal(t, a.MonthlySales+b.MonthlySales, sum)
		assert.Equal(t, 300.0, totals.Amounts[0])
		assert.Equal(t, 150.0, totals.Amounts[6])
	})

	t.Run("buckets map to their own fields", func(t *testing.T) {
		rec := salesRecord("A", 0)
		rec.Time11To14Sales, rec.Time11To14SalesCount = f64(42), i64(7)
		rec.AgeOver60Sales, rec.AgeOver60SalesCount = f64(9), i64(3)

		hourly := Accumulate(Hourly, []models.SalesRecord{rec})
		age := Accumulate(Age, []models.SalesRecord{rec})

		assert.Equal(t, []float64{0, 0, 42, 0, 0, 0}, hourly.Amounts)
		assert.Equal(t, []int64{0, 0, 7, 0, 0, 0}, hourly.Counts)
		assert.Equal(t, []float64{0, 0, 0, 0, 0, 9}, age.Amounts)
		assert.Equal(t, []int64{0, 0, 0, 0, 0, 3}, age.Counts)
	})
}

func TestPerDay(t *testing.T) {
	totals := Totals{Counts: []int64{59, 60, 29}, Amounts: []float64{45, 60, 0}}.PerDay()

	assert.Equal(t, []int64{1, 2, 0}, totals.Counts)
	assert.Equal(t, []float64{1.5, 2, 0}, totals.Amounts)
}

func TestFold(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Fold(Daily, nil)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("payload wire shape", func(t *testing.T) {
		rec := salesRecord("강남역", 0)
		rec.MonSales, rec.MonSalesCount = f64(3000), i64(90)

		payload, err := Fold(Daily, []models.SalesRecord{rec})
		require.NoError(t, err)

		raw, err := json.Marshal(payload)
		require.NoError(t, err)

		assert.Equal(t,
			`{"chartType":"bar","year":2023,"commDistrictName":"강남역","data":{"categories":["월","화","수","목","금","토","일"],`+
				`"series":{"daySalesCount":[3,0,0,0,0,0,0],"daySales":[100,0,0,0,0,0,0]}}}`,
			string(raw))
	})
}

func TestServiceMix(t *testing.T) {
	t.Run("ratios in first occurrence order", func(t *testing.T) {
		a := salesRecord("A", 100)
		a.ServiceName = "커피-음료"
		b := salesRecord("A", 200)
		b.ServiceName = "한식음식점"
		c := salesRecord("A", 100)
		c.ServiceName = "커피-음료"

		shares, ok := ServiceMix([]models.SalesRecord{a, b, c})
		require.True(t, ok)

		assert.Equal(t, []Share{{"커피-음료", 50}, {"한식음식점", 50}}, shares)
	})

	t.Run("ratios sum to one hundred", func(t *testing.T) {
		var records []models.SalesRecord
		for i, name := range []string{"a", "b", "c"} {
			rec := salesRecord("A", float64(i+1)*1000)
			rec.ServiceName = name
			records = append(records, rec)
		}

		shares, ok := ServiceMix(records)
		require.True(t, ok)

		var sum float64
		for _, s := range shares {
			sum += s.Percent
		}
		assert.InDelta(t, 100, sum, 0.15)
		assert.Equal(t, 16.7, shares[0].Percent)
		assert.Equal(t, 33.3, shares[1].Percent)
		assert.Equal(t, 50.0, shares[2].Percent)
	})

	t.Run("zero total is absent", func(t *testing.T) {
		shares, ok := ServiceMix([]models.SalesRecord{salesRecord("A", 0)})
		assert.False(t, ok)
		assert.Nil(t, shares)

		_, err := MixPayload(2023, []models.SalesRecord{salesRecord("A", 0)})
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("empty input yields empty donut", func(t *testing.T) {
		payload, err := MixPayload(2023, nil)
		require.NoError(t, err)

		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"chartType":"donut","year":2023,"commDistrictName":"","data":{"categories":[],"series":[]}}`, string(raw))
	})
}

func TestQuarterlyPayload(t *testing.T) {
	payload := QuarterlyPayload(2023, []models.QuarterlySales{
		{Year: 2022, Quarter: 4, WeekdaySales: 1234.5, WeekendSales: 99.4},
		{Year: 2023, Quarter: 1, WeekdaySales: 10, WeekendSales: 0},
	})

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.Equal(t,
		`{"chartType":"stackbar","year":"2023~2022","data":{"categories":["2022-4","2023-1"],"series":[`+
			`{"YearQuarter":"2022-4","WeekDaySales":"1235","WeekendSales":"99"},`+
			`{"YearQuarter":"2023-1","WeekDaySales":"10","WeekendSales":"0"}]}}`,
		string(raw))
}

func TestSummarize(t *testing.T) {
	t.Run("single record", func(t *testing.T) {
		rec := salesRecord("A", 3000)
		rec.WeekdaySales, rec.WeekendSales = 2000, 1000

		assert.Equal(t, models.SalesSummary{MonthlySales: 3000, WeekdaySales: 2000, WeekendSales: 1000},
			Summarize([]models.SalesRecord{rec}))
	})

	t.Run("averages round half up", func(t *testing.T) {
		a, b := salesRecord("A", 1), salesRecord("A", 2)

		assert.Equal(t, int64(2), Summarize([]models.SalesRecord{a, b}).MonthlySales)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, models.SalesSummary{}, Summarize(nil))
	})
}
