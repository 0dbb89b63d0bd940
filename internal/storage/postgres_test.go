package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

var period = models.Period{Year: 2023, Quarter: 3}

func newMockStorage(t *testing.T) (*PostgresStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStorageFromDB(db), mock
}

func salesRow(district int64, service string) []driver.Value {
	vals := []driver.Value{
		int64(2023), int64(3), district, "강남역",
		service, "한식음식점", "CS1", "외식업", "CS100", "한식",
		5000.0, 3000.0, 2000.0, 70.0, 82.0,
	}
	for len(vals) < len(salesColumns) {
		vals = append(vals, nil)
	}
	vals[15] = 1500.0    // mon_sales
	vals[22] = int64(40) // mon_sales_count
	return vals
}

func TestFindSales(t *testing.T) {
	ctx := context.Background()

	t.Run("scans nullable buckets", func(t *testing.T) {
		ps, mock := newMockStorage(t)
		mock.ExpectQuery(`FROM comm_estimated_sales WHERE year_code = \$1 AND quarter_code = \$2`).
			WithArgs(2023, 3, int64(3110001), "CS100001").
			WillReturnRows(sqlmock.NewRows(salesColumns).AddRow(salesRow(3110001, "CS100001")...))

		rec, err := ps.FindSales(ctx, period, 3110001, "CS100001")
		require.NoError(t, err)

		assert.Equal(t, period, rec.Period)
		assert.Equal(t, "외식업", rec.MajorCategoryName)
		assert.Equal(t, 82.0, rec.ServiceTotalScore)
		require.NotNil(t, rec.MonSales)
		assert.Equal(t, 1500.0, *rec.MonSales)
		require.NotNil(t, rec.MonSalesCount)
		assert.Equal(t, int64(40), *rec.MonSalesCount)
		assert.Nil(t, rec.TueSales)
		assert.Nil(t, rec.AgeOver60SalesCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is not found", func(t *testing.T) {
		ps, mock := newMockStorage(t)
		mock.ExpectQuery(`FROM comm_estimated_sales`).WillReturnRows(sqlmock.NewRows(salesColumns))

		_, err := ps.FindSales(ctx, period, 1, "CS100001")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		ps, mock := newMockStorage(t)
		boom := errors.New("connection reset")
		mock.ExpectQuery(`FROM comm_estimated_sales`).WillReturnError(boom)

		_, err := ps.FindSales(ctx, period, 1, "CS100001")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, models.ErrNotFound)
	})
}

func TestFindSalesByDistrictAndCategory(t *testing.T) {
	ps, mock := newMockStorage(t)
	mock.ExpectQuery(`major_category_name = \$3 ORDER BY quarter_code, service_code`).
		WithArgs(2023, int64(3110001), "외식업").
		WillReturnRows(sqlmock.NewRows(salesColumns).
			AddRow(salesRow(3110001, "CS100001")...).
			AddRow(salesRow(3110001, "CS100002")...))

	records, err := ps.FindSalesByDistrictAndCategory(context.Background(), 2023, 3110001, "외식업")
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "CS100002", records[1].ServiceCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindQuarterlySales(t *testing.T) {
	ps, mock := newMockStorage(t)
	mock.ExpectQuery(`year_code = ANY\(\$3\)\s+GROUP BY year_code, quarter_code`).
		WithArgs(int64(3110001), "외식업", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"year_code", "quarter_code", "weekday", "weekend"}).
			AddRow(int64(2022), int64(4), 700.0, 300.0).
			AddRow(int64(2023), int64(1), 800.0, 400.0))

	points, err := ps.FindQuarterlySales(context.Background(), 3110001, "외식업", []int{2022, 2023})
	require.NoError(t, err)

	assert.Equal(t, []models.QuarterlySales{
		{Year: 2022, Quarter: 4, WeekdaySales: 700, WeekendSales: 300},
		{Year: 2023, Quarter: 1, WeekdaySales: 800, WeekendSales: 400},
	}, points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindStoreCountTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("sum", func(t *testing.T) {
		ps, mock := newMockStorage(t)
		mock.ExpectQuery(`SELECT SUM\(store_count\) FROM comm_store`).
			WithArgs(2023, 3, int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(int64(120)))

		count, err := ps.FindStoreCountTotal(ctx, period, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(120), count.Total)
	})

	t.Run("null sum is not found", func(t *testing.T) {
		ps, mock := newMockStorage(t)
		mock.ExpectQuery(`FROM comm_store`).WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))

		_, err := ps.FindStoreCountTotal(ctx, period, 7)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestFindPopulation(t *testing.T) {
	ctx := context.Background()
	ps, mock := newMockStorage(t)

	mock.ExpectQuery(`FROM comm_floating_population`).
		WithArgs(int64(7), 2023, 3).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(45000)))
	mock.ExpectQuery(`FROM comm_resident_population`).
		WithArgs(int64(7), 2023, 3).
		WillReturnRows(sqlmock.NewRows([]string{"total"}))

	floating, err := ps.FindFloatingPopulation(ctx, 7, period)
	require.NoError(t, err)
	assert.Equal(t, int64(45000), floating.Total)

	_, err = ps.FindResidentPopulation(ctx, 7, period)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRankTable(t *testing.T) {
	ps, mock := newMockStorage(t)
	mock.ExpectQuery(`RANK\(\) OVER \(ORDER BY commercial_service_total_score DESC\)`).
		WithArgs(2023, 3, "CS100001").
		WillReturnRows(sqlmock.NewRows([]string{"commercial_district_code", "total_rank"}).
			AddRow(int64(9), int64(1)).
			AddRow(int64(4), int64(2)))

	table, err := ps.FindRankTable(context.Background(), period, "CS100001")
	require.NoError(t, err)

	assert.Equal(t, []models.RankTableEntry{{DistrictCode: 9, Rank: 1}, {DistrictCode: 4, Rank: 2}}, table)
}

func TestListServices(t *testing.T) {
	ps, mock := newMockStorage(t)
	mock.ExpectQuery(`SELECT DISTINCT service_code`).
		WithArgs(2023, 3).
		WillReturnRows(sqlmock.NewRows([]string{"service_code", "service_name", "major_category_code", "major_category_name"}).
			AddRow("CS100001", "한식음식점", "CS1", "외식업"))

	services, err := ps.ListServices(context.Background(), period)
	require.NoError(t, err)

	assert.Equal(t, []models.Service{{Code: "CS100001", Name: "한식음식점", MajorCategoryCode: "CS1", MajorCategoryName: "외식업"}}, services)
}
