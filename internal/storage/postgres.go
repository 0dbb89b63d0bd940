package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akozadaev/commdist_analytics/internal/models"
	"github.com/lib/pq"
)

// salesColumns - колонки comm_estimated_sales в порядке сканирования scanSales.
var salesColumns = []string{
	"year_code", "quarter_code", "commercial_district_code", "commercial_district_name",
	"service_code", "service_name", "major_category_code", "major_category_name",
	"middle_category_code", "middle_category_name",
	"monthly_sales", "weekday_sales", "weekend_sales", "sales_score", "commercial_service_total_score",
	"mon_sales", "tue_sales", "wed_sales", "thu_sales", "fri_sales", "sat_sales", "sun_sales",
	"mon_sales_count", "tue_sales_count", "wed_sales_count", "thu_sales_count",
	"fri_sales_count", "sat_sales_count", "sun_sales_count",
	"time_00_06_sales", "time_06_11_sales", "time_11_14_sales",
	"time_14_17_sales", "time_17_21_sales", "time_21_24_sales",
	"time_00_06_sales_count", "time_06_11_sales_count", "time_11_14_sales_count",
	"time_14_17_sales_count", "time_17_21_sales_count", "time_21_24_sales_count",
	"age_10_sales", "age_20_sales", "age_30_sales", "age_40_sales", "age_50_sales", "age_60_over_sales",
	"age_10_sales_count", "age_20_sales_count", "age_30_sales_count",
	"age_40_sales_count", "age_50_sales_count", "age_60_over_sales_count",
}

var salesSelect = "SELECT " + strings.Join(salesColumns, ", ") + " FROM comm_estimated_sales"

type rowScanner interface {
	Scan(dest ...any) error
}

// PostgresStorage предоставляет методы для работы с квартальными показателями районов в PostgreSQL.
type PostgresStorage struct {
	db *sql.DB // Подключение к базе данных PostgreSQL
}

// NewPostgresStorage создает новый экземпляр PostgresStorage и устанавливает подключение к БД.
// DSN должен быть в формате: "host=... port=... user=... password=... dbname=... sslmode=..."
func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewPostgresStorageFromDB(db), nil
}

// NewPostgresStorageFromDB оборачивает уже открытое подключение.
func NewPostgresStorageFromDB(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// Close закрывает подключение к базе данных PostgreSQL.
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

// Ping проверяет доступность базы данных.
func (ps *PostgresStorage) Ping(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}

// FindSales возвращает продажи района по виду услуг за период или models.ErrNotFound.
func (ps *PostgresStorage) FindSales(ctx context.Context, period models.Period, district int64, serviceCode string) (*models.SalesRecord, error) {
	query := salesSelect + ` WHERE year_code = $1 AND quarter_code = $2 AND commercial_district_code = $3 AND service_code = $4 LIMIT 1`

	rec, err := scanSales(ps.db.QueryRowContext(ctx, query, period.Year, period.Quarter, district, serviceCode))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}

	return rec, nil
}

// FindSalesByDistrictAndCategory возвращает все записи продаж района за год по крупной категории услуг.
func (ps *PostgresStorage) FindSalesByDistrictAndCategory(ctx context.Context, year int, district int64, category string) ([]models.SalesRecord, error) {
	query := salesSelect + ` WHERE year_code = $1 AND commercial_district_code = $2 AND major_category_name = $3 ORDER BY quarter_code, service_code`

	rows, err := ps.db.QueryContext(ctx, query, year, district, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var records []models.SalesRecord
	for rows.Next() {
		rec, err := scanSales(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// FindQuarterlySales возвращает суммы продаж в будни и выходные по кварталам указанных лет.
func (ps *PostgresStorage) FindQuarterlySales(ctx context.Context, district int64, category string, years []int) ([]models.QuarterlySales, error) {
	query := `SELECT year_code, quarter_code, COALESCE(SUM(weekday_sales), 0), COALESCE(SUM(weekend_sales), 0)
		FROM comm_estimated_sales
		WHERE commercial_district_code = $1 AND major_category_name = $2 AND year_code = ANY($3)
		GROUP BY year_code, quarter_code
		ORDER BY year_code, quarter_code`

	yearCodes := make([]int64, len(years))
	for i, y := range years {
		yearCodes[i] = int64(y)
	}

	rows, err := ps.db.QueryContext(ctx, query, district, category, pq.Array(yearCodes))
	if err != nil {
		return nil, fmt.Errorf("failed to query quarterly sales: %w", err)
	}
	defer rows.Close()

	var points []models.QuarterlySales
	for rows.Next() {
		var p models.QuarterlySales
		if err := rows.Scan(&p.Year, &p.Quarter, &p.WeekdaySales, &p.WeekendSales); err != nil {
			return nil, fmt.Errorf("failed to scan quarterly sales: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return points, nil
}

// FindStoreCountTotal возвращает число точек района по всем видам услуг или models.ErrNotFound.
func (ps *PostgresStorage) FindStoreCountTotal(ctx context.Context, period models.Period, district int64) (*models.StoreCount, error) {
	query := `SELECT SUM(store_count) FROM comm_store WHERE year_code = $1 AND quarter_code = $2 AND commercial_district_code = $3`

	var total sql.NullInt64
	if err := ps.db.QueryRowContext(ctx, query, period.Year, period.Quarter, district).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to query store count: %w", err)
	}
	if !total.Valid {
		return nil, models.ErrNotFound
	}

	return &models.StoreCount{DistrictCode: district, Period: period, Total: total.Int64}, nil
}

// FindFloatingPopulation возвращает плавающее население района за период или models.ErrNotFound.
func (ps *PostgresStorage) FindFloatingPopulation(ctx context.Context, district int64, period models.Period) (*models.PopulationRecord, error) {
	return ps.findPopulation(ctx, `SELECT total_floating_population FROM comm_floating_population
		WHERE commercial_district_code = $1 AND year_code = $2 AND quarter_code = $3`, district, period)
}

// FindResidentPopulation возвращает постоянное население района за период или models.ErrNotFound.
func (ps *PostgresStorage) FindResidentPopulation(ctx context.Context, district int64, period models.Period) (*models.PopulationRecord, error) {
	return ps.findPopulation(ctx, `SELECT total_resident_population FROM comm_resident_population
		WHERE commercial_district_code = $1 AND year_code = $2 AND quarter_code = $3`, district, period)
}

func (ps *PostgresStorage) findPopulation(ctx context.Context, query string, district int64, period models.Period) (*models.PopulationRecord, error) {
	var total int64
	err := ps.db.QueryRowContext(ctx, query, district, period.Year, period.Quarter).Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query population: %w", err)
	}

	return &models.PopulationRecord{DistrictCode: district, Period: period, Total: total}, nil
}

// FindRankTable возвращает места районов по суммарной оценке вида услуг за период.
// Равные оценки получают одинаковое место.
func (ps *PostgresStorage) FindRankTable(ctx context.Context, period models.Period, serviceCode string) ([]models.RankTableEntry, error) {
	query := `SELECT commercial_district_code,
			RANK() OVER (ORDER BY commercial_service_total_score DESC) AS total_rank
		FROM comm_estimated_sales
		WHERE year_code = $1 AND quarter_code = $2 AND service_code = $3`

	rows, err := ps.db.QueryContext(ctx, query, period.Year, period.Quarter, serviceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query rank table: %w", err)
	}
	defer rows.Close()

	var table []models.RankTableEntry
	for rows.Next() {
		var e models.RankTableEntry
		if err := rows.Scan(&e.DistrictCode, &e.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan rank: %w", err)
		}
		table = append(table, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return table, nil
}

// ListServices возвращает справочник видов услуг, по которым есть продажи за период.
// Результаты отсортированы по коду.
func (ps *PostgresStorage) ListServices(ctx context.Context, period models.Period) ([]models.Service, error) {
	query := `SELECT DISTINCT service_code, service_name, major_category_code, major_category_name
		FROM comm_estimated_sales
		WHERE year_code = $1 AND quarter_code = $2
		ORDER BY service_code`

	rows, err := ps.db.QueryContext(ctx, query, period.Year, period.Quarter)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.Code, &s.Name, &s.MajorCategoryCode, &s.MajorCategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return services, nil
}

func scanSales(row rowScanner) (*models.SalesRecord, error) {
	var r models.SalesRecord
	err := row.Scan(
		&r.Period.Year, &r.Period.Quarter, &r.DistrictCode, &r.DistrictName,
		&r.ServiceCode, &r.ServiceName, &r.MajorCategoryCode, &r.MajorCategoryName,
		&r.MiddleCategoryCode, &r.MiddleCategoryName,
		&r.MonthlySales, &r.WeekdaySales, &r.WeekendSales, &r.SalesScore, &r.ServiceTotalScore,
		&r.MonSales, &r.TueSales, &r.WedSales, &r.ThuSales, &r.FriSales, &r.SatSales, &r.SunSales,
		&r.MonSalesCount, &r.TueSalesCount, &r.WedSalesCount, &r.ThuSalesCount,
		&r.FriSalesCount, &r.SatSalesCount, &r.SunSalesCount,
		&r.Time00To06Sales, &r.Time06To11Sales, &r.Time11To14Sales,
		&r.Time14To17Sales, &r.Time17To21Sales, &r.Time21To24Sales,
		&r.Time00To06SalesCount, &r.Time06To11SalesCount, &r.Time11To14SalesCount,
		&r.Time14To17SalesCount, &r.Time17To21SalesCount, &r.Time21To24SalesCount,
		&r.Age10Sales, &r.Age20Sales, &r.Age30Sales, &r.Age40Sales, &r.Age50Sales, &r.AgeOver60Sales,
		&r.Age10SalesCount, &r.Age20SalesCount, &r.Age30SalesCount,
		&r.Age40SalesCount, &r.Age50SalesCount, &r.AgeOver60SalesCount,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
