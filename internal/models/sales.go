package models

// SalesRecord представляет оценочные продажи района по виду услуг за квартал (PostgreSQL).
// Поля разбивки по дням, времени и возрасту могут отсутствовать (NULL в БД).
type SalesRecord struct {
	Period       Period
	DistrictCode int64
	DistrictName string

	ServiceCode        string
	ServiceName        string
	MajorCategoryCode  string
	MajorCategoryName  string
	MiddleCategoryCode string
	MiddleCategoryName string

	MonthlySales      float64
	WeekdaySales      float64
	WeekendSales      float64
	SalesScore        float64
	ServiceTotalScore float64

	MonSales, TueSales, WedSales, ThuSales, FriSales, SatSales, SunSales *float64

	MonSalesCount, TueSalesCount, WedSalesCount, ThuSalesCount *int64
	FriSalesCount, SatSalesCount, SunSalesCount                *int64

	Time00To06Sales, Time06To11Sales, Time11To14Sales *float64
	Time14To17Sales, Time17To21Sales, Time21To24Sales *float64

	Time00To06SalesCount, Time06To11SalesCount, Time11To14SalesCount *int64
	Time14To17SalesCount, Time17To21SalesCount, Time21To24SalesCount *int64

	Age10Sales, Age20Sales, Age30Sales, Age40Sales, Age50Sales, AgeOver60Sales *float64

	Age10SalesCount, Age20SalesCount, Age30SalesCount     *int64
	Age40SalesCount, Age50SalesCount, AgeOver60SalesCount *int64
}

// QuarterlySales - суммарные продажи района в будни и выходные за один квартал.
type QuarterlySales struct {
	Year         int
	Quarter      int
	WeekdaySales float64
	WeekendSales float64
}

// PopulationRecord - численность населения района за период (плавающее или постоянное).
type PopulationRecord struct {
	DistrictCode int64
	Period       Period
	Total        int64
}

// StoreCount - общее число торговых точек района по всем видам услуг.
type StoreCount struct {
	DistrictCode int64
	Period       Period
	Total        int64
}

// RankTableEntry - позиция района в рейтинге по суммарной оценке вида услуг.
type RankTableEntry struct {
	DistrictCode int64
	Rank         int64
}

// SalesSummary - средние продажи за месяц, в будни и в выходные.
type SalesSummary struct {
	MonthlySales int64 `json:"monthlySales"`
	WeekdaySales int64 `json:"weekDaySales"`
	WeekendSales int64 `json:"weekendSales"`
}
