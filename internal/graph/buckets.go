package graph

import "github.com/akozadaev/commdist_analytics/internal/models"

// Bucket связывает подпись категории графика с полями записи продаж.
type Bucket struct {
	Label  string
	Count  func(*models.SalesRecord) *int64
	Amount func(*models.SalesRecord) *float64
}

// Dimension - фиксированное разбиение продаж на корзины.
type Dimension struct {
	Type    string // префикс имен серий: "<type>SalesCount", "<type>Sales"
	Name    string // имя метрики в ключе кэша
	Buckets []Bucket
}

// Labels возвращает подписи корзин в порядке их определения.
func (d Dimension) Labels() []string {
	labels := make([]string, len(d.Buckets))
	for i, b := range d.Buckets {
		labels[i] = b.Label
	}
	return labels
}

// Daily - продажи по дням недели, с понедельника по воскресенье.
var Daily = Dimension{
	Type: "day",
	Name: "dayGraph",
	Buckets: []Bucket{
		{"월", func(r *models.SalesRecord) *int64 { return r.MonSalesCount }, func(r *models.SalesRecord) *float64 { return r.MonSales }},
		{"화", func(r *models.SalesRecord) *int64 { return r.TueSalesCount }, func(r *models.SalesRecord) *float64 { return r.TueSales }},
		{"수", func(r *models.SalesRecord) *int64 { return r.WedSalesCount }, func(r *models.SalesRecord) *float64 { return r.WedSales }},
		{"목", func(r *models.SalesRecord) *int64 { return r.ThuSalesCount }, func(r *models.SalesRecord) *float64 { return r.ThuSales }},
		{"금", func(r *models.SalesRecord) *int64 { return r.FriSalesCount }, func(r *models.SalesRecord) *float64 { return r.FriSales }},
		{"토", func(r *models.SalesRecord) *int64 { return r.SatSalesCount }, func(r *models.SalesRecord) *float64 { return r.SatSales }},
		{"일", func(r *models.SalesRecord) *int64 { return r.SunSalesCount }, func(r *models.SalesRecord) *float64 { return r.SunSales }},
	},
}

// Hourly - продажи по временным интервалам суток.
var Hourly = Dimension{
	Type: "time",
	Name: "timeGraph",
	Buckets: []Bucket{
		{"00~06시", func(r *models.SalesRecord) *int64 { return r.Time00To06SalesCount }, func(r *models.SalesRecord) *float64 { return r.Time00To06Sales }},
		{"06~11시", func(r *models.SalesRecord) *int64 { return r.Time06To11SalesCount }, func(r *models.SalesRecord) *float64 { return r.Time06To11Sales }},
		{"11~14시", func(r *models.SalesRecord) *int64 { return r.Time11To14SalesCount }, func(r *models.SalesRecord) *float64 { return r.Time11To14Sales }},
		{"14~17시", func(r *models.SalesRecord) *int64 { return r.Time14To17SalesCount }, func(r *models.SalesRecord) *float64 { return r.Time14To17Sales }},
		{"17~21시", func(r *models.SalesRecord) *int64 { return r.Time17To21SalesCount }, func(r *models.SalesRecord) *float64 { return r.Time17To21Sales }},
		{"21~24시", func(r *models.SalesRecord) *int64 { return r.Time21To24SalesCount }, func(r *models.SalesRecord) *float64 { return r.Time21To24Sales }},
	},
}

// Age - продажи по возрастным группам покупателей.
var Age = Dimension{
	Type: "age",
	Name: "ageGraph",
	Buckets: []Bucket{
		{"10대", func(r *models.SalesRecord) *int64 { return r.Age10SalesCount }, func(r *models.SalesRecord) *float64 { return r.Age10Sales }},
		{"20대", func(r *models.SalesRecord) *int64 { return r.Age20SalesCount }, func(r *models.SalesRecord) *float64 { return r.Age20Sales }},
		{"30대", func(r *models.SalesRecord) *int64 { return r.Age30SalesCount }, func(r *models.SalesRecord) *float64 { return r.Age30Sales }},
		{"40대", func(r *models.SalesRecord) *int64 { return r.Age40SalesCount }, func(r *models.SalesRecord) *float64 { return r.Age40Sales }},
		{"50대", func(r *models.SalesRecord) *int64 { return r.Age50SalesCount }, func(r *models.SalesRecord) *float64 { return r.Age50Sales }},
		{"60대이상", func(r *models.SalesRecord) *int64 { return r.AgeOver60SalesCount }, func(r *models.SalesRecord) *float64 { return r.AgeOver60Sales }},
	},
}
