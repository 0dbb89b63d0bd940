// Package graph строит данные графиков продаж района и кэширует их.
package graph

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/akozadaev/commdist_analytics/internal/models"
)

// DaysPerMonth - делитель приведения сумм корзин к дневным значениям.
// Применяется ко всем корзинам независимо от числа исходных записей.
const DaysPerMonth = 30

var (
	// ErrEmptyInput возвращается при свертке пустого списка записей.
	ErrEmptyInput = errors.New("no sales records to aggregate")
	// ErrNoData означает, что данных для графика нет и кэшировать нечего.
	ErrNoData = errors.New("no sales data")
)

// Totals - суммы количества и выручки по корзинам измерения.
type Totals struct {
	Counts  []int64
	Amounts []float64
}

// Accumulate суммирует количество продаж и выручку по корзинам; отсутствующие поля считаются нулем.
func Accumulate(dim Dimension, records []models.SalesRecord) Totals {
	totals := Totals{
		Counts:  make([]int64, len(dim.Buckets)),
		Amounts: make([]float64, len(dim.Buckets)),
	}

	for i := range records {
		rec := &records[i]
		for j, b := range dim.Buckets {
			if c := b.Count(rec); c != nil {
				totals.Counts[j] += *c
			}
			if a := b.Amount(rec); a != nil {
				totals.Amounts[j] += *a
			}
		}
	}

	return totals
}

// PerDay делит суммы на DaysPerMonth. Количество делится нацело.
func (t Totals) PerDay() Totals {
	out := Totals{
		Counts:  make([]int64, len(t.Counts)),
		Amounts: make([]float64, len(t.Amounts)),
	}
	for i, c := range t.Counts {
		out.Counts[i] = c / DaysPerMonth
	}
	for i, a := range t.Amounts {
		out.Amounts[i] = a / DaysPerMonth
	}
	return out
}

// Fold строит столбчатый график по измерению. Год и название района берутся из первой записи.
func Fold(dim Dimension, records []models.SalesRecord) (*Payload, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	totals := Accumulate(dim, records).PerDay()
	name := records[0].DistrictName

	return &Payload{
		ChartType:        ChartBar,
		Year:             records[0].Period.Year,
		CommDistrictName: &name,
		Data: Data{
			Categories: dim.Labels(),
			Series: NamedSeries{
				{Name: dim.Type + "SalesCount", Values: totals.Counts},
				{Name: dim.Type + "Sales", Values: totals.Amounts},
			},
		},
	}, nil
}

// Share - доля вида услуг в выручке района, в процентах.
type Share struct {
	Category string
	Percent  float64
}

// ServiceMix считает доли выручки по видам услуг в порядке первого появления.
// Возвращает false, если суммарная выручка равна нулю.
func ServiceMix(records []models.SalesRecord) ([]Share, bool) {
	var (
		order []string
		sums  = make(map[string]float64)
		total float64
	)

	for _, rec := range records {
		if _, seen := sums[rec.ServiceName]; !seen {
			order = append(order, rec.ServiceName)
		}
		sums[rec.ServiceName] += rec.MonthlySales
		total += rec.MonthlySales
	}

	if total == 0 {
		return nil, false
	}

	shares := make([]Share, 0, len(order))
	for _, category := range order {
		shares = append(shares, Share{
			Category: category,
			Percent:  roundHalfUp(sums[category]/total*100*10) / 10,
		})
	}
	return shares, true
}

// MixPayload строит кольцевой график структуры выручки.
// Пустой список дает график без категорий, нулевая выручка - ErrNoData.
func MixPayload(year int, records []models.SalesRecord) (*Payload, error) {
	name := ""
	categories := []string{}
	series := []float64{}

	if len(records) > 0 {
		name = records[0].DistrictName

		shares, ok := ServiceMix(records)
		if !ok {
			return nil, ErrNoData
		}
		for _, s := range shares {
			categories = append(categories, s.Category)
			series = append(series, s.Percent)
		}
	}

	return &Payload{
		ChartType:        ChartDonut,
		Year:             year,
		CommDistrictName: &name,
		Data:             Data{Categories: categories, Series: series},
	}, nil
}

// QuarterlyPayload строит график продаж в будни и выходные по кварталам года year и предыдущего.
func QuarterlyPayload(year int, points []models.QuarterlySales) *Payload {
	categories := make([]string, 0, len(points))
	series := make([]QuarterPoint, 0, len(points))

	for _, p := range points {
		yearQuarter := fmt.Sprintf("%d-%d", p.Year, p.Quarter)
		categories = append(categories, yearQuarter)
		series = append(series, QuarterPoint{
			YearQuarter:  yearQuarter,
			WeekDaySales: formatWhole(p.WeekdaySales),
			WeekendSales: formatWhole(p.WeekendSales),
		})
	}

	return &Payload{
		ChartType: ChartStackBar,
		Year:      fmt.Sprintf("%d~%d", year, year-1),
		Data:      Data{Categories: categories, Series: series},
	}
}

// Summarize возвращает средние месячные продажи, продажи в будни и в выходные.
func Summarize(records []models.SalesRecord) models.SalesSummary {
	if len(records) == 0 {
		return models.SalesSummary{}
	}

	var monthly, weekday, weekend float64
	for _, rec := range records {
		monthly += rec.MonthlySales
		weekday += rec.WeekdaySales
		weekend += rec.WeekendSales
	}

	n := float64(len(records))
	return models.SalesSummary{
		MonthlySales: int64(roundHalfUp(monthly / n)),
		WeekdaySales: int64(roundHalfUp(weekday / n)),
		WeekendSales: int64(roundHalfUp(weekend / n)),
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func formatWhole(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}
