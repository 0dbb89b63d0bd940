package graph

import (
	"bytes"
	"encoding/json"
)

// Типы графиков, которые понимает клиентская библиотека диаграмм.
const (
	ChartBar      = "bar"
	ChartDonut    = "donut"
	ChartStackBar = "stackbar"
)

// Payload - документ графика. Порядок и имена полей входят в контракт с клиентом.
type Payload struct {
	ChartType        string  `json:"chartType"`
	Year             any     `json:"year"`
	CommDistrictName *string `json:"commDistrictName,omitempty"`
	Data             Data    `json:"data"`
}

// Data содержит подписи категорий и серии, выровненные по индексу с категориями.
type Data struct {
	Categories []string `json:"categories"`
	Series     any      `json:"series"`
}

// Column - именованная серия значений.
type Column struct {
	Name   string
	Values any
}

// NamedSeries кодируется как JSON-объект с ключами в порядке объявления колонок.
type NamedSeries []Column

func (s NamedSeries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(col.Name)
		if err != nil {
			return nil, err
		}
		values, err := json.Marshal(col.Values)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(values)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// QuarterPoint - точка графика квартальной динамики. Суммы передаются строками без дробной части.
type QuarterPoint struct {
	YearQuarter  string `json:"YearQuarter"`
	WeekDaySales string `json:"WeekDaySales"`
	WeekendSales string `json:"WeekendSales"`
}
