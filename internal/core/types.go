package core

import "time"

// RawRow is one line of the source CSV, prior to normalization.
type RawRow struct {
	Date           string `json:"date"`
	MaxTemperature string `json:"max_temperature"`
	MinTemperature string `json:"min_temperature"`
}

// DailyRecord is a normalized daily observation. Year, Month and Day are
// derived from Date. Max and Min are nil when the source field was empty.
type DailyRecord struct {
	Date  time.Time `json:"date"`
	Year  int       `json:"year"`
	Month int       `json:"month"` // 1-12
	Day   int       `json:"day"`   // 1-31
	Max   *float64  `json:"max,omitempty"`
	Min   *float64  `json:"min,omitempty"`
}

// MonthCell summarizes one (year, month) slot of the matrix. Days is sorted
// ascending by day with unique day values. MonthMax/MonthMin are nil when no
// daily sample carried the corresponding value.
type MonthCell struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`   // 1-12
	XIndex   int           `json:"x_index"` // position of Year within the window, ascending
	YIndex   int           `json:"y_index"` // Month - 1
	Days     []DailyRecord `json:"days"`
	MonthMax *float64      `json:"month_max,omitempty"`
	MonthMin *float64      `json:"month_min,omitempty"`
}

// MatrixModel is the aggregation result: one cell per (year in window) ×
// (month 1..12), plus the extrema over all non-nil monthly values, used for
// shared color and sparkline scaling. Built once per dataset load and never
// mutated afterwards.
type MatrixModel struct {
	Years     []int       `json:"years"`
	Cells     []MonthCell `json:"cells"`
	GlobalMax float64     `json:"global_max"`
	GlobalMin float64     `json:"global_min"`
}

// Cell returns the cell for the xIndex-th window year and the given month
// (1-12), or nil when out of range. Cells are stored year-major, so the
// lookup is a direct index.
func (m *MatrixModel) Cell(xIndex, month int) *MonthCell {
	idx := xIndex*12 + month - 1
	if month < 1 || month > 12 || idx < 0 || idx >= len(m.Cells) {
		return nil
	}
	return &m.Cells[idx]
}
