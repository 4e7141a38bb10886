package core

import (
	"errors"

	"github.com/samber/lo"
)

// DefaultWindowYears is the number of most recent years displayed.
const DefaultWindowYears = 10

// ErrEmptyDataset is returned when there is nothing to build a matrix from.
var ErrEmptyDataset = errors.New("empty dataset")

// SelectWindow computes the n most recent years as a numeric range ending at
// the maximum year present in records, and returns the subset of records
// falling inside it. The years slice always has exactly n entries,
// ascending, even when some of those years carry no data.
func SelectWindow(records []DailyRecord, n int) ([]int, []DailyRecord, error) {
	if len(records) == 0 {
		return nil, nil, ErrEmptyDataset
	}
	if n <= 0 {
		n = DefaultWindowYears
	}

	maxYear := lo.MaxBy(records, func(a, b DailyRecord) bool { return a.Year > b.Year }).Year
	first := maxYear - n + 1

	years := make([]int, n)
	for i := range years {
		years[i] = first + i
	}

	filtered := lo.Filter(records, func(r DailyRecord, _ int) bool {
		return r.Year >= first && r.Year <= maxYear
	})
	return years, filtered, nil
}
