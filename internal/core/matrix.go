package core

import (
	"sort"

	"github.com/samber/lo"
)

// BuildMatrix aggregates windowed records into the dense year × month grid.
// Exactly one cell exists per (year, month) pair; months with no matching
// records get an empty Days slice and nil extrema. Output is deterministic
// for any input ordering: day order inside a cell is enforced by a stable
// sort, and duplicate days keep the first occurrence.
//
// Returns ErrEmptyDataset when not a single record in the window carries a
// temperature value, since the global extrema would be undefined and a color
// scale built on them would be garbage.
func BuildMatrix(records []DailyRecord, years []int) (*MatrixModel, error) {
	byYear := lo.GroupBy(records, func(r DailyRecord) int { return r.Year })

	m := &MatrixModel{
		Years: years,
		Cells: make([]MonthCell, 0, len(years)*12),
	}

	var globalMax, globalMin *float64
	for x, year := range years {
		byMonth := lo.GroupBy(byYear[year], func(r DailyRecord) int { return r.Month })
		for month := 1; month <= 12; month++ {
			cell := MonthCell{
				Year:   year,
				Month:  month,
				XIndex: x,
				YIndex: month - 1,
				Days:   sortedUniqueDays(byMonth[month]),
			}
			for _, d := range cell.Days {
				cell.MonthMax = foldMax(cell.MonthMax, d.Max)
				cell.MonthMin = foldMin(cell.MonthMin, d.Min)
			}
			globalMax = foldMax(globalMax, cell.MonthMax)
			globalMin = foldMin(globalMin, cell.MonthMin)
			m.Cells = append(m.Cells, cell)
		}
	}

	if globalMax == nil || globalMin == nil {
		return nil, ErrEmptyDataset
	}
	m.GlobalMax = *globalMax
	m.GlobalMin = *globalMin
	return m, nil
}

// sortedUniqueDays copies days, sorts ascending by day and collapses
// duplicate days to the first occurrence.
func sortedUniqueDays(days []DailyRecord) []DailyRecord {
	out := make([]DailyRecord, len(days))
	copy(out, days)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day < out[j].Day })

	deduped := out[:0]
	for _, d := range out {
		if len(deduped) > 0 && deduped[len(deduped)-1].Day == d.Day {
			continue
		}
		deduped = append(deduped, d)
	}
	return deduped
}

func foldMax(acc, v *float64) *float64 {
	if v == nil {
		return acc
	}
	if acc == nil || *v > *acc {
		val := *v
		return &val
	}
	return acc
}

func foldMin(acc, v *float64) *float64 {
	if v == nil {
		return acc
	}
	if acc == nil || *v < *acc {
		val := *v
		return &val
	}
	return acc
}
