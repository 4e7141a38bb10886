package core

import "log"

// Build runs the full aggregation pipeline: normalize raw rows, select the
// windowYears most recent years, aggregate into the dense matrix and wrap
// the result in a View starting in MAX mode.
//
// Construction is all-or-nothing: on error no partial model escapes.
// Unparseable rows are dropped and counted, not fatal; an empty dataset is.
func Build(rows []RawRow, windowYears int) (*View, error) {
	records, dropped := NormalizeAll(rows)
	if dropped > 0 {
		log.Printf("pipeline: dropped %d unparseable row(s)", dropped)
	}

	years, windowed, err := SelectWindow(records, windowYears)
	if err != nil {
		return nil, err
	}

	matrix, err := BuildMatrix(windowed, years)
	if err != nil {
		return nil, err
	}
	return NewView(matrix), nil
}
