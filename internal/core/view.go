package core

import (
	"fmt"
	"time"
)

// SeriesPoint is one sparkline sample. A nil Value marks a gap the renderer
// must leave as a break in the line, never interpolate across.
type SeriesPoint struct {
	Day   int
	Value *float64
}

// CellInfo is the tooltip payload for one cell.
type CellInfo struct {
	Label string // "<Month> <Year>"
	Mode  Mode
	Value *float64
}

// View wraps the immutable MatrixModel with the single piece of interaction
// state: the current display mode. Per-cell values and series are derived on
// demand from the matrix and the mode; nothing is cached against the mode.
type View struct {
	Matrix *MatrixModel

	mode Mode
}

func NewView(m *MatrixModel) *View {
	return &View{Matrix: m, mode: ModeMax}
}

func (v *View) Mode() Mode { return v.mode }

// ToggleMode flips MAX and MIN. Callers re-render to observe the effect;
// there is no notification mechanism.
func (v *View) ToggleMode() { v.mode = NextMode(v.mode) }

// CurrentValue returns the monthly aggregate driving the cell's color in the
// current mode, nil for months with no matching samples.
func (v *View) CurrentValue(cell *MonthCell) *float64 {
	if v.mode == ModeMin {
		return cell.MonthMin
	}
	return cell.MonthMax
}

// SparklineSeries derives the per-day series for a cell in the current mode,
// preserving day order. Nil values are gaps.
func (v *View) SparklineSeries(cell *MonthCell) []SeriesPoint {
	pts := make([]SeriesPoint, len(cell.Days))
	for i, d := range cell.Days {
		val := d.Max
		if v.mode == ModeMin {
			val = d.Min
		}
		pts[i] = SeriesPoint{Day: d.Day, Value: val}
	}
	return pts
}

// ColorDomain returns the global extrema with the hot end first, so a scale
// built as (first value → hot color, second → cold color) reads correctly
// whichever interpolation direction the renderer picks.
func (v *View) ColorDomain() (float64, float64) {
	return v.Matrix.GlobalMax, v.Matrix.GlobalMin
}

// Describe builds the tooltip payload for a cell.
func (v *View) Describe(cell *MonthCell) CellInfo {
	return CellInfo{
		Label: fmt.Sprintf("%s %d", time.Month(cell.Month), cell.Year),
		Mode:  v.mode,
		Value: v.CurrentValue(cell),
	}
}
