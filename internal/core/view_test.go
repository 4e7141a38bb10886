package core

import (
	"reflect"
	"testing"
)

func testView(t *testing.T) *View {
	t.Helper()
	records := []DailyRecord{
		sample(2020, 7, 15, fp(33.2), fp(27.1)),
		sample(2020, 7, 16, nil, fp(26.0)),
		sample(2020, 7, 18, fp(34.0), nil),
		sample(2020, 1, 2, fp(8.0), fp(-4.0)),
	}
	m, err := BuildMatrix(records, []int{2019, 2020})
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}
	return NewView(m)
}

func TestViewStartsInMaxMode(t *testing.T) {
	v := testView(t)
	if v.Mode() != ModeMax {
		t.Errorf("initial mode = %v, want %v", v.Mode(), ModeMax)
	}
}

func TestCurrentValueByMode(t *testing.T) {
	v := testView(t)
	july := v.Matrix.Cell(1, 7)

	if got := v.CurrentValue(july); *got != 33.2 {
		t.Errorf("MAX CurrentValue = %v, want 33.2", *got)
	}
	v.ToggleMode()
	if got := v.CurrentValue(july); *got != 26.0 {
		t.Errorf("MIN CurrentValue = %v, want 26.0", *got)
	}

	empty := v.Matrix.Cell(0, 3)
	if got := v.CurrentValue(empty); got != nil {
		t.Errorf("empty cell CurrentValue = %v, want nil", *got)
	}
}

func TestToggleModeInvolution(t *testing.T) {
	v := testView(t)
	july := v.Matrix.Cell(1, 7)

	startMode := v.Mode()
	startValue := v.CurrentValue(july)
	startSeries := v.SparklineSeries(july)

	v.ToggleMode()
	if v.Mode() == startMode {
		t.Fatal("ToggleMode did not change the mode")
	}
	v.ToggleMode()

	if v.Mode() != startMode {
		t.Errorf("mode after double toggle = %v, want %v", v.Mode(), startMode)
	}
	if got := v.CurrentValue(july); !reflect.DeepEqual(got, startValue) {
		t.Errorf("CurrentValue changed across a double toggle")
	}
	if got := v.SparklineSeries(july); !reflect.DeepEqual(got, startSeries) {
		t.Errorf("SparklineSeries changed across a double toggle")
	}
}

func TestSparklineSeriesGaps(t *testing.T) {
	v := testView(t)
	july := v.Matrix.Cell(1, 7)

	pts := v.SparklineSeries(july)
	if len(pts) != 3 {
		t.Fatalf("len(pts) = %d, want 3", len(pts))
	}
	wantDays := []int{15, 16, 18}
	for i, p := range pts {
		if p.Day != wantDays[i] {
			t.Errorf("pts[%d].Day = %d, want %d", i, p.Day, wantDays[i])
		}
	}
	// MAX mode: the 16th has no max sample, so it must surface as a gap.
	if pts[1].Value != nil {
		t.Errorf("pts[1].Value = %v, want nil gap", *pts[1].Value)
	}
	if pts[0].Value == nil || *pts[0].Value != 33.2 {
		t.Errorf("pts[0].Value = %v, want 33.2", pts[0].Value)
	}

	v.ToggleMode()
	pts = v.SparklineSeries(july)
	// MIN mode: the gap moves to the 18th.
	if pts[1].Value == nil || *pts[1].Value != 26.0 {
		t.Errorf("MIN pts[1].Value = %v, want 26.0", pts[1].Value)
	}
	if pts[2].Value != nil {
		t.Errorf("MIN pts[2].Value = %v, want nil gap", *pts[2].Value)
	}
}

func TestSparklineSeriesIdempotent(t *testing.T) {
	v := testView(t)
	july := v.Matrix.Cell(1, 7)

	first := v.SparklineSeries(july)
	second := v.SparklineSeries(july)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated SparklineSeries calls differ without a mode change")
	}
}

func TestColorDomainReversed(t *testing.T) {
	v := testView(t)
	hot, cold := v.ColorDomain()

	if hot != v.Matrix.GlobalMax || cold != v.Matrix.GlobalMin {
		t.Errorf("ColorDomain() = (%v, %v), want (%v, %v)", hot, cold, v.Matrix.GlobalMax, v.Matrix.GlobalMin)
	}
	if hot < cold {
		t.Errorf("domain not reversed: hot %v < cold %v", hot, cold)
	}
}

func TestDescribe(t *testing.T) {
	v := testView(t)

	info := v.Describe(v.Matrix.Cell(1, 7))
	if info.Label != "July 2020" {
		t.Errorf("Label = %q, want %q", info.Label, "July 2020")
	}
	if info.Mode != ModeMax {
		t.Errorf("Mode = %v, want %v", info.Mode, ModeMax)
	}
	if info.Value == nil || *info.Value != 33.2 {
		t.Errorf("Value = %v, want 33.2", info.Value)
	}

	empty := v.Describe(v.Matrix.Cell(0, 3))
	if empty.Label != "March 2019" {
		t.Errorf("Label = %q, want %q", empty.Label, "March 2019")
	}
	if empty.Value != nil {
		t.Errorf("empty cell Value = %v, want nil", *empty.Value)
	}
}
