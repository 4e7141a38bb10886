package core

import (
	"errors"
	"testing"
	"time"
)

func dayIn(year, month, day int) DailyRecord {
	return DailyRecord{
		Date:  time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		Year:  year,
		Month: month,
		Day:   day,
	}
}

func TestSelectWindowFullDecade(t *testing.T) {
	var records []DailyRecord
	for y := 2014; y <= 2023; y++ {
		records = append(records, dayIn(y, 6, 1))
	}

	years, filtered, err := SelectWindow(records, 10)
	if err != nil {
		t.Fatalf("SelectWindow: %v", err)
	}
	if len(years) != 10 {
		t.Fatalf("len(years) = %d, want 10", len(years))
	}
	for i, want := 0, 2014; i < 10; i, want = i+1, want+1 {
		if years[i] != want {
			t.Errorf("years[%d] = %d, want %d", i, years[i], want)
		}
	}
	if len(filtered) != len(records) {
		t.Errorf("len(filtered) = %d, want %d", len(filtered), len(records))
	}
}

func TestSelectWindowSparseYears(t *testing.T) {
	records := []DailyRecord{
		dayIn(2021, 1, 1),
		dayIn(2022, 1, 1),
	}

	years, filtered, err := SelectWindow(records, 10)
	if err != nil {
		t.Fatalf("SelectWindow: %v", err)
	}
	if len(years) != 10 {
		t.Fatalf("len(years) = %d, want 10", len(years))
	}
	if years[0] != 2013 || years[9] != 2022 {
		t.Errorf("window = [%d..%d], want [2013..2022]", years[0], years[9])
	}
	if len(filtered) != 2 {
		t.Errorf("len(filtered) = %d, want 2", len(filtered))
	}
}

func TestSelectWindowFiltersOldRecords(t *testing.T) {
	records := []DailyRecord{
		dayIn(2005, 3, 1),
		dayIn(2020, 3, 1),
		dayIn(2023, 3, 1),
	}

	years, filtered, err := SelectWindow(records, 10)
	if err != nil {
		t.Fatalf("SelectWindow: %v", err)
	}
	if years[0] != 2014 || years[len(years)-1] != 2023 {
		t.Errorf("window = [%d..%d], want [2014..2023]", years[0], years[len(years)-1])
	}
	for _, r := range filtered {
		if r.Year == 2005 {
			t.Errorf("record from 2005 survived the window filter")
		}
	}
	if len(filtered) != 2 {
		t.Errorf("len(filtered) = %d, want 2", len(filtered))
	}
}

func TestSelectWindowDefaultSize(t *testing.T) {
	records := []DailyRecord{dayIn(2023, 1, 1)}

	years, _, err := SelectWindow(records, 0)
	if err != nil {
		t.Fatalf("SelectWindow: %v", err)
	}
	if len(years) != DefaultWindowYears {
		t.Errorf("len(years) = %d, want %d", len(years), DefaultWindowYears)
	}
}

func TestSelectWindowEmpty(t *testing.T) {
	_, _, err := SelectWindow(nil, 10)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("err = %v, want ErrEmptyDataset", err)
	}
}
