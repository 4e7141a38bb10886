package core

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseError reports a row field that could not be normalized.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseRow normalizes one raw CSV row into a DailyRecord. The date must be
// YYYY-MM-DD. An empty temperature field yields a nil value, not an error; a
// malformed date or a non-empty malformed temperature fails the whole row.
func ParseRow(row RawRow) (DailyRecord, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(row.Date))
	if err != nil {
		return DailyRecord{}, &ParseError{Field: "date", Value: row.Date, Err: err}
	}

	maxT, err := parseTemperature("max_temperature", row.MaxTemperature)
	if err != nil {
		return DailyRecord{}, err
	}
	minT, err := parseTemperature("min_temperature", row.MinTemperature)
	if err != nil {
		return DailyRecord{}, err
	}

	return DailyRecord{
		Date:  date,
		Year:  date.Year(),
		Month: int(date.Month()),
		Day:   date.Day(),
		Max:   maxT,
		Min:   minT,
	}, nil
}

func parseTemperature(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ParseError{Field: field, Value: raw, Err: err}
	}
	return &v, nil
}

// NormalizeAll parses every row in source order, dropping rows that fail and
// returning the drop count alongside the surviving records.
func NormalizeAll(rows []RawRow) ([]DailyRecord, int) {
	records := make([]DailyRecord, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		rec, err := ParseRow(row)
		if err != nil {
			dropped++
			log.Printf("normalize: dropping row: %v", err)
			continue
		}
		records = append(records, rec)
	}
	return records, dropped
}
