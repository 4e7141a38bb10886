package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/salomonkoivisto/CSCE-679/internal/core"
)

// Column order expected in the source file.
var header = []string{"date", "max_temperature", "min_temperature"}

// Load reads the daily-records CSV at path into raw rows. The first line
// must be the expected header. Rows shorter than three fields are padded
// with empties so that partially filled rows still normalize downstream.
func Load(path string) ([]core.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may omit trailing empty fields

	lines, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("dataset %s: missing header", path)
	}
	if err := checkHeader(lines[0]); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	rows := make([]core.RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, core.RawRow{
			Date:           field(line, 0),
			MaxTemperature: field(line, 1),
			MinTemperature: field(line, 2),
		})
	}
	return rows, nil
}

func checkHeader(line []string) error {
	if len(line) < len(header) {
		return fmt.Errorf("header has %d column(s), want %d", len(line), len(header))
	}
	for i, want := range header {
		if strings.TrimSpace(strings.ToLower(line[i])) != want {
			return fmt.Errorf("unexpected column %d: %q, want %q", i, line[i], want)
		}
	}
	return nil
}

func field(line []string, i int) string {
	if i >= len(line) {
		return ""
	}
	return strings.TrimSpace(line[i])
}
