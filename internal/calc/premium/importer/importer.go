package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Strapcalc/internal/calc/securing"

	"github.com/xuri/excelize/v2"
)

// Expected columns after the header row:
// region, weight, weight_unit, length, dimension_unit, method, angle (optional)
const minColumns = 6

var ErrEmptySheet = errors.New("empty sheet")

type RowResult struct {
	Row int `json:"row"`
	securing.Result
}

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Count   int          `json:"count"`
	Results []RowResult  `json:"results"`
	Skipped []SkippedRow `json:"skipped"`
}

// Import reads the first sheet of an xlsx workbook and calculates every cargo row.
// Rows that cannot be parsed or validated are reported in Skipped.
func Import(r io.Reader) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return ImportResult{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return ImportResult{}, ErrEmptySheet
	}

	out := ImportResult{Results: []RowResult{}, Skipped: []SkippedRow{}}
	for i := 1; i < len(rows); i++ {
		rowNum := i + 1
		if isBlank(rows[i]) {
			continue
		}
		input, err := parseRow(rows[i])
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedRow{Row: rowNum, Reason: err.Error()})
			continue
		}
		res, err := securing.Calculate(input)
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedRow{Row: rowNum, Reason: err.Error()})
			continue
		}
		out.Results = append(out.Results, RowResult{Row: rowNum, Result: res})
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseRow(row []string) (securing.Input, error) {
	if len(row) < minColumns {
		return securing.Input{}, fmt.Errorf("expected at least %d columns, got %d", minColumns, len(row))
	}
	weight, err := toFloat(row[1])
	if err != nil {
		return securing.Input{}, fmt.Errorf("weight: %w", err)
	}
	length, err := toFloat(row[3])
	if err != nil {
		return securing.Input{}, fmt.Errorf("length: %w", err)
	}
	in := securing.Input{
		Cargo: securing.CargoInput{
			Region:        securing.Region(cell(row[0])),
			Weight:        weight,
			WeightUnit:    securing.WeightUnit(cell(row[2])),
			Length:        length,
			DimensionUnit: securing.DimensionUnit(cell(row[4])),
		},
		Method: securing.Method(cell(row[5])),
	}
	if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
		angle, err := toFloat(row[6])
		if err != nil {
			return securing.Input{}, fmt.Errorf("angle: %w", err)
		}
		in.Angle = &angle
	}
	return in, nil
}

func cell(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
