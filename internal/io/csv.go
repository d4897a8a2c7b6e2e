package io

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/paveg/rowframe/internal/dataframe"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/value"
)

const (
	// Boolean string constants
	trueStr  = "true"
	falseStr = "false"
)

type cellType int

const (
	cellText cellType = iota
	cellBool
	cellInt
	cellFloat
)

// Read reads CSV data and returns a DataFrame. Empty cells and cells missing
// from short records become Null.
func (r *CSVReader) Read() (*dataframe.DataFrame, error) {
	csvReader := csv.NewReader(r.reader)
	csvReader.Comma = r.options.Delimiter
	csvReader.Comment = r.options.Comment
	csvReader.TrimLeadingSpace = r.options.SkipInitialSpace
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return dataframe.New(), nil
	}

	var headers []string
	dataRows := records
	if r.options.Header {
		headers = records[0]
		dataRows = records[1:]
	} else {
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i)
		}
	}

	types := make([]cellType, len(headers))
	for i := range headers {
		types[i] = cellText
		if r.options.TypeInference {
			types[i] = inferCellType(dataRows, i)
		}
	}

	rows := make([]row.Row, len(dataRows))
	fields := make([]row.Field, len(headers))
	for j, record := range dataRows {
		for i, header := range headers {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			fields[i] = row.Field{Key: header, Value: parseCell(cell, types[i])}
		}
		rows[j] = row.New(fields...)
	}

	return dataframe.New(rows...), nil
}

// inferCellType determines the most specific type every non-empty cell of
// column col can be parsed as
func inferCellType(records [][]string, col int) cellType {
	canBeInt := true
	canBeFloat := true
	canBeBool := true
	hasNonEmptyValue := false

	for _, record := range records {
		if col >= len(record) || record[col] == "" {
			continue
		}
		cell := record[col]
		hasNonEmptyValue = true

		if canBeBool {
			lower := strings.ToLower(cell)
			if lower != trueStr && lower != falseStr {
				canBeBool = false
			}
		}

		if canBeInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				canBeInt = false
			}
		}

		if canBeFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				canBeFloat = false
			}
		}
	}

	switch {
	case !hasNonEmptyValue:
		return cellText
	case canBeBool:
		return cellBool
	case canBeInt:
		return cellInt
	case canBeFloat:
		return cellFloat
	default:
		return cellText
	}
}

func parseCell(cell string, t cellType) value.Value {
	if cell == "" {
		return value.Null()
	}

	switch t {
	case cellBool:
		return value.Bool(strings.EqualFold(cell, trueStr))
	case cellInt:
		i, _ := strconv.ParseInt(cell, 10, 64)
		return value.Int(i)
	case cellFloat:
		f, _ := strconv.ParseFloat(cell, 64)
		return value.Number(f)
	default:
		return value.Text(cell)
	}
}

// Write writes the DataFrame to CSV format. The header and cell order follow
// Columns(); missing cells are written empty.
func (w *CSVWriter) Write(df *dataframe.DataFrame) error {
	csvWriter := csv.NewWriter(w.writer)
	csvWriter.Comma = w.options.Delimiter

	columns := df.Columns()
	if w.options.Header && len(columns) > 0 {
		if err := csvWriter.Write(columns); err != nil {
			return fmt.Errorf("writing headers: %w", err)
		}
	}

	for i, r := range df.ToArray() {
		record := make([]string, len(columns))
		for j, c := range columns {
			if v := r.Value(c); !v.IsMissing() {
				record[j] = v.String()
			}
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
