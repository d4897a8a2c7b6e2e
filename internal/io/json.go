package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/paveg/rowframe/internal/dataframe"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/value"
)

// Read reads JSON data and returns a DataFrame. Object keys keep their
// source order. Nested objects and arrays are kept as opaque values.
func (r *JSONReader) Read() (*dataframe.DataFrame, error) {
	switch r.options.Format {
	case JSONArray:
		return r.readJSONArray()
	case JSONLines:
		return r.readJSONLines()
	default:
		return nil, fmt.Errorf("unsupported JSON format: %d", r.options.Format)
	}
}

// readJSONArray reads JSON array format.
func (r *JSONReader) readJSONArray() (*dataframe.DataFrame, error) {
	dec := json.NewDecoder(r.reader)

	if err := expectDelim(dec, '['); err != nil {
		return nil, fmt.Errorf("reading JSON array: %w", err)
	}

	df := dataframe.New()
	for dec.More() {
		if r.limitReached(df) {
			return df, nil
		}
		rec, err := decodeObject(dec)
		if err != nil {
			return nil, fmt.Errorf("decoding record %d: %w", df.Len(), err)
		}
		df.PushRow(rec)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, fmt.Errorf("reading JSON array: %w", err)
	}
	return df, nil
}

// readJSONLines reads JSON Lines format.
func (r *JSONReader) readJSONLines() (*dataframe.DataFrame, error) {
	scanner := bufio.NewScanner(r.reader)
	df := dataframe.New()

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := decodeObject(json.NewDecoder(strings.NewReader(line)))
		if err != nil {
			return nil, fmt.Errorf("unmarshaling JSON line %d: %w", lineNum, err)
		}
		df.PushRow(rec)

		if r.limitReached(df) {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning JSON lines: %w", err)
	}
	return df, nil
}

func (r *JSONReader) limitReached(df *dataframe.DataFrame) bool {
	return r.options.MaxRecords > 0 && df.Len() >= r.options.MaxRecords
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// decodeObject reads one JSON object into a row, preserving key order.
func decodeObject(dec *json.Decoder) (row.Row, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return row.Row{}, err
	}

	var fields []row.Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return row.Row{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return row.Row{}, fmt.Errorf("expected object key, got %v", tok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return row.Row{}, fmt.Errorf("decoding %q: %w", key, err)
		}
		fields = append(fields, row.Field{Key: key, Value: value.Of(raw)})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return row.Row{}, err
	}
	return row.New(fields...), nil
}

// Write writes the DataFrame to JSON format. Each row is written with its own
// keys in order. Undefined cells are omitted; NaN and infinities become null.
func (w *JSONWriter) Write(df *dataframe.DataFrame) error {
	switch w.options.Format {
	case JSONArray:
		return w.writeJSONArray(df)
	case JSONLines:
		return w.writeJSONLines(df)
	default:
		return fmt.Errorf("unsupported JSON format: %d", w.options.Format)
	}
}

// writeJSONArray writes DataFrame as JSON array.
func (w *JSONWriter) writeJSONArray(df *dataframe.DataFrame) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range df.ToArray() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeRow(&buf, r); err != nil {
			return fmt.Errorf("marshaling row %d: %w", i, err)
		}
	}
	buf.WriteByte(']')

	_, err := w.writer.Write(buf.Bytes())
	return err
}

// writeJSONLines writes DataFrame as JSON Lines.
func (w *JSONWriter) writeJSONLines(df *dataframe.DataFrame) error {
	for i, r := range df.ToArray() {
		var buf bytes.Buffer
		if err := encodeRow(&buf, r); err != nil {
			return fmt.Errorf("marshaling row %d: %w", i, err)
		}
		buf.WriteByte('\n')

		if _, err := w.writer.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func encodeRow(buf *bytes.Buffer, r row.Row) error {
	buf.WriteByte('{')
	first := true
	for _, f := range r.Fields() {
		if f.Value.IsUndefined() {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(f.Key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')

		data, err := json.Marshal(jsonValue(f.Value))
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Key, err)
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return nil
}

func jsonValue(v value.Value) any {
	if f, ok := v.Float(); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v.Interface()
}
