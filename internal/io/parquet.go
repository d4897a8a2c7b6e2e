package io

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/paveg/rowframe/internal/dataframe"
	"github.com/paveg/rowframe/internal/errors"
)

// Read reads Parquet data and returns a DataFrame.
func (r *ParquetReader) Read() (*dataframe.DataFrame, error) {
	// Read all data into memory for Parquet reading
	data, err := io.ReadAll(r.reader)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	pqReader, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating parquet file reader: %w", err)
	}

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{
		BatchSize: int64(r.options.BatchSize),
	}, r.mem)
	if err != nil {
		return nil, fmt.Errorf("creating arrow file reader: %w", err)
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	defer table.Release()

	tr := array.NewTableReader(table, int64(max(1, r.options.BatchSize)))
	defer tr.Release()

	df := dataframe.New()
	for tr.Next() {
		chunk, err := dataframe.FromArrow(tr.Record())
		if err != nil {
			return nil, fmt.Errorf("converting record batch: %w", err)
		}
		for _, rec := range chunk.ToArray() {
			df.PushRow(rec)
		}
	}
	if err := tr.Err(); err != nil {
		return nil, fmt.Errorf("iterating table: %w", err)
	}

	return df, nil
}

// Write writes the DataFrame to Parquet format. Columns and their types come
// from DataFrame.ToArrow.
func (w *ParquetWriter) Write(df *dataframe.DataFrame) error {
	if len(df.Columns()) == 0 {
		return errors.NewEmptyDataFrameError("ParquetWrite")
	}

	codec, err := compressionCodec(w.options.Compression)
	if err != nil {
		return err
	}

	mem := memory.NewGoAllocator()
	rec := df.ToArrow(mem)
	defer rec.Release()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(codec),
		parquet.WithBatchSize(int64(w.options.BatchSize)),
	)
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(mem))

	writer, err := pqarrow.NewFileWriter(rec.Schema(), w.writer, props, arrowProps)
	if err != nil {
		return fmt.Errorf("creating file writer: %w", err)
	}

	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return fmt.Errorf("writing record: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing file writer: %w", err)
	}
	return nil
}

// compressionCodec maps a codec name to its Parquet compression. An empty
// name selects snappy.
func compressionCodec(name string) (compress.Compression, error) {
	switch strings.ToLower(name) {
	case "", "snappy":
		return compress.Codecs.Snappy, nil
	case "gzip":
		return compress.Codecs.Gzip, nil
	case "lz4":
		return compress.Codecs.Lz4Raw, nil
	case "zstd":
		return compress.Codecs.Zstd, nil
	case "brotli":
		return compress.Codecs.Brotli, nil
	case "uncompressed", "none":
		return compress.Codecs.Uncompressed, nil
	default:
		return compress.Codecs.Uncompressed, errors.NewValidationError("ParquetWrite", "",
			fmt.Sprintf("unsupported compression %q", name)).
			WithHint("use snappy, gzip, lz4, zstd, brotli or uncompressed")
	}
}
