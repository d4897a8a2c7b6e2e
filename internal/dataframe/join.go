package dataframe

import (
	"github.com/paveg/rowframe/internal/config"
	"github.com/paveg/rowframe/internal/row"
	"github.com/paveg/rowframe/internal/value"
)

// JoinOn names the key column on each side of a join
type JoinOn struct {
	ThisKey  string
	OtherKey string
}

// LeftJoin keeps every row of df, in order, and merges in the first row of
// other whose OtherKey equals the row's ThisKey. Matched fields, minus the
// join key, override same-named fields of df. Rows without a match get Null
// for each column of other except OtherKey.
//
// Only the first row of other carrying a given key can match; later rows with
// the same key are never joined. The result always has df.Len() rows.
func (df *DataFrame) LeftJoin(other *DataFrame, on JoinOn) *DataFrame {
	var result *DataFrame
	recordRows("LeftJoin", df.Len()+other.Len(), func() int {
		index := buildJoinIndex(other, on.OtherKey, "LeftJoin")
		missing := nullRow(other.Columns(), on.OtherKey)

		rows := make([]row.Row, len(df.rows))
		for i, anchor := range df.rows {
			if pos, ok := index.lookup(anchor.Value(on.ThisKey)); ok {
				rows[i] = anchor.Merge(withoutKey(other.rows[pos], on.OtherKey))
			} else {
				rows[i] = anchor.Merge(missing)
			}
		}
		result = wrap(rows)
		return len(rows)
	})
	return result
}

// RightJoin keeps every row of other, in order, and merges it with the first
// row of df whose ThisKey equals the row's OtherKey. The result row holds the
// matched fields of df minus ThisKey, then the fields of the other row that
// are not yet present, with OtherKey last. Matched values win over same-named
// fields of other. Rows without a match get Null for each column of df except
// ThisKey.
//
// Only the first row of df carrying a given key can match. The result always
// has other.Len() rows.
func (df *DataFrame) RightJoin(other *DataFrame, on JoinOn) *DataFrame {
	var result *DataFrame
	recordRows("RightJoin", df.Len()+other.Len(), func() int {
		index := buildJoinIndex(df, on.ThisKey, "RightJoin")
		missing := nullRow(df.Columns(), on.ThisKey)

		rows := make([]row.Row, len(other.rows))
		for i, anchor := range other.rows {
			key := anchor.Value(on.OtherKey)

			base := missing
			if pos, ok := index.lookup(key); ok {
				base = withoutKey(df.rows[pos], on.ThisKey)
			}

			out := base.MergeMissing(withoutKey(anchor, on.OtherKey))
			if anchor.Has(on.OtherKey) {
				out = out.MergeMissing(row.New(row.Field{Key: on.OtherKey, Value: key}))
			}
			rows[i] = out
		}
		result = wrap(rows)
		return len(rows)
	})
	return result
}

func buildJoinIndex(df *DataFrame, key, op string) *joinIndex {
	cfg := config.GetGlobalConfig()
	index := newJoinIndex(len(df.rows), cfg)
	for i, r := range df.rows {
		index.insert(r.Value(key), i)
	}

	logger := cfg.Logger()
	logger.Debug("join index built",
		"op", op,
		"key", key,
		"rows", len(df.rows),
		"distinct", index.size)
	if index.duplicates > 0 {
		logger.Debug("join keys repeated, only the first row per key can match",
			"op", op,
			"key", key,
			"unreachable", index.duplicates)
	}
	return index
}

func withoutKey(r row.Row, key string) row.Row {
	return row.Omit(r, r.Keys(), []string{key})
}

func nullRow(columns []string, exclude string) row.Row {
	fields := make([]row.Field, 0, len(columns))
	for _, c := range columns {
		if c != exclude {
			fields = append(fields, row.Field{Key: c, Value: value.Null()})
		}
	}
	return row.New(fields...)
}
