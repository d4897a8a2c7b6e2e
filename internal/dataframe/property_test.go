//nolint:testpackage // requires internal access to unexported types and functions
package dataframe

import (
	"errors"
	"testing"
	"testing/quick"

	dferrors "github.com/paveg/rowframe/internal/errors"
	"github.com/paveg/rowframe/internal/row"
)

func keyedFrame(keyName string, keys []int8) *DataFrame {
	rows := make([]row.Row, len(keys))
	for i, k := range keys {
		// Small key space so generated frames share keys and repeat them.
		rows[i] = row.Of(keyName, int(k%8), "pos", i)
	}
	return New(rows...)
}

// TestJoinSizeProperties checks that joins preserve the anchor side's row count.
func TestJoinSizeProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based tests in short mode")
	}

	on := JoinOn{ThisKey: "id", OtherKey: "ref"}

	// Property: LeftJoin has exactly one output row per left row
	leftSize := func(left, right []int8) bool {
		return keyedFrame("id", left).LeftJoin(keyedFrame("ref", right), on).Len() == len(left)
	}
	if err := quick.Check(leftSize, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("LeftJoin size property failed: %v", err)
	}

	// Property: RightJoin has exactly one output row per right row
	rightSize := func(left, right []int8) bool {
		return keyedFrame("id", left).RightJoin(keyedFrame("ref", right), on).Len() == len(right)
	}
	if err := quick.Check(rightSize, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("RightJoin size property failed: %v", err)
	}

	// Property: every LeftJoin row keeps its own key in its original position
	leftKeys := func(left, right []int8) bool {
		df := keyedFrame("id", left)
		joined := df.LeftJoin(keyedFrame("ref", right), on)
		for i, r := range joined.ToArray() {
			original, _ := df.Row(i)
			if !r.Value("id").Equal(original.Value("id")) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(leftKeys, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("LeftJoin key property failed: %v", err)
	}
}

// TestILocProperties tests positional selection using property-based testing.
func TestILocProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based tests in short mode")
	}

	// Property: ILoc(At(i)) holds exactly rows[i] for any in-range i
	single := func(keys []int8, i uint8) bool {
		df := keyedFrame("id", keys)
		if df.IsEmpty() {
			return true
		}
		idx := int(i) % df.Len()

		got, err := df.ILoc(At(idx))
		if err != nil || got.Len() != 1 {
			return false
		}
		want, _ := df.Row(idx)
		first, _ := got.Row(0)
		return want.Equal(first)
	}
	if err := quick.Check(single, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("ILoc single-row property failed: %v", err)
	}

	// Property: any selector on an empty frame fails with ErrEmptyDataFrame
	empty := func(i int16, start, end uint8) bool {
		df := New()
		for _, sel := range []Selector{At(int(i)), Rows(int(i)), Slice().From(int(start)).To(int(end))} {
			if _, err := df.ILoc(sel); !errors.Is(err, dferrors.ErrEmptyDataFrame) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(empty, &quick.Config{MaxCount: 50}); err != nil {
		t.Errorf("ILoc empty-frame property failed: %v", err)
	}

	// Property: a full slice returns every row in order
	full := func(keys []int8) bool {
		df := keyedFrame("id", keys)
		if df.IsEmpty() {
			return true
		}
		got, err := df.ILoc(Slice())
		return err == nil && got.Len() == df.Len()
	}
	if err := quick.Check(full, &quick.Config{MaxCount: 50}); err != nil {
		t.Errorf("ILoc full-slice property failed: %v", err)
	}
}

// TestFilterRowsProperties checks that filtering never grows a frame.
func TestFilterRowsProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based tests in short mode")
	}

	// Property: FilterRows then count should be <= original count
	shrinks := func(keys []int8, threshold int8) bool {
		df := keyedFrame("id", keys)
		limit := int(threshold % 8)
		filtered := df.FilterRows(func(r row.Row, _ int) bool {
			id, _ := r.Value("id").Float()
			return id > float64(limit)
		})
		return filtered.Len() <= df.Len()
	}
	if err := quick.Check(shrinks, &quick.Config{MaxCount: 50}); err != nil {
		t.Errorf("FilterRows count property failed: %v", err)
	}

	// Property: an always-true predicate keeps every row
	keepsAll := func(keys []int8) bool {
		df := keyedFrame("id", keys)
		return df.FilterRows(func(row.Row, int) bool { return true }).Len() == df.Len()
	}
	if err := quick.Check(keepsAll, &quick.Config{MaxCount: 50}); err != nil {
		t.Errorf("FilterRows identity property failed: %v", err)
	}
}
