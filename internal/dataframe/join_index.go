package dataframe

import (
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/paveg/rowframe/internal/config"
	"github.com/paveg/rowframe/internal/value"
)

const (
	hashSignBitMask   = 0x7FFFFFFFFFFFFFFF
	indexGrowthFactor = 2
)

// joinIndex maps a key value to the position of the first row that carried it.
// Later rows with an equal key are counted as duplicates and never stored.
type joinIndex struct {
	buckets    [][]indexEntry
	capacity   int
	size       int
	loadFactor float64
	duplicates int
}

type indexEntry struct {
	key value.Value
	pos int
}

func newJoinIndex(estimatedSize int, cfg config.Config) *joinIndex {
	capacity := nextPowerOfTwo(int(float64(estimatedSize) * cfg.JoinIndexCapacityFactor))
	return &joinIndex{
		buckets:    make([][]indexEntry, capacity),
		capacity:   capacity,
		loadFactor: cfg.JoinIndexLoadFactor,
	}
}

func (ix *joinIndex) bucket(key value.Value, capacity int) int {
	hash := xxhash.Sum64String(key.HashKey())
	//nolint:gosec // capacity is always a positive power of two
	return int((hash & hashSignBitMask) % uint64(capacity))
}

// insert records pos for key unless an equal key is already present.
func (ix *joinIndex) insert(key value.Value, pos int) {
	b := ix.bucket(key, ix.capacity)
	for _, e := range ix.buckets[b] {
		if e.key.Equal(key) {
			ix.duplicates++
			return
		}
	}

	ix.buckets[b] = append(ix.buckets[b], indexEntry{key: key, pos: pos})
	ix.size++

	if float64(ix.size) > float64(ix.capacity)*ix.loadFactor {
		ix.resize()
	}
}

func (ix *joinIndex) lookup(key value.Value) (int, bool) {
	for _, e := range ix.buckets[ix.bucket(key, ix.capacity)] {
		if e.key.Equal(key) {
			return e.pos, true
		}
	}
	return 0, false
}

func (ix *joinIndex) resize() {
	capacity := ix.capacity * indexGrowthFactor
	buckets := make([][]indexEntry, capacity)
	for _, bucket := range ix.buckets {
		for _, e := range bucket {
			b := ix.bucket(e.key, capacity)
			buckets[b] = append(buckets[b], e)
		}
	}
	ix.buckets = buckets
	ix.capacity = capacity
}

// nextPowerOfTwo returns the next power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
