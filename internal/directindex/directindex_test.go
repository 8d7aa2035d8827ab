package directindex

import (
	"fmt"
	"github.com/gostonefire/librarycatalog/errs"
	"github.com/stretchr/testify/assert"
	"testing"
)

// constantHashAlgorithm - Test hash algorithm sending every key to the same bucket
type constantHashAlgorithm struct {
	tableSize int64
	bucketNo  int64
}

func (C *constantHashAlgorithm) SetTableSize(tableSize int64) { C.tableSize = tableSize }
func (C *constantHashAlgorithm) HashFunc1(key int64) int64     { return C.bucketNo }
func (C *constantHashAlgorithm) GetTableSize() int64           { return C.tableSize }

func TestNew(t *testing.T) {
	t.Run("creates direct index with internal algorithm", func(t *testing.T) {
		// Execute
		di, err := New(100, nil)

		// Check
		assert.NoError(t, err, "creates direct index")
		sp := di.GetStorageParameters()
		assert.Equal(t, int64(100), sp.NumberOfBuckets, "correct number of buckets")
		assert.Equal(t, int64(0), sp.Entries, "no entries")
		assert.True(t, sp.InternalAlgorithm, "has internal hash algorithm")
	})

	t.Run("creates direct index with custom algorithm", func(t *testing.T) {
		// Prepare
		ha := &constantHashAlgorithm{}

		// Execute
		di, err := New(10, ha)

		// Check
		assert.NoError(t, err, "creates direct index")
		assert.Equal(t, int64(10), ha.GetTableSize(), "table size handed to algorithm")
		assert.False(t, di.GetStorageParameters().InternalAlgorithm, "has custom hash algorithm")
	})

	t.Run("error when supplying an invalid number of buckets", func(t *testing.T) {
		// Execute
		_, err1 := New(0, nil)
		_, err2 := New(-5, nil)

		// Check
		assert.ErrorIs(t, err1, errs.InvalidConf{}, "zero buckets")
		assert.ErrorIs(t, err2, errs.InvalidConf{}, "negative buckets")
	})
}

func TestDirectIndex_Insert(t *testing.T) {
	t.Run("inserts and finds entries", func(t *testing.T) {
		// Prepare
		di, _ := New(100, nil)

		// Execute
		err1 := di.Insert(1, "Alice")
		err2 := di.Insert(2, "Bob")

		// Check
		assert.NoError(t, err1, "insert first")
		assert.NoError(t, err2, "insert second")
		v, ok := di.Lookup(1)
		assert.True(t, ok, "first found")
		assert.Equal(t, "Alice", v, "first value")
		v, ok = di.Lookup(2)
		assert.True(t, ok, "second found")
		assert.Equal(t, "Bob", v, "second value")
		assert.Equal(t, int64(2), di.Len(), "two entries")
	})

	t.Run("first inserted entry shadows later ones with same key", func(t *testing.T) {
		// Prepare
		di, _ := New(100, nil)

		// Execute
		_ = di.Insert(7, "first")
		_ = di.Insert(7, "second")

		// Check
		v, ok := di.Lookup(7)
		assert.True(t, ok, "found")
		assert.Equal(t, "first", v, "first write wins")
		assert.Equal(t, int64(2), di.Len(), "shadowed entry still present")

		bucketNo, err := di.GetBucketNo(7)
		assert.NoError(t, err, "bucket number")
		iter, err := di.GetBucket(bucketNo)
		assert.NoError(t, err, "get bucket")

		var values []string
		for iter.HasNext() {
			r, _ := iter.Next()
			values = append(values, r.Value)
		}
		assert.Equal(t, []string{"first", "second"}, values, "chain in insertion order")
	})

	t.Run("colliding keys are both resolved", func(t *testing.T) {
		// Prepare
		di, _ := New(100, nil)

		// Execute
		_ = di.Insert(5, "five")
		_ = di.Insert(105, "one hundred five")
		_ = di.Insert(-95, "minus ninety five")

		// Check
		for key, want := range map[int64]string{5: "five", 105: "one hundred five", -95: "minus ninety five"} {
			v, ok := di.Lookup(key)
			assert.True(t, ok, fmt.Sprintf("key %d found", key))
			assert.Equal(t, want, v, fmt.Sprintf("key %d value", key))
		}
		assert.Equal(t, int64(3), di.Distribution()[5], "all in bucket 5")
	})

	t.Run("error when custom algorithm leaves the table", func(t *testing.T) {
		// Prepare
		di, _ := New(10, &constantHashAlgorithm{bucketNo: 10})

		// Execute
		err := di.Insert(1, "x")

		// Check
		assert.ErrorIs(t, err, errs.BucketOutOfRange{}, "out of range")
		_, ok := di.Lookup(1)
		assert.False(t, ok, "nothing stored")
		assert.Equal(t, int64(0), di.Len(), "no entries")
	})
}

func TestDirectIndex_Lookup(t *testing.T) {
	t.Run("not found on empty index", func(t *testing.T) {
		// Prepare
		di, _ := New(100, nil)

		// Execute
		v, ok := di.Lookup(999)

		// Check
		assert.False(t, ok, "not found")
		assert.Equal(t, "", v, "empty value")
	})

	t.Run("not found when bucket holds other keys", func(t *testing.T) {
		// Prepare
		di, _ := New(100, nil)
		_ = di.Insert(1, "one")

		// Execute
		_, ok := di.Lookup(101)

		// Check
		assert.False(t, ok, "chain exhausted")
	})
}

func TestDirectIndex_GetBucket(t *testing.T) {
	t.Run("error for bucket outside table", func(t *testing.T) {
		// Prepare
		di, _ := New(10, nil)

		// Execute
		_, err1 := di.GetBucket(-1)
		_, err2 := di.GetBucket(10)

		// Check
		assert.ErrorIs(t, err1, errs.BucketOutOfRange{}, "negative bucket")
		assert.ErrorIs(t, err2, errs.BucketOutOfRange{}, "bucket past end")
	})

	t.Run("empty bucket has no records", func(t *testing.T) {
		// Prepare
		di, _ := New(10, nil)

		// Execute
		iter, err := di.GetBucket(3)

		// Check
		assert.NoError(t, err, "get bucket")
		assert.False(t, iter.HasNext(), "no records")
		_, ok := iter.Next()
		assert.False(t, ok, "next reports exhausted")
	})
}
