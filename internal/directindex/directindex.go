package directindex

import (
	"fmt"
	"github.com/gostonefire/librarycatalog/errs"
	"github.com/gostonefire/librarycatalog/hashfunc"
	"github.com/gostonefire/librarycatalog/internal/hash"
	"github.com/gostonefire/librarycatalog/internal/model"
	"sync"
)

// entry - One link in a bucket chain
type entry struct {
	key   int64
	value string
	next  *entry
}

// bucket - Head and tail of a chain, the tail makes appends O(1)
type bucket struct {
	head    *entry
	tail    *entry
	entries int64
}

// DirectIndex - Fixed size hash table with separate chaining.
// Chains are append only: inserting an already present key adds a new entry after the existing one,
// and since lookups return the first match in chain order the later entry is never reached.
type DirectIndex struct {
	mu                sync.RWMutex
	buckets           []bucket
	numberOfBuckets   int64
	entries           int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// New - Returns a pointer to a new DirectIndex
//   - numberOfBuckets is the number of buckets requested, the index never grows or rehashes
//   - hashAlgorithm is an optional custom hash algorithm, nil gives the internal modulo algorithm
//
// It returns:
//   - directIndex is a pointer to the created instance
//   - err is of type errs.InvalidConf if numberOfBuckets, or the table size of a custom algorithm, is not positive
func New(numberOfBuckets int64, hashAlgorithm hashfunc.HashAlgorithm) (directIndex *DirectIndex, err error) {
	if numberOfBuckets <= 0 {
		err = errs.NewInvalidConf(fmt.Sprintf("number of buckets must be a positive value higher than 0 (zero), got %d", numberOfBuckets))
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewModuloHashAlgorithm(numberOfBuckets)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(numberOfBuckets)
	}

	tableSize := hashAlgorithm.GetTableSize()
	if tableSize <= 0 {
		err = errs.NewInvalidConf(fmt.Sprintf("hash algorithm reports a table size of %d", tableSize))
		return
	}

	directIndex = &DirectIndex{
		buckets:           make([]bucket, tableSize),
		numberOfBuckets:   tableSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of an entry
//
// It returns:
//   - bucketNo is the bucket number given by the hash algorithm
//   - err is of type errs.BucketOutOfRange if the hash algorithm returned a number outside the table
func (D *DirectIndex) GetBucketNo(key int64) (bucketNo int64, err error) {
	bucketNo = D.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= D.numberOfBuckets {
		err = errs.NewBucketOutOfRange(fmt.Sprintf("bucket number %d from hash algorithm is outside [0, %d)", bucketNo, D.numberOfBuckets))
		return
	}

	return
}

// Insert - Appends a new entry to the chain of the bucket that key belongs to.
// No check for an existing entry with the same key is made.
//   - key is the identifier of the entry
//   - value is the string to store with it
//
// It returns:
//   - err is of type errs.BucketOutOfRange if a custom hash algorithm misbehaves, otherwise nil
func (D *DirectIndex) Insert(key int64, value string) (err error) {
	bucketNo, err := D.GetBucketNo(key)
	if err != nil {
		return
	}

	e := &entry{key: key, value: value}

	D.mu.Lock()
	defer D.mu.Unlock()

	b := &D.buckets[bucketNo]
	if b.tail == nil {
		b.head = e
	} else {
		b.tail.next = e
	}
	b.tail = e
	b.entries++
	D.entries++

	return
}

// Lookup - Returns the value of the first entry in chain order that matches key.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the stored value if found, otherwise an empty string
//   - found is true if a matching entry exists
func (D *DirectIndex) Lookup(key int64) (value string, found bool) {
	bucketNo, err := D.GetBucketNo(key)
	if err != nil {
		// Nothing can have been inserted into a bucket out of range
		return
	}

	D.mu.RLock()
	defer D.mu.RUnlock()

	for e := D.buckets[bucketNo].head; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}

	return
}

// GetBucket - Returns an iterator over a snapshot of the chain in a bucket, in insertion order.
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (D *DirectIndex) GetBucket(bucketNo int64) (chainRecords *ChainRecords, err error) {
	if bucketNo < 0 || bucketNo >= D.numberOfBuckets {
		err = errs.NewBucketOutOfRange(fmt.Sprintf("bucket number %d is outside [0, %d)", bucketNo, D.numberOfBuckets))
		return
	}

	D.mu.RLock()
	defer D.mu.RUnlock()

	b := D.buckets[bucketNo]
	records := make([]model.Entry, 0, b.entries)
	for e := b.head; e != nil; e = e.next {
		records = append(records, model.Entry{Key: e.key, Value: e.value})
	}

	chainRecords = newChainRecords(records)

	return
}

// Distribution - Returns the number of entries in each bucket
func (D *DirectIndex) Distribution() (distribution []int64) {
	D.mu.RLock()
	defer D.mu.RUnlock()

	distribution = make([]int64, D.numberOfBuckets)
	for i := range D.buckets {
		distribution[i] = D.buckets[i].entries
	}

	return
}

// Len - Returns the total number of entries, shadowed ones included
func (D *DirectIndex) Len() int64 {
	D.mu.RLock()
	defer D.mu.RUnlock()

	return D.entries
}

// GetStorageParameters - Returns parameters describing the index
func (D *DirectIndex) GetStorageParameters() (params model.StorageParameters) {
	D.mu.RLock()
	defer D.mu.RUnlock()

	params = model.StorageParameters{
		NumberOfBuckets:   D.numberOfBuckets,
		Entries:           D.entries,
		InternalAlgorithm: D.internalAlgorithm,
	}

	return
}
