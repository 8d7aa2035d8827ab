package hashfunc

// HashAlgorithm - Interface that permits a user of the Catalog to supply a custom bucket
// selection algorithm for the direct indexes, suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a direct index is created. Hence, if a custom hash algorithm is supplied that
	// implements this interface and the instance is already having a table size, it will be overwritten
	// by the number of buckets configured for the index.
	//   - tableSize is the number of buckets the direct index will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key int64) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The direct index allocates exactly this number of buckets, so if an implementation rounds the
	// requested size up (to a power of 2 or a prime) it must be reflected here.
	GetTableSize() int64
}
