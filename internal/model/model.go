package model

// UserRecord - Represents one registered user
type UserRecord struct {
	Id   int64
	Name string
}

// BookRecord - Represents one book held in an ordered index
type BookRecord struct {
	Isbn  int64
	Title string
}

// Entry - Represents one key/value entry in a direct index bucket chain
type Entry struct {
	Key   int64
	Value string
}

// StorageParameters - Represents parameters of a direct index instance
//   - NumberOfBuckets is the fixed number of buckets, it never changes after creation
//   - Entries is the total number of entries in all chains, shadowed duplicates included
//   - InternalAlgorithm is true if the internal modulo hash algorithm is in use
type StorageParameters struct {
	NumberOfBuckets   int64
	Entries           int64
	InternalAlgorithm bool
}
