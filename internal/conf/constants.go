package conf

// DefaultBucketCount - Number of buckets in a direct index unless configured otherwise
const DefaultBucketCount int64 = 100

// DefaultBTreeDegree - Degree used for btree backed ordered indexes unless configured otherwise
const DefaultBTreeDegree int = 32

// OrderedIndexBST - Ordered index kind for the unbalanced binary search tree
const OrderedIndexBST string = "bst"

// OrderedIndexBTree - Ordered index kind for the btree backed implementation
const OrderedIndexBTree string = "btree"

// EnvBucketCount - Environment variable holding the direct index bucket count
const EnvBucketCount string = "LIBRARYCATALOG_BUCKET_COUNT"

// EnvOrderedIndex - Environment variable holding the ordered index kind
const EnvOrderedIndex string = "LIBRARYCATALOG_ORDERED_INDEX"

// EnvBTreeDegree - Environment variable holding the btree degree
const EnvBTreeDegree string = "LIBRARYCATALOG_BTREE_DEGREE"
