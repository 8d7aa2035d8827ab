package librarycatalog

import (
	"github.com/gostonefire/librarycatalog/hashfunc"
	"github.com/gostonefire/librarycatalog/internal/conf"
	"go.uber.org/zap"
	"os"
	"strconv"
)

// Conf - Is a struct used in the call to NewCatalog holding configuration for the underlying structures.
// Zero valued fields are replaced by defaults.
//   - BucketCount is the fixed number of buckets in each of the book and user direct indexes
//   - OrderedIndex is the kind of ordered index for the catalog and the retrieved books, "bst" or "btree"
//   - BTreeDegree is the degree used when OrderedIndex is "btree"
//   - HashAlgorithm is an optional custom bucket selection for the direct indexes, nil gives key mod BucketCount
//   - Logger is an optional zap logger, nil turns logging off
type Conf struct {
	BucketCount   int64
	OrderedIndex  string
	BTreeDegree   int
	HashAlgorithm hashfunc.HashAlgorithm
	Logger        *zap.Logger
}

// DefaultConf - Returns a Conf with all defaults set
func DefaultConf() Conf {
	return Conf{
		BucketCount:  conf.DefaultBucketCount,
		OrderedIndex: conf.OrderedIndexBST,
		BTreeDegree:  conf.DefaultBTreeDegree,
	}
}

// ConfFromEnv - Returns a Conf read from LIBRARYCATALOG_* environment variables.
// Absent or malformed values fall back to defaults.
func ConfFromEnv() Conf {
	c := DefaultConf()
	c.BucketCount = envInt64(conf.EnvBucketCount, c.BucketCount)
	c.OrderedIndex = envStr(conf.EnvOrderedIndex, c.OrderedIndex)
	c.BTreeDegree = int(envInt64(conf.EnvBTreeDegree, int64(c.BTreeDegree)))

	return c
}

// withDefaults - Returns a copy of c where zero valued fields are set to defaults
func (c Conf) withDefaults() Conf {
	d := DefaultConf()
	if c.BucketCount == 0 {
		c.BucketCount = d.BucketCount
	}
	if c.OrderedIndex == "" {
		c.OrderedIndex = d.OrderedIndex
	}
	if c.BTreeDegree == 0 {
		c.BTreeDegree = d.BTreeDegree
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}
