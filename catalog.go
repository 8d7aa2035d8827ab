package librarycatalog

import (
	"fmt"
	"github.com/gostonefire/librarycatalog/internal/directindex"
	"github.com/gostonefire/librarycatalog/internal/model"
	"github.com/gostonefire/librarycatalog/internal/ordered"
	"github.com/gostonefire/librarycatalog/internal/registry"
	"go.uber.org/zap"
)

// UserRecord - A registered user as kept in the linked registry
type UserRecord = model.UserRecord

// BookRecord - A book as kept in an ordered index
type BookRecord = model.BookRecord

// CatalogStat - Statistics on the overall usage of the catalog structures
//   - Users is the number of users in the linked registry, duplicate ids included
//   - Books is the number of distinct isbns in the catalog ordered index
//   - RetrievedBooks is the number of distinct isbns that have been retrieved at least once
//   - BookIndexEntries is the number of entries in the book direct index, shadowed duplicates included
//   - UserIndexEntries is the number of entries in the user direct index, shadowed duplicates included
//   - BookBucketDistribution is the number of entries in each book index bucket, nil unless asked for
//   - UserBucketDistribution is the number of entries in each user index bucket, nil unless asked for
type CatalogStat struct {
	Users                  int64
	Books                  int64
	RetrievedBooks         int64
	BookIndexEntries       int64
	UserIndexEntries       int64
	BookBucketDistribution []int64
	UserBucketDistribution []int64
}

// Catalog - The main implementation struct.
// Every write goes to two independent views: users to the linked registry and the user direct index,
// books to the catalog ordered index and the book direct index. The views hold equal key and value
// at the time of insertion but are never reconciled afterwards, and reads are routed to one view only.
type Catalog struct {
	users     *registry.Registry
	catalog   ordered.Index
	retrieved ordered.Index
	bookIndex *directindex.DirectIndex
	userIndex *directindex.DirectIndex
	logger    *zap.Logger
}

// NewCatalog - Returns a new, empty catalog.
//   - conf is a Conf struct, zero valued fields are replaced by defaults (see DefaultConf).
//     A custom HashAlgorithm instance is shared by both direct indexes.
//
// It returns:
//   - catalog is a pointer to a Catalog struct
//   - err is of type errs.InvalidConf (wrapped) if any configuration parameter is unusable
func NewCatalog(conf Conf) (catalog *Catalog, err error) {
	conf = conf.withDefaults()

	bookCatalog, err := ordered.New(conf.OrderedIndex, conf.BTreeDegree)
	if err != nil {
		err = fmt.Errorf("error while creating catalog ordered index: %w", err)
		return
	}
	retrieved, err := ordered.New(conf.OrderedIndex, conf.BTreeDegree)
	if err != nil {
		err = fmt.Errorf("error while creating retrieved books ordered index: %w", err)
		return
	}
	bookIndex, err := directindex.New(conf.BucketCount, conf.HashAlgorithm)
	if err != nil {
		err = fmt.Errorf("error while creating book direct index: %w", err)
		return
	}
	userIndex, err := directindex.New(conf.BucketCount, conf.HashAlgorithm)
	if err != nil {
		err = fmt.Errorf("error while creating user direct index: %w", err)
		return
	}

	catalog = &Catalog{
		users:     registry.New(),
		catalog:   bookCatalog,
		retrieved: retrieved,
		bookIndex: bookIndex,
		userIndex: userIndex,
		logger:    conf.Logger,
	}

	conf.Logger.Info("catalog created",
		zap.Int64("bucketCount", bookIndex.GetStorageParameters().NumberOfBuckets),
		zap.String("orderedIndex", conf.OrderedIndex),
		zap.Bool("internalHashAlgorithm", conf.HashAlgorithm == nil),
	)

	return
}
