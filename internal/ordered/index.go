package ordered

import (
	"fmt"
	"github.com/gostonefire/librarycatalog/errs"
	"github.com/gostonefire/librarycatalog/internal/conf"
	"github.com/gostonefire/librarycatalog/internal/model"
)

// Index - Interface for any ordered index implementation keyed by isbn.
// Inserting an isbn that is already present must leave the index unchanged.
type Index interface {
	// Insert - Adds the book unless its isbn is already present
	Insert(isbn int64, title string)
	// Lookup - Returns the title stored for isbn
	Lookup(isbn int64) (title string, found bool)
	// Ascend - Calls fn for every book in ascending isbn order until fn returns false
	Ascend(fn func(record model.BookRecord) bool)
	// Len - Returns the number of books in the index
	Len() int64
}

// New - Returns a new ordered index of the given kind
//   - kind is either conf.OrderedIndexBST or conf.OrderedIndexBTree
//   - degree is the btree degree, ignored for conf.OrderedIndexBST
//
// It returns:
//   - index is the created instance
//   - err is of type errs.InvalidConf for an unknown kind or a non-positive btree degree
func New(kind string, degree int) (index Index, err error) {
	switch kind {
	case conf.OrderedIndexBST:
		index = NewBST()
	case conf.OrderedIndexBTree:
		if degree < 2 {
			err = errs.NewInvalidConf(fmt.Sprintf("btree degree must be at least 2, got %d", degree))
			return
		}
		index = NewBTree(degree)
	default:
		err = errs.NewInvalidConf(fmt.Sprintf("unknown ordered index kind %q", kind))
	}

	return
}

var _ Index = (*BST)(nil)
var _ Index = (*BTree)(nil)
