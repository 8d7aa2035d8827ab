package ordered

import (
	"github.com/google/btree"
	"github.com/gostonefire/librarycatalog/internal/model"
	"sync"
)

// BTree - Ordered index backed by github.com/google/btree. Unlike BST it stays balanced
// regardless of insertion order.
type BTree struct {
	tree *btree.BTreeG[model.BookRecord]
	lock *sync.RWMutex
}

func lessIsbn(a, b model.BookRecord) bool {
	return a.Isbn < b.Isbn
}

// NewBTree - Returns a pointer to a new, empty BTree of the given degree
func NewBTree(degree int) *BTree {
	return &BTree{
		tree: btree.NewG[model.BookRecord](degree, lessIsbn),
		lock: new(sync.RWMutex),
	}
}

// Insert - Adds the book unless its isbn is already present
func (bt *BTree) Insert(isbn int64, title string) {
	item := model.BookRecord{Isbn: isbn, Title: title}

	bt.lock.Lock()
	defer bt.lock.Unlock()

	// ReplaceOrInsert would overwrite the title, the first write has to win
	if bt.tree.Has(item) {
		return
	}
	bt.tree.ReplaceOrInsert(item)
}

// Lookup - Returns the title stored for isbn
func (bt *BTree) Lookup(isbn int64) (title string, found bool) {
	bt.lock.RLock()
	defer bt.lock.RUnlock()

	item, found := bt.tree.Get(model.BookRecord{Isbn: isbn})
	if !found {
		return
	}

	return item.Title, true
}

// Ascend - Calls fn for every book in ascending isbn order until fn returns false
func (bt *BTree) Ascend(fn func(record model.BookRecord) bool) {
	bt.lock.RLock()
	defer bt.lock.RUnlock()

	bt.tree.Ascend(btree.ItemIteratorG[model.BookRecord](fn))
}

// Len - Returns the number of books in the tree
func (bt *BTree) Len() int64 {
	bt.lock.RLock()
	defer bt.lock.RUnlock()

	return int64(bt.tree.Len())
}
