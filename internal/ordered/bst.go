package ordered

import (
	"github.com/gostonefire/librarycatalog/internal/model"
	"sync"
)

// bstNode - A node owns its left and right subtrees exclusively, there are no parent links
type bstNode struct {
	record      model.BookRecord
	left, right *bstNode
}

// BST - Unbalanced binary search tree. Insertion order decides the shape, so sorted input
// degenerates the tree into a list with O(n) lookups.
type BST struct {
	mu     sync.RWMutex
	root   *bstNode
	length int64
}

// NewBST - Returns a pointer to a new, empty BST
func NewBST() *BST {
	return &BST{}
}

// Insert - Adds the book unless its isbn is already present, in which case neither title nor
// structure changes.
func (B *BST) Insert(isbn int64, title string) {
	B.mu.Lock()
	defer B.mu.Unlock()

	var added bool
	B.root = B.insert(B.root, isbn, title, &added)
	if added {
		B.length++
	}
}

// insert - Recursive insert returning the (possibly new) root of the subtree
func (B *BST) insert(current *bstNode, isbn int64, title string, added *bool) *bstNode {
	if current == nil {
		*added = true
		return &bstNode{record: model.BookRecord{Isbn: isbn, Title: title}}
	}

	if isbn < current.record.Isbn {
		current.left = B.insert(current.left, isbn, title, added)
	} else if isbn > current.record.Isbn {
		current.right = B.insert(current.right, isbn, title, added)
	}

	return current
}

// Lookup - Returns the title stored for isbn
func (B *BST) Lookup(isbn int64) (title string, found bool) {
	B.mu.RLock()
	defer B.mu.RUnlock()

	n := B.find(B.root, isbn)
	if n == nil {
		return
	}

	return n.record.Title, true
}

// find - Recursive search by isbn comparison
func (B *BST) find(current *bstNode, isbn int64) *bstNode {
	if current == nil || current.record.Isbn == isbn {
		return current
	}

	if isbn < current.record.Isbn {
		return B.find(current.left, isbn)
	}

	return B.find(current.right, isbn)
}

// Ascend - Calls fn for every book in ascending isbn order until fn returns false
func (B *BST) Ascend(fn func(record model.BookRecord) bool) {
	B.mu.RLock()
	defer B.mu.RUnlock()

	B.ascend(B.root, fn)
}

// ascend - In-order walk, returns false once fn has asked to stop
func (B *BST) ascend(current *bstNode, fn func(record model.BookRecord) bool) bool {
	if current == nil {
		return true
	}

	return B.ascend(current.left, fn) && fn(current.record) && B.ascend(current.right, fn)
}

// Height - Returns the number of nodes on the longest root to leaf path
func (B *BST) Height() int {
	B.mu.RLock()
	defer B.mu.RUnlock()

	return height(B.root)
}

func height(current *bstNode) int {
	if current == nil {
		return 0
	}

	l, r := height(current.left), height(current.right)
	if l > r {
		return l + 1
	}

	return r + 1
}

// Len - Returns the number of books in the tree
func (B *BST) Len() int64 {
	B.mu.RLock()
	defer B.mu.RUnlock()

	return B.length
}
