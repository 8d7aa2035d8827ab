package registry

import (
	"github.com/gostonefire/librarycatalog/internal/model"
	"sync"
)

// node - One user in the list, each node owns the rest of the list through next
type node struct {
	record model.UserRecord
	next   *node
}

// Registry - Append only singly linked list of users.
// Ids are not required to be unique, FindByKey returns the first one in list order.
type Registry struct {
	mu     sync.RWMutex
	head   *node
	tail   *node
	length int64
}

// New - Returns a pointer to a new, empty Registry
func New() *Registry {
	return &Registry{}
}

// Append - Adds a user at the end of the list
func (R *Registry) Append(id int64, name string) {
	n := &node{record: model.UserRecord{Id: id, Name: name}}

	R.mu.Lock()
	defer R.mu.Unlock()

	if R.tail == nil {
		R.head = n
	} else {
		R.tail.next = n
	}
	R.tail = n
	R.length++
}

// FindByKey - Scans from the head and returns the first user with matching id
func (R *Registry) FindByKey(id int64) (record model.UserRecord, found bool) {
	R.mu.RLock()
	defer R.mu.RUnlock()

	for n := R.head; n != nil; n = n.next {
		if n.record.Id == id {
			return n.record, true
		}
	}

	return
}

// Walk - Calls fn for every user in list order until fn returns false
func (R *Registry) Walk(fn func(record model.UserRecord) bool) {
	R.mu.RLock()
	defer R.mu.RUnlock()

	for n := R.head; n != nil; n = n.next {
		if !fn(n.record) {
			return
		}
	}
}

// Len - Returns the number of users in the list
func (R *Registry) Len() int64 {
	R.mu.RLock()
	defer R.mu.RUnlock()

	return R.length
}
