package librarycatalog

import (
	"fmt"
	"github.com/gostonefire/librarycatalog/internal/model"
	"go.uber.org/zap"
)

// AddUser - Registers a user in both the linked registry and the user direct index.
// Ids are not checked for uniqueness, a repeated id is stored again but lookups keep returning the first.
//   - id is the user identifier
//   - name is the user name
//
// It returns:
//   - err is only non nil if a custom hash algorithm returns a bucket out of range, nothing is stored then
func (C *Catalog) AddUser(id int64, name string) (err error) {
	err = C.userIndex.Insert(id, name)
	if err != nil {
		err = fmt.Errorf("error while adding user %d to user index: %w", id, err)
		return
	}
	C.users.Append(id, name)

	C.logger.Debug("user added", zap.Int64("userId", id), zap.String("name", name))

	return
}

// AddBook - Adds a book to both the catalog ordered index and the book direct index.
// A repeated isbn leaves the catalog ordered index untouched while the book direct index gets a
// shadowed entry, so both views keep answering with the first title.
//   - isbn is the book identifier
//   - title is the book title
//
// It returns:
//   - err is only non nil if a custom hash algorithm returns a bucket out of range, nothing is stored then
func (C *Catalog) AddBook(isbn int64, title string) (err error) {
	err = C.bookIndex.Insert(isbn, title)
	if err != nil {
		err = fmt.Errorf("error while adding book %d to book index: %w", isbn, err)
		return
	}
	C.catalog.Insert(isbn, title)

	C.logger.Debug("book added", zap.Int64("isbn", isbn), zap.String("title", title))

	return
}

// RetrieveBook - Looks up isbn in the catalog ordered index and, if present, records it as retrieved.
// Retrieving the same isbn again changes nothing.
//
// It returns:
//   - title is the catalog title if found, otherwise an empty string
//   - found is false if isbn is not in the catalog
func (C *Catalog) RetrieveBook(isbn int64) (title string, found bool) {
	title, found = C.catalog.Lookup(isbn)
	if found {
		C.retrieved.Insert(isbn, title)
	}

	C.logger.Debug("book retrieval", zap.Int64("isbn", isbn), zap.Bool("found", found))

	return
}

// SearchBook - Looks up isbn in the book direct index only, the catalog ordered index is not consulted.
func (C *Catalog) SearchBook(isbn int64) (title string, found bool) {
	return C.bookIndex.Lookup(isbn)
}

// SearchUser - Looks up id in the user direct index only, the linked registry is not consulted.
func (C *Catalog) SearchUser(id int64) (name string, found bool) {
	return C.userIndex.Lookup(id)
}

// RegisteredUser - Scans the linked registry for the first user with matching id
func (C *Catalog) RegisteredUser(id int64) (user UserRecord, found bool) {
	return C.users.FindByKey(id)
}

// IsRetrieved - Returns true if isbn has been retrieved at least once
func (C *Catalog) IsRetrieved(isbn int64) bool {
	_, found := C.retrieved.Lookup(isbn)
	return found
}

// Books - Returns all books in the catalog in ascending isbn order
func (C *Catalog) Books() []BookRecord {
	return ascendAll(C.catalog.Ascend)
}

// RetrievedBooks - Returns all books retrieved at least once in ascending isbn order
func (C *Catalog) RetrievedBooks() []BookRecord {
	return ascendAll(C.retrieved.Ascend)
}

// Users - Returns all registered users in registration order, duplicate ids included
func (C *Catalog) Users() (users []UserRecord) {
	users = make([]UserRecord, 0, C.users.Len())
	C.users.Walk(func(record model.UserRecord) bool {
		users = append(users, record)
		return true
	})

	return
}

// Stat - Produces a CatalogStat struct with information on all structures.
//   - includeDistribution set to true will include per bucket entry counts for both direct indexes,
//     false will leave the distributions nil.
func (C *Catalog) Stat(includeDistribution bool) (catalogStat *CatalogStat) {
	cs := CatalogStat{
		Users:            C.users.Len(),
		Books:            C.catalog.Len(),
		RetrievedBooks:   C.retrieved.Len(),
		BookIndexEntries: C.bookIndex.Len(),
		UserIndexEntries: C.userIndex.Len(),
	}

	if includeDistribution {
		cs.BookBucketDistribution = C.bookIndex.Distribution()
		cs.UserBucketDistribution = C.userIndex.Distribution()
	}

	catalogStat = &cs
	return
}

// ascendAll - Collects every record an ascend function visits
func ascendAll(ascend func(fn func(record model.BookRecord) bool)) (books []BookRecord) {
	books = make([]BookRecord, 0)
	ascend(func(record model.BookRecord) bool {
		books = append(books, record)
		return true
	})

	return
}
