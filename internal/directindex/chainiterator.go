package directindex

import (
	"github.com/gostonefire/librarycatalog/internal/model"
)

// ChainRecords - Is used to iterate over the entries of one bucket chain one by one.
type ChainRecords struct {
	records []model.Entry
	pos     int
}

// newChainRecords - Returns a pointer to a new ChainRecords struct
func newChainRecords(records []model.Entry) *ChainRecords {
	return &ChainRecords{records: records}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (C *ChainRecords) HasNext() bool {
	return C.pos < len(C.records)
}

// Next - Returns the next entry.
// It returns:
//   - record is the next entry in chain order.
//   - ok is false if there were no more entries when calling this function.
func (C *ChainRecords) Next() (record model.Entry, ok bool) {
	if C.pos >= len(C.records) {
		return
	}

	record = C.records[C.pos]
	C.pos++
	ok = true

	return
}
