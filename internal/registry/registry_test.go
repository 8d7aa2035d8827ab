package registry

import (
	"github.com/gostonefire/librarycatalog/internal/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRegistry_Append(t *testing.T) {
	t.Run("appends users in order", func(t *testing.T) {
		// Prepare
		r := New()

		// Execute
		r.Append(1, "Alice")
		r.Append(2, "Bob")
		r.Append(3, "Carol")

		// Check
		var users []model.UserRecord
		r.Walk(func(record model.UserRecord) bool {
			users = append(users, record)
			return true
		})
		assert.Equal(t, []model.UserRecord{{Id: 1, Name: "Alice"}, {Id: 2, Name: "Bob"}, {Id: 3, Name: "Carol"}}, users, "list order")
		assert.Equal(t, int64(3), r.Len(), "three users")
	})

	t.Run("keeps duplicate ids", func(t *testing.T) {
		// Prepare
		r := New()

		// Execute
		r.Append(1, "Alice")
		r.Append(1, "Alicia")

		// Check
		assert.Equal(t, int64(2), r.Len(), "both stored")
		u, ok := r.FindByKey(1)
		assert.True(t, ok, "found")
		assert.Equal(t, "Alice", u.Name, "first in list order")
	})
}

func TestRegistry_FindByKey(t *testing.T) {
	t.Run("finds user at the tail", func(t *testing.T) {
		// Prepare
		r := New()
		r.Append(1, "Alice")
		r.Append(2, "Bob")

		// Execute
		u, ok := r.FindByKey(2)

		// Check
		assert.True(t, ok, "found")
		assert.Equal(t, model.UserRecord{Id: 2, Name: "Bob"}, u, "correct user")
	})

	t.Run("not found on empty and populated list", func(t *testing.T) {
		// Prepare
		r := New()

		// Execute
		_, okEmpty := r.FindByKey(1)
		r.Append(1, "Alice")
		_, okMissing := r.FindByKey(2)

		// Check
		assert.False(t, okEmpty, "empty list")
		assert.False(t, okMissing, "full scan without match")
	})
}

func TestRegistry_Walk(t *testing.T) {
	t.Run("stops when fn returns false", func(t *testing.T) {
		// Prepare
		r := New()
		r.Append(1, "Alice")
		r.Append(2, "Bob")
		r.Append(3, "Carol")

		// Execute
		var visited int
		r.Walk(func(record model.UserRecord) bool {
			visited++
			return record.Id < 2
		})

		// Check
		assert.Equal(t, 2, visited, "stopped at second user")
	})
}
