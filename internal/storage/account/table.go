package account

import (
	"github.com/gofrs/uuid/v5"
)

// Table is the in-memory accounts table in insertion order. Rows are stored
// by value; a committed Table is never mutated, writers work on a Clone.
type Table struct {
	order []uuid.UUID
	rows  map[uuid.UUID]Account
}

func NewTable() *Table {
	return &Table{rows: make(map[uuid.UUID]Account)}
}

// Clone returns a table that can be changed without affecting t.
func (t *Table) Clone() *Table {
	rows := make(map[uuid.UUID]Account, len(t.rows))
	for k, v := range t.rows {
		rows[k] = v
	}
	order := make([]uuid.UUID, len(t.order))
	copy(order, t.order)
	return &Table{order: order, rows: rows}
}

