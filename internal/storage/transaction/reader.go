package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
)

type Reader struct {
	table *Table
}

func NewReader(table *Table) *Reader {
	return &Reader{table: table}
}

func (r *Reader) FindByID(_ context.Context, id uuid.UUID) (*Transaction, error) {
	row, ok := r.table.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	row = row.Clone()
	return &row, nil
}

// List returns transactions matching the filter, most recent first. Nil
// filter returns all. Like a SQL LIMIT n+1 query, the page may carry one
// extra row when more rows follow; callers trim it and build the cursor.
// An AfterID that is not in the table yields an empty page.
func (r *Reader) List(_ context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	var result []*Transaction
	skipped := 0
	resumed := filter == nil || filter.AfterID == nil
	for _, id := range r.table.order {
		if !resumed {
			resumed = id == *filter.AfterID
			continue
		}
		row := r.table.rows[id]
		if !matches(&row, filter) {
			continue
		}
		if filter != nil && filter.AfterID == nil && skipped < filter.Offset {
			skipped++
			continue
		}
		row = row.Clone()
		result = append(result, &row)
		if filter != nil && filter.Limit > 0 && len(result) == filter.Limit+1 {
			break
		}
	}
	return result, nil
}

func matches(row *Transaction, filter *TransactionFilter) bool {
	if filter == nil {
		return true
	}
	if filter.AccountID != nil && row.AccountID != *filter.AccountID {
		return false
	}
	if filter.MaxCreationTime != nil && row.CreatedAt.After(*filter.MaxCreationTime) {
		return false
	}
	if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, row.Status) {
		return false
	}
	return true
}

func containsStatus(statuses []lifecycle.Status, s lifecycle.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}
