package queries

import (
	"context"
	"time"

	"closet-by-era/internal/domain/rfm"
	"closet-by-era/internal/pkg/errs"

	"github.com/google/uuid"
)

type CustomerReadStore interface {
	List(ctx context.Context, search string, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int) ([]CustomerView, error)
	// ListOrderHistories returns every customer joined with their
	// completed orders, the segmentation engine's input.
	ListOrderHistories(ctx context.Context) ([]rfm.CustomerOrders, error)
}

type CustomerQueries interface {
	List(ctx context.Context, search string, cursor *Cursor, limit int) ([]CustomerView, *Cursor, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) List(ctx context.Context, search string, cursor *Cursor, limit int) ([]CustomerView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		afterCreatedAt *time.Time
		afterID        *uuid.UUID
	)
	if cursor != nil && cursor.After != "" {
		t, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Wrap(err, "invalid customer list cursor")
		}
		afterCreatedAt, afterID = &t, &id
	}

	items, err := q.readStore.List(ctx, search, afterCreatedAt, afterID, limit+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}
