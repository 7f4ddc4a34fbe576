package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"closet-by-era/internal/domain/rfm"
	"closet-by-era/internal/infra"
	"closet-by-era/internal/usecase/queries"
)

type CustomerReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomerReadStore(pool *pgxpool.Pool) *CustomerReadStore {
	return &CustomerReadStore{pool: pool}
}

func (r *CustomerReadStore) List(ctx context.Context, search string, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int) ([]queries.CustomerView, error) {
	var (
		conds []string
		args  []any
	)
	if search != "" {
		args = append(args, "%"+strings.ToLower(search)+"%")
		idx := len(args)
		conds = append(conds, fmt.Sprintf(
			"(LOWER(c.first_name) LIKE $%d OR LOWER(c.last_name) LIKE $%d OR LOWER(c.email) LIKE $%d)", idx, idx, idx))
	}
	if afterCreatedAt != nil && afterID != nil {
		args = append(args, *afterCreatedAt, *afterID)
		conds = append(conds, fmt.Sprintf("(c.created_at, c.id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `
		SELECT c.id, c.first_name, c.last_name, c.email,
			COUNT(o.id) AS order_count,
			COALESCE(SUM(o.total), 0) AS total_spent,
			MAX(o.placed_at) AS last_order_at,
			c.created_at
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id AND o.status = 'completed'`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(`
		GROUP BY c.id
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $%d`, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var views []queries.CustomerView
	for rows.Next() {
		var v queries.CustomerView
		if err := rows.Scan(
			&v.ID,
			&v.FirstName,
			&v.LastName,
			&v.Email,
			&v.OrderCount,
			&v.TotalSpent,
			&v.LastOrderAt,
			&v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return views, nil
}

// ListOrderHistories streams every customer with their completed orders
// and regroups the flat rows per customer. Customers without orders are
// still returned; the segmentation engine decides what to do with them.
func (r *CustomerReadStore) ListOrderHistories(ctx context.Context) ([]rfm.CustomerOrders, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name, c.email, o.total, o.placed_at
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id AND o.status = 'completed'
		ORDER BY c.created_at, c.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order histories", err)
	}
	defer rows.Close()

	var (
		histories []rfm.CustomerOrders
		current   *rfm.CustomerOrders
	)
	for rows.Next() {
		var (
			id                         uuid.UUID
			firstName, lastName, email string
			total                      *float64
			placedAt                   *time.Time
		)
		if err := rows.Scan(&id, &firstName, &lastName, &email, &total, &placedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order history row", err)
		}

		if current == nil || current.CustomerID != id {
			histories = append(histories, rfm.CustomerOrders{
				CustomerID: id,
				FirstName:  firstName,
				LastName:   lastName,
				Email:      email,
			})
			current = &histories[len(histories)-1]
		}
		if total != nil && placedAt != nil {
			current.Orders = append(current.Orders, rfm.Order{Total: *total, PlacedAt: *placedAt})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order history rows", err)
	}
	return histories, nil
}
