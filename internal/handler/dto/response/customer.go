package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"closet-by-era/internal/usecase/queries"
)

type CustomerResponse struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	OrderCount  int64      `json:"order_count"`
	TotalSpent  float64    `json:"total_spent"`
	LastOrderAt *time.Time `json:"last_order_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromCustomerList(items []queries.CustomerView) []CustomerResponse {
	resps := make([]CustomerResponse, 0, len(items))
	for i := range items {
		var resp CustomerResponse
		_ = copier.Copy(&resp, &items[i])
		resps = append(resps, resp)
	}
	return resps
}
