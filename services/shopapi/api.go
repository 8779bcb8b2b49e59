package shopapi

import (
	"context"
	"time"

	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/order"
)

// CatalogResponse is the one-shot read that seeds the catalog snapshot.
type CatalogResponse struct {
	Total int               `json:"total"`
	Items []catalog.Product `json:"items"`
}

type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "created"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type OrderResult struct {
	UID       string      `json:"id"`
	Total     int64       `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	Items     []string    `json:"items"`
	Error     string      `json:"error,omitempty"`
}

//go:generate mockgen -source=api.go -package shopapi -destination api_mock.go CatalogGetter,OrderSubmitter
type CatalogGetter interface {
	FetchCatalog(c context.Context) (CatalogResponse, error)
}

// OrderSubmitter performs the single request/response exchange that
// finalizes a checkout. A failed submission never vanishes silently: it
// yields an error plus a cancelled-status result carrying the message.
type OrderSubmitter interface {
	SubmitOrder(c context.Context, ord order.Order) (OrderResult, error)
}
