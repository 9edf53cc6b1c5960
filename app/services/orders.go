package services

import (
	"time"

	"github.com/dvxstudio/backend/app/models"
	"github.com/dvxstudio/backend/internal/store"
)

// OrderService exposes the orders collection. Orders are append-only: the
// contract has no delete or status-transition operation.
type OrderService struct {
	col *store.Collection[models.Order]
}

func NewOrderService(docs *store.DocumentStore) *OrderService {
	col := store.NewCollection(docs, OrdersDocument,
		func(o models.Order) int { return o.ID },
		func(o models.Order, id int) models.Order {
			o.ID = id
			o.Date = time.Now().UTC().Format(time.RFC3339)
			o.Status = models.StatusNew
			return o
		},
	)
	return &OrderService{col: col}
}

// Create appends an order with a fresh id, the current timestamp and status
// "new". The caller's payload fields ride along in Extra untouched.
func (s *OrderService) Create(o models.Order) (models.Order, error) {
	return s.col.Append(o)
}

// List returns every order in stored order.
func (s *OrderService) List() ([]models.Order, error) {
	return s.col.List(nil)
}

// Count reports how many orders exist.
func (s *OrderService) Count() (int, error) {
	return s.col.Len()
}
