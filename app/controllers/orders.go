package controllers

import (
	"net/http"

	"github.com/dvxstudio/backend/app/models"
	"github.com/dvxstudio/backend/app/services"
	"github.com/dvxstudio/backend/pkg/bind"
	"github.com/dvxstudio/backend/pkg/response"
)

type OrdersController struct {
	orders *services.OrderService
}

func NewOrdersController(orders *services.OrderService) *OrdersController {
	return &OrdersController{orders: orders}
}

// Create handles POST /api/orders. The payload is taken as-is; id, date and
// status are assigned by the store.
func (c *OrdersController) Create(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := bind.JSON(r, &order); err != nil {
		response.Err(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := c.orders.Create(order)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"success": true,
		"message": "Заказ создан",
		"order":   created,
	})
}

// List handles GET /api/admin/orders.
func (c *OrdersController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.List()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, map[string]any{"orders": orders})
}
