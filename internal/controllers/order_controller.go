package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizzaria-api/internal/models"
	"github.com/franciscosanchezn/pizzaria-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// CreateOrder places an order priced with the current menu
	CreateOrder(c *gin.Context)
	// ListOrders retrieves every order with its customer
	ListOrders(c *gin.Context)
	// GetOrder retrieves one order with its items
	GetOrder(c *gin.Context)
	// UpdateOrderStatus overwrites the status of an order
	UpdateOrderStatus(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Prices every item with the current pizza price and stores the order atomically
// @Tags pedidos
// @Accept json
// @Produce json
// @Param pedido body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /pedidos [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	order, err := c.service.CreateOrder(ctx.Request.Context(), req.CustomerID, req.Lines())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

// ListOrders godoc
// @Summary List orders
// @Description Every order with its customer's name and email, newest first
// @Tags pedidos
// @Produce json
// @Success 200 {array} models.OrderSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pedidos [get]
func (c *orderController) ListOrders(ctx *gin.Context) {
	orders, err := c.service.ListOrders(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrder godoc
// @Summary Get order details
// @Tags pedidos
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.OrderDetail
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pedidos/{id} [get]
func (c *orderController) GetOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.service.GetOrderDetail(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Tags pedidos
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ChangesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pedidos/{id}/status [put]
func (c *orderController) UpdateOrderStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	changes, err := c.service.UpdateOrderStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ChangesResponse{Message: "Status atualizado", Changes: changes})
}
