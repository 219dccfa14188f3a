package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizzaria-api/internal/models"
	"github.com/franciscosanchezn/pizzaria-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CustomerController handles HTTP requests related to customers
type CustomerController interface {
	CreateCustomer(c *gin.Context)
	ListCustomers(c *gin.Context)
	GetCustomerByEmail(c *gin.Context)
	ListCustomerOrders(c *gin.Context)
}

type customerController struct {
	customers services.CustomerService
	orders    services.OrderService
}

// NewCustomerController creates a new instance of CustomerController
func NewCustomerController(customers services.CustomerService, orders services.OrderService) CustomerController {
	return &customerController{customers: customers, orders: orders}
}

// CreateCustomer godoc
// @Summary Register a customer
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body models.CreateCustomerRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /usuarios [post]
func (c *customerController) CreateCustomer(ctx *gin.Context) {
	var req models.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	customer, err := c.customers.CreateCustomer(ctx.Request.Context(), models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, customer)
}

// ListCustomers godoc
// @Summary List customers
// @Description Newest customers first
// @Tags usuarios
// @Produce json
// @Success 200 {array} models.Customer
// @Failure 500 {object} models.ErrorResponse
// @Router /usuarios [get]
func (c *customerController) ListCustomers(ctx *gin.Context) {
	customers, err := c.customers.ListCustomers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// GetCustomerByEmail godoc
// @Summary Find a customer by email
// @Tags usuarios
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} models.Customer
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /usuarios/email/{email} [get]
func (c *customerController) GetCustomerByEmail(ctx *gin.Context) {
	customer, err := c.customers.GetCustomerByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

// ListCustomerOrders godoc
// @Summary List the orders of a customer
// @Description Newest orders first. An unknown customer has no orders.
// @Tags usuarios
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {array} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /usuarios/{id}/pedidos [get]
func (c *customerController) ListCustomerOrders(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	orders, err := c.orders.ListOrdersForCustomer(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}
