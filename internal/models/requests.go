package models

import "github.com/shopspring/decimal"

// CreatePizzaRequest is the body of POST /pizzas
type CreatePizzaRequest struct {
	Name  string           `json:"nome" binding:"required" example:"Margherita"`
	Size  string           `json:"tamanho" binding:"required" example:"M"`
	Price *decimal.Decimal `json:"preco" binding:"required" swaggertype:"number" example:"25.00"`
}

// CreateCustomerRequest is the body of POST /usuarios
type CreateCustomerRequest struct {
	Name    string  `json:"nome" binding:"required" example:"Ana Souza"`
	Email   string  `json:"email" binding:"required,email" example:"ana@example.com"`
	Phone   *string `json:"telefone" binding:"omitempty,max=20" example:"11999990000"`
	Address *string `json:"endereco" example:"Rua das Flores, 10"`
}

// OrderItemRequest is one requested line of POST /pedidos
type OrderItemRequest struct {
	PizzaID  uint `json:"pizza_id" binding:"required,gt=0" example:"1"`
	Quantity int  `json:"quantidade" binding:"required,gt=0" example:"2"`
}

// CreateOrderRequest is the body of POST /pedidos
type CreateOrderRequest struct {
	CustomerID uint               `json:"usuario_id" binding:"required,gt=0" example:"1"`
	Items      []OrderItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest is the body of PUT /pedidos/:id/status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=50" example:"delivered"`
}

// Lines converts the requested items into service order lines
func (r CreateOrderRequest) Lines() []OrderLine {
	lines := make([]OrderLine, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, OrderLine{PizzaID: item.PizzaID, Quantity: item.Quantity})
	}
	return lines
}
