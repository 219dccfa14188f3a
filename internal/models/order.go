package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status every new order starts with
const OrderStatusPending = "pending"

// Order is the order header. Total is computed from the items when the order is placed.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CustomerID uint            `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Customer   *Customer       `gorm:"foreignKey:CustomerID" json:"-"`
	Total      decimal.Decimal `gorm:"column:total;type:decimal(10,2);not null" json:"total"`
	Status     string          `gorm:"column:status;size:50;default:'pending'" json:"status"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Order) TableName() string {
	return "pedidos"
}

// OrderItem is one line of an order. UnitPrice is the pizza price captured when the
// order was placed and never follows later price changes.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"column:pedido_id;not null;index" json:"pedido_id"`
	Order     *Order          `gorm:"foreignKey:OrderID" json:"-"`
	PizzaID   uint            `gorm:"column:pizza_id;not null;index" json:"pizza_id"`
	Pizza     *Pizza          `gorm:"foreignKey:PizzaID" json:"-"`
	Quantity  int             `gorm:"column:quantidade;not null" json:"quantidade"`
	UnitPrice decimal.Decimal `gorm:"column:preco_unitario;type:decimal(10,2);not null" json:"preco_unitario"`
}

func (OrderItem) TableName() string {
	return "pedido_itens"
}

// OrderSummary is an order joined with the contact fields of its customer
type OrderSummary struct {
	Order
	CustomerName  string `gorm:"column:usuario_nome" json:"usuario_nome"`
	CustomerEmail string `gorm:"column:usuario_email" json:"usuario_email"`
}

// OrderItemDetail is an order line joined with the pizza's current name and size
type OrderItemDetail struct {
	OrderItem
	PizzaName string `gorm:"column:pizza_nome" json:"pizza_nome"`
	PizzaSize string `gorm:"column:pizza_tamanho" json:"pizza_tamanho"`
}

// OrderDetail is the full view of a single order
type OrderDetail struct {
	OrderSummary
	CustomerPhone   *string           `gorm:"column:usuario_telefone" json:"usuario_telefone"`
	CustomerAddress *string           `gorm:"column:usuario_endereco" json:"usuario_endereco"`
	Items           []OrderItemDetail `gorm:"-" json:"itens"`
}

// OrderLine is a requested pizza and quantity when placing an order
type OrderLine struct {
	PizzaID  uint
	Quantity int
}
