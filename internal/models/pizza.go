package models

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals go over the wire as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Pizza represents a pizza on the menu with its size and current price
type Pizza struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"column:nome;size:255;not null" json:"nome"`
	Size  string          `gorm:"column:tamanho;size:50;not null" json:"tamanho"`
	Price decimal.Decimal `gorm:"column:preco;type:decimal(10,2);not null" json:"preco"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
