package models

import (
	"time"
)

// Customer is a person who places orders. Email is unique across customers.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:nome;size:255;not null" json:"nome"`
	Email     string    `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Phone     *string   `gorm:"column:telefone;size:20" json:"telefone"`
	Address   *string   `gorm:"column:endereco;type:text" json:"endereco"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string {
	return "usuarios"
}
