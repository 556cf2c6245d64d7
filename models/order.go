package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPendente        OrderStatus = "PENDENTE"
	StatusConfirmado      OrderStatus = "CONFIRMADO"
	StatusEmPreparacao    OrderStatus = "EM_PREPARACAO"
	StatusSaiuParaEntrega OrderStatus = "SAIU_PARA_ENTREGA"
	StatusEntregue        OrderStatus = "ENTREGUE"
	StatusCancelado       OrderStatus = "CANCELADO"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPendente, StatusConfirmado, StatusEmPreparacao,
		StatusSaiuParaEntrega, StatusEntregue, StatusCancelado:
		return true
	}
	return false
}

type Order struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	OrderNumber  string          `json:"order_number" gorm:"uniqueIndex;size:20;not null"`
	CustomerID   uint            `json:"customer_id" gorm:"not null"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null"`
	Status       OrderStatus     `json:"status" gorm:"size:20;not null;default:'PENDENTE'"`
	TotalAmount  decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Notes        string          `json:"notes" gorm:"size:200"`
	Items        []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null"`
	ProductID uint            `json:"product_id" gorm:"not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"` // snapshot price at time of order
	Name      string          `json:"name"`                                          // snapshot name
}
