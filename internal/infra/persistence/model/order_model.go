package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. The unique payment-session id makes
// webhook redelivery idempotent at insert time. The buyer FK is nullable so
// the account-deletion cascade can detach it.
type OrderModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PaymentSessionID string     `gorm:"type:varchar(255);unique;not null"`
	TotalAmount      string     `gorm:"type:varchar(32)"`
	EventID          *uuid.UUID `gorm:"type:uuid;index"`
	BuyerID          *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time  `gorm:"index"`

	Event *EventModel   `gorm:"foreignKey:EventID"`
	Buyer *AccountModel `gorm:"foreignKey:BuyerID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
