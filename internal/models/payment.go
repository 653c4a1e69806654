package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment is the gateway confirmation for an Order, one per order.
type Payment struct {
	ID                uint `gorm:"primarykey"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	OrderID           uint           `gorm:"uniqueIndex;not null"`
	RazorpayOrderID   string         `gorm:"type:varchar(64);index"`
	RazorpayPaymentID string         `gorm:"type:varchar(64);index"`
	RazorpaySignature string         `gorm:"type:varchar(128)"`
	Amount            float64        `gorm:"type:decimal(10,2);not null"`
	Currency          string         `gorm:"type:varchar(10);default:'INR'"`
	Status            string         `gorm:"type:varchar(20);default:'pending'"`
	PaymentResponse   datatypes.JSON `gorm:"type:json"` // raw gateway snapshot
}
