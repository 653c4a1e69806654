package models

import "time"

// Order lifecycle statuses. The status column itself is free text and the
// updater does not enforce transitions; these are the values the dashboard
// and seed data use.
const (
	OrderStatusPending   = "pending"
	OrderStatusInDesign  = "in_design"
	OrderStatusPrinted   = "printed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is one purchase attempt. Customer fields are snapshotted from the
// User at order time so later profile edits do not rewrite order history.
type Order struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	OrderNumber  string `gorm:"type:varchar(20);index;not null"`
	UserID       uint   `gorm:"index;not null"`
	CardDesignID uint   `gorm:"index;not null"`

	CustomerName    string `gorm:"type:varchar(100);not null"`
	CustomerEmail   string `gorm:"type:varchar(255);not null"`
	CustomerPhone   string `gorm:"type:varchar(50)"`
	CustomerAddress string `gorm:"type:text"`

	Quantity     int     `gorm:"not null"`
	PricePerCard float64 `gorm:"type:decimal(10,2);not null"`
	TotalPrice   float64 `gorm:"type:decimal(10,2);not null"`
	Status       string  `gorm:"type:varchar(30);not null;default:'pending'"`

	FrontImage  string `gorm:"type:varchar(255)"`
	BackImage   string `gorm:"type:varchar(255)"`
	PDFDocument string `gorm:"type:varchar(255)"`
	OrderNotes  string `gorm:"type:text"`

	User       User       `gorm:"foreignKey:UserID"`
	CardDesign CardDesign `gorm:"foreignKey:CardDesignID"`
	Payment    *Payment   `gorm:"foreignKey:OrderID"`
}
