package models

import "time"

// CardDesign is a purchasable card template.
type CardDesign struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string  `gorm:"type:varchar(100);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	ImageURL    string  `gorm:"type:varchar(255)"`
	IsActive    bool    `gorm:"default:true"`
	Category    string  `gorm:"type:varchar(50);index"`
}
