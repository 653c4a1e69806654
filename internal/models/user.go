package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Phone     string `gorm:"type:varchar(50)"`
	Address   string `gorm:"type:text"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"not null;default:'customer'"`
}
