package services

import (
	"errors"

	"skyzone-backend/internal/database"
	"skyzone-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrStatusRequired = errors.New("status is required")
)

// FindAllOrders returns every order with its payment and card design
// preloaded, newest first. The admin dashboard consumes the full set, so
// there is no pagination.
func FindAllOrders() ([]models.Order, error) {
	var orders []models.Order
	err := database.DB.
		Preload("Payment").
		Preload("CardDesign").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindOrdersByUserID returns one customer's orders, newest first, with the
// payment and card design joined.
func FindOrdersByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := database.DB.
		Preload("Payment").
		Preload("CardDesign").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := database.DB.Preload("Payment").Preload("CardDesign").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets the order status unconditionally. Any non-empty
// value is accepted; there is no transition table and concurrent updates are
// last-write-wins.
func UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}

	var order models.Order
	if err := database.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}

	// Reload with associations so callers can echo the joined row back.
	return GetOrderByID(id)
}
