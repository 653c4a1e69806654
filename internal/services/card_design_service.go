package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skyzone-backend/internal/database"
	"skyzone-backend/internal/models"

	"gorm.io/gorm"
)

var ErrCardDesignNotFound = errors.New("card design not found")

// FindActiveCardDesigns lists the purchasable catalog.
func FindActiveCardDesigns() ([]models.CardDesign, error) {
	var designs []models.CardDesign
	if err := database.DB.Where("is_active = ?", true).Order("price asc").Find(&designs).Error; err != nil {
		return nil, err
	}
	return designs, nil
}

func FindCardDesignByID(id uint) (models.CardDesign, error) {
	// Try cache
	cacheKey := fmt.Sprintf("card_design:%d", id)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var design models.CardDesign
			if err := json.Unmarshal([]byte(val), &design); err == nil {
				return design, nil
			}
		}
	}

	var design models.CardDesign
	if err := database.DB.First(&design, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return design, ErrCardDesignNotFound
		}
		return design, err
	}

	// Set cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(design); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return design, nil
}

// FindOrCreateCardDesign looks up a design by id and falls back to creating a
// placeholder when the id is unknown, so a checkout referencing a stale
// catalog entry still materializes.
func FindOrCreateCardDesign(id uint, name string, price float64) (models.CardDesign, error) {
	design, err := FindCardDesignByID(id)
	if err == nil {
		return design, nil
	}
	if !errors.Is(err, ErrCardDesignNotFound) {
		return design, err
	}

	design = models.CardDesign{
		Name:        name,
		Description: "Custom ID card",
		Price:       price,
		ImageURL:    "/cards/default.jpg",
		IsActive:    true,
		Category:    "Custom",
	}
	if err := database.DB.Create(&design).Error; err != nil {
		return design, err
	}
	return design, nil
}
