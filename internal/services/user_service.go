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

var ErrUserNotFound = errors.New("user not found")

func FindUserByID(userID uint) (models.User, error) {
	// Try cache
	cacheKey := fmt.Sprintf("user:%d", userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}

	// Set cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

func FindUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}

// FindOrCreateUserByEmail returns the user with the given email, creating a
// customer record from the supplied details when none exists. The first-seen
// record wins: details of an existing user are never updated here.
func FindOrCreateUserByEmail(email, name, phone, address string) (models.User, error) {
	user, err := FindUserByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return user, err
	}

	user = models.User{
		Email:   email,
		Name:    name,
		Phone:   phone,
		Address: address,
		// Placeholder until the customer registers properly.
		Password: "temporary_password",
		Role:     models.RoleCustomer,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return user, err
	}
	return user, nil
}
