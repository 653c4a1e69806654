package services

import (
	"errors"

	"skyzone-backend/internal/models"
	"skyzone-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginUser authenticates by email and password and returns a signed token.
func LoginUser(email, password string) (string, models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", user, ErrInvalidCredentials
		}
		return "", user, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", user, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", user, err
	}

	return token, user, nil
}
