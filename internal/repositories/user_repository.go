package repositories

import "globalbazaar/internal/models"

// UserRepository defines the interface for account data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
}
