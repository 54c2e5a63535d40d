package repositories

import (
	"sync"

	"globalbazaar/internal/models"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	byEmail map[string]models.User
	mu      sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byEmail: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return ErrDuplicateEmail
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.byEmail[user.Email] = *user
	return nil
}

// GetByEmail returns a user by their email.
func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}
