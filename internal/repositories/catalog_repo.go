package repositories

import (
	"globalbazaar/internal/models"
)

// CatalogRepository defines read-only access to categories and slides.
type CatalogRepository interface {
	// Categories returns up to limit categories; limit <= 0 means all.
	Categories(limit int) ([]models.Category, error)
	Slides() ([]models.Slide, error)
}
