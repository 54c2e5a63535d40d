package repositories

import (
	"fmt"

	"globalbazaar/internal/models"

	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// Categories returns up to limit categories; limit <= 0 means all.
func (r *GORMCatalogRepository) Categories(limit int) ([]models.Category, error) {
	var categories []models.Category
	q := r.db
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// Slides returns all promotional slides.
func (r *GORMCatalogRepository) Slides() ([]models.Slide, error) {
	var slides []models.Slide
	if err := r.db.Find(&slides).Error; err != nil {
		return nil, fmt.Errorf("failed to get slides: %w", err)
	}
	return slides, nil
}
