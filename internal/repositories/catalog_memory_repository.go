package repositories

import (
	"sync"

	"globalbazaar/internal/models"
)

// MemoryCatalogRepository is an in-memory implementation of
// CatalogRepository, seeded at startup when no database is configured.
type MemoryCatalogRepository struct {
	categories []models.Category
	slides     []models.Slide
	mu         sync.RWMutex
}

// NewMemoryCatalogRepository creates a new instance of MemoryCatalogRepository.
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{}
}

// Seed replaces the stored categories and slides.
func (r *MemoryCatalogRepository) Seed(categories []models.Category, slides []models.Slide) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = categories
	r.slides = slides
}

// Categories returns up to limit categories; limit <= 0 means all.
func (r *MemoryCatalogRepository) Categories(limit int) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.categories) {
		limit = len(r.categories)
	}
	list := make([]models.Category, limit)
	copy(list, r.categories[:limit])
	return list, nil
}

// Slides returns all promotional slides.
func (r *MemoryCatalogRepository) Slides() ([]models.Slide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Slide, len(r.slides))
	copy(list, r.slides)
	return list, nil
}
