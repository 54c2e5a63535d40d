package services

import (
	"globalbazaar/internal/models"
	"globalbazaar/internal/repositories"
)

// CatalogService serves the read-only category and slide listings.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// TopCategories returns up to limit categories for the home page.
func (s *CatalogService) TopCategories(limit int) ([]models.Category, error) {
	return s.repo.Categories(limit)
}

// AllCategories returns every category.
func (s *CatalogService) AllCategories() ([]models.Category, error) {
	return s.repo.Categories(0)
}

// Slides returns all promotional slides.
func (s *CatalogService) Slides() ([]models.Slide, error) {
	return s.repo.Slides()
}
