package handlers

import (
	"globalbazaar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// topCategoryCount is how many categories the home page shows.
const topCategoryCount = 8

// CatalogHandler handles the read-only category and slide listings.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleTopCategories)
	router.Get("/all-categories", h.HandleAllCategories)
	router.Get("/get-allProducts-forSlide", h.HandleSlides)
}

// HandleTopCategories returns the first categories for the home page.
func (h *CatalogHandler) HandleTopCategories(c *fiber.Ctx) error {
	categories, err := h.service.TopCategories(topCategoryCount)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

// HandleAllCategories returns every category.
func (h *CatalogHandler) HandleAllCategories(c *fiber.Ctx) error {
	categories, err := h.service.AllCategories()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

// HandleSlides returns the promotional slides.
func (h *CatalogHandler) HandleSlides(c *fiber.Ctx) error {
	slides, err := h.service.Slides()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(slides)
}
