package handlers

import (
	"globalbazaar/internal/models"
	"globalbazaar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/orders", h.HandleCreate)
	router.Get("/getAllOrder/:email", auth, h.HandleListByCustomer)
	router.Delete("/orders/:id", h.HandleDelete)
}

// HandleCreate stores a new order. Orders are taken as given: the product
// reference is not checked and stock is not adjusted here.
func (h *OrderHandler) HandleCreate(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(order); err != nil {
		return badRequest(c, err)
	}

	if err := h.service.CreateOrder(&order); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListByCustomer returns the customer's orders enriched with the
// referenced product's fields. The authenticated principal must match the
// email in the path.
func (h *OrderHandler) HandleListByCustomer(c *fiber.Ctx) error {
	orders, err := h.service.ListByCustomer(c.Params("email"), principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(orders)
}

// HandleDelete removes an order by id. No ownership check, as upstream.
func (h *OrderHandler) HandleDelete(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteOrder(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"deletedCount": deleted,
	})
}
