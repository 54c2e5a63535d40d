package handlers

import (
	"globalbazaar/internal/models"
	"globalbazaar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// minSellingQuantityFilter is the threshold behind /filter-product,
// carried over from the upstream aggregation.
const minSellingQuantityFilter = 100

// ProductHandler handles HTTP requests for products, including the stock
// adjustment endpoints.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. Paths are kept exactly as
// the original frontend expects them, aliases included; auth is the
// middleware gating private routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/products", auth, h.HandleCreate)

	router.Get("/get-allProducts", auth, h.HandleList)
	router.Get("/get-allProduct", auth, h.HandleList)
	router.Get("/get-allProducts-autoPaly", auth, h.HandleList)

	router.Get("/filterCategory", h.HandleFilterCategory)
	router.Get("/filter-product", auth, h.HandleFilterMinSellingQuantity)

	router.Get("/singleProduct/:id", auth, h.HandleGetByID)
	router.Get("/singleProductUpdate/:id", h.HandleGetByID)

	router.Get("/my-products", auth, h.HandleMyProducts)
	router.Delete("/myProduct/:id", auth, h.HandleDelete)
	router.Put("/updatedProduct/:id", auth, h.HandleUpdate)

	router.Patch("/updateQuantity/:id", h.HandleSell)
	router.Patch("/addUpdateQuantity/:id", h.HandleRestock)
}

// HandleCreate creates a product owned by the authenticated seller.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(product); err != nil {
		return badRequest(c, err)
	}

	if err := h.service.CreateProduct(&product, principal(c)); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleList returns all products.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// HandleFilterCategory returns products in the category named by the
// query parameter.
func (h *ProductHandler) HandleFilterCategory(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByCategory(c.Query("category"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// HandleFilterMinSellingQuantity returns products whose minimum selling
// quantity exceeds the fixed threshold.
func (h *ProductHandler) HandleFilterMinSellingQuantity(c *fiber.Ctx) error {
	products, err := h.service.FilterByMinSellingQuantity(minSellingQuantityFilter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// HandleGetByID returns a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// HandleMyProducts returns the authenticated seller's products. The
// requested email must match the principal.
func (h *ProductHandler) HandleMyProducts(c *fiber.Ctx) error {
	products, err := h.service.ListOwnedProducts(c.Query("email"), principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// HandleUpdate merges the posted fields into the product. The response
// reports how many records actually changed so a no-op is visible to the
// caller, as upstream did with modifiedCount.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, err)
	}

	modified, err := h.service.UpdateProduct(c.Params("id"), principal(c), fields)
	if err != nil {
		return fail(c, err)
	}

	message := "No changes were made"
	if modified > 0 {
		message = "Product updated successfully"
	}
	return c.JSON(fiber.Map{
		"modifiedCount": modified,
		"message":       message,
	})
}

// HandleDelete removes a product owned by the principal. Idempotent.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteProduct(c.Params("id"), principal(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"deletedCount": deleted,
	})
}

// quantityUpdateRequest is the body of both PATCH quantity endpoints,
// matching the upstream shape {updateQuantity: {...}}. Both fields accept
// numbers or numeric strings.
type quantityUpdateRequest struct {
	UpdateQuantity struct {
		SellQuantity models.FlexInt `json:"sellQuantity"`
		Quantity     models.FlexInt `json:"quantity"`
	} `json:"updateQuantity"`
}

// HandleSell decrements stock for a sale.
func (h *ProductHandler) HandleSell(c *fiber.Ctx) error {
	var req quantityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	quantity, err := h.service.DecrementForSale(c.Params("id"), req.UpdateQuantity.SellQuantity.Int())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "quantity updated",
		"quantity": quantity,
	})
}

// HandleRestock increments stock for a restock.
func (h *ProductHandler) HandleRestock(c *fiber.Ctx) error {
	var req quantityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	quantity, err := h.service.IncrementForRestock(c.Params("id"), req.UpdateQuantity.Quantity.Int())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "quantity updated",
		"quantity": quantity,
	})
}
