package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"globalbazaar/internal/models"
	"globalbazaar/internal/repositories"
)

// EventPublisher pushes domain events to the message broker. Satisfied by
// pkg/rabbitmq.Client; nil disables publishing.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders, including the
// read-time enrichment join against the product store.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// CreateOrder stores the order as given. The referenced product is not
// checked and stock is not adjusted here; the quantity endpoint handles
// that in a separate call. An order.created event is published best
// effort: a broker failure is logged, never surfaced to the customer.
func (s *OrderService) CreateOrder(order *models.Order) error {
	if err := s.orderRepo.Create(order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if s.publisher == nil {
		return nil
	}
	body, err := json.Marshal(map[string]interface{}{
		"orderId":       order.ID,
		"customerEmail": order.CustomerEmail,
		"productId":     order.ProductID,
		"sellQuantity":  order.SellQuantity.Int(),
	})
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return nil
	}
	if err := s.publisher.Publish("order", "order.created", body); err != nil {
		log.Printf("Warning: failed to publish order.created for order %s: %v", order.ID, err)
	}
	return nil
}

// ListByCustomer returns the customer's orders enriched with fields from
// each referenced product. The principal must match the requested email;
// the check runs before any storage read. An order whose product has been
// deleted is returned with ProductMissing set instead of failing the whole
// listing.
func (s *OrderService) ListByCustomer(email, principal string) ([]models.EnrichedOrder, error) {
	if email != principal {
		return nil, ErrForbidden
	}

	orders, err := s.orderRepo.GetByCustomer(email)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for %s: %w", email, err)
	}

	enriched := make([]models.EnrichedOrder, 0, len(orders))
	for _, order := range orders {
		view := models.EnrichedOrder{Order: order}
		product, err := s.productRepo.GetByID(order.ProductID)
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			view.ProductMissing = true
		case err != nil:
			return nil, fmt.Errorf("failed to enrich order %s: %w", order.ID, err)
		default:
			view.Name = product.Name
			view.Photo = product.ImageURL
			view.Brand = product.Brand
			view.Category = product.Category
			view.Price = product.Price
		}
		enriched = append(enriched, view)
	}
	return enriched, nil
}

// DeleteOrder removes an order by id. No ownership check, matching the
// upstream behavior; idempotent.
func (s *OrderService) DeleteOrder(id string) (int64, error) {
	return s.orderRepo.Delete(id)
}
