package services

import (
	"strings"

	"delivery-api/apperr"
	"delivery-api/models"
	"delivery-api/statemachine"
	"delivery-api/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Orders owns order creation and the status state machine.
type Orders struct {
	orders store.OrderStore
	guard  *Guard
	pricer *Pricer
	log    *logrus.Logger
}

func NewOrders(orders store.OrderStore, guard *Guard, pricer *Pricer, log *logrus.Logger) *Orders {
	return &Orders{orders: orders, guard: guard, pricer: pricer, log: log}
}

// newOrderNumber returns a short unique token for customer-facing references.
func newOrderNumber() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Create validates the customer, prices the items and persists the order with
// status PENDENTE. Validation and pricing fail fast: on any error nothing is
// written.
func (s *Orders) Create(customerID, restaurantID uint, items []ItemInput, notes string) (models.Order, error) {
	if _, err := s.guard.RequireActiveCustomer(customerID); err != nil {
		return models.Order{}, err
	}

	quote, err := s.pricer.Quote(restaurantID, items)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		OrderNumber:  newOrderNumber(),
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Status:       models.StatusPendente,
		TotalAmount:  quote.Total,
		Notes:        notes,
	}
	for _, item := range quote.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Name:      item.Name,
		})
	}

	if err := s.orders.CreateOrder(&order); err != nil {
		return models.Order{}, err
	}

	s.log.WithFields(logrus.Fields{
		"order_number":  order.OrderNumber,
		"customer_id":   customerID,
		"restaurant_id": restaurantID,
		"total":         order.TotalAmount.StringFixed(2),
	}).Info("order created")

	return order, nil
}

// UpdateStatus moves an order through the state machine. The requested status
// is upper-cased before comparison. On an illegal transition the stored order
// is left untouched and a Business error is returned.
func (s *Orders) UpdateStatus(id uint, newStatus string) (models.Order, error) {
	status := models.OrderStatus(strings.ToUpper(strings.TrimSpace(newStatus)))
	if !status.Valid() {
		return models.Order{}, apperr.Validation("unknown order status: %s", newStatus)
	}

	order, err := s.orders.OrderByID(id)
	if err != nil {
		return models.Order{}, err
	}

	if err := statemachine.CanTransition(order.Status, status); err != nil {
		return models.Order{}, apperr.Wrap(apperr.KindBusiness, err,
			"cannot move order %s from %s to %s", order.OrderNumber, order.Status, status)
	}

	if err := s.orders.UpdateOrderStatus(id, order.Status, status); err != nil {
		return models.Order{}, err
	}

	s.log.WithFields(logrus.Fields{
		"order_number": order.OrderNumber,
		"from":         order.Status,
		"to":           status,
	}).Info("order status updated")

	order.Status = status
	return order, nil
}

// GetByID is a pure read projection.
func (s *Orders) GetByID(id uint) (models.Order, error) {
	return s.orders.OrderByID(id)
}

// ListByCustomer is a pure read projection.
func (s *Orders) ListByCustomer(customerID uint) ([]models.Order, error) {
	return s.orders.OrdersByCustomer(customerID)
}

// ListByStatus is a pure read projection; the status filter is upper-cased.
func (s *Orders) ListByStatus(status string) ([]models.Order, error) {
	normalized := models.OrderStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !normalized.Valid() {
		return nil, apperr.Validation("unknown order status: %s", status)
	}
	return s.orders.OrdersByStatus(normalized)
}
