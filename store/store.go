// Package store owns persistence for the catalog and orders. All reads return
// value snapshots; callers never receive pointers into a live object graph.
package store

import "delivery-api/models"

// CatalogStore is the persistence contract for customers, restaurants and
// products. Names and emails are matched case-insensitively on lookup but
// stored as given.
type CatalogStore interface {
	CustomerByID(id uint) (models.Customer, error)
	CustomerByEmail(email string) (models.Customer, error)
	SaveCustomer(c *models.Customer) error
	SetCustomerActive(id uint, active bool) error

	RestaurantByID(id uint) (models.Restaurant, error)
	RestaurantByName(name string) (models.Restaurant, error)
	ActiveRestaurants() ([]models.Restaurant, error)
	SaveRestaurant(r *models.Restaurant) error
	SetRestaurantActive(id uint, active bool) error

	ProductByID(id uint) (models.Product, error)
	ProductsByRestaurant(restaurantID uint) ([]models.Product, error)
	SaveProduct(p *models.Product) error
	SetProductAvailable(id uint, available bool) error
}

// OrderStore is the persistence contract for orders.
type OrderStore interface {
	OrderByID(id uint) (models.Order, error)
	OrdersByCustomer(customerID uint) ([]models.Order, error)
	OrdersByStatus(status models.OrderStatus) ([]models.Order, error)
	CreateOrder(o *models.Order) error
	// UpdateOrderStatus persists the transition from -> to. The update is a
	// compare-and-swap on the current status: if another writer already moved
	// the order off `from`, no row is touched and a Business error is
	// returned, so concurrent transitions from the same prior state cannot
	// both succeed.
	UpdateOrderStatus(id uint, from, to models.OrderStatus) error
}
