package services

import (
	"strings"
	"sync"

	"delivery-api/apperr"
	"delivery-api/models"
)

// fakeStore is an in-memory CatalogStore + OrderStore for service tests.
type fakeStore struct {
	mu          sync.Mutex
	customers   map[uint]models.Customer
	restaurants map[uint]models.Restaurant
	products    map[uint]models.Product
	orders      map[uint]models.Order
	nextOrderID uint

	productListCalls    int
	restaurantListCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers:   make(map[uint]models.Customer),
		restaurants: make(map[uint]models.Restaurant),
		products:    make(map[uint]models.Product),
		orders:      make(map[uint]models.Order),
	}
}

func (f *fakeStore) CustomerByID(id uint) (models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok {
		return models.Customer{}, apperr.NotFound("customer %d not found", id)
	}
	return c, nil
}

func (f *fakeStore) CustomerByEmail(email string) (models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.customers {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return models.Customer{}, apperr.NotFound("customer with email %q not found", email)
}

func (f *fakeStore) SaveCustomer(c *models.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == 0 {
		for _, existing := range f.customers {
			if strings.EqualFold(existing.Email, c.Email) {
				return apperr.Conflict("email already registered: %s", c.Email)
			}
		}
		c.ID = uint(len(f.customers) + 1)
	}
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeStore) SetCustomerActive(id uint, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok {
		return apperr.NotFound("customer %d not found", id)
	}
	c.Active = active
	f.customers[id] = c
	return nil
}

func (f *fakeStore) RestaurantByID(id uint) (models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.restaurants[id]
	if !ok {
		return models.Restaurant{}, apperr.NotFound("restaurant %d not found", id)
	}
	return r, nil
}

func (f *fakeStore) RestaurantByName(name string) (models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.restaurants {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return models.Restaurant{}, apperr.NotFound("restaurant %q not found", name)
}

func (f *fakeStore) ActiveRestaurants() ([]models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restaurantListCalls++
	var list []models.Restaurant
	for _, r := range f.restaurants {
		if r.Active {
			list = append(list, r)
		}
	}
	return list, nil
}

func (f *fakeStore) SaveRestaurant(r *models.Restaurant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.restaurants {
		if existing.ID != r.ID && existing.Active && strings.EqualFold(existing.Name, r.Name) {
			return apperr.Conflict("active restaurant named %q already exists", r.Name)
		}
	}
	if r.ID == 0 {
		r.ID = uint(len(f.restaurants) + 1)
	}
	f.restaurants[r.ID] = *r
	return nil
}

func (f *fakeStore) SetRestaurantActive(id uint, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.restaurants[id]
	if !ok {
		return apperr.NotFound("restaurant %d not found", id)
	}
	r.Active = active
	f.restaurants[id] = r
	return nil
}

func (f *fakeStore) ProductByID(id uint) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, apperr.NotFound("product %d not found", id)
	}
	return p, nil
}

func (f *fakeStore) ProductsByRestaurant(restaurantID uint) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productListCalls++
	var list []models.Product
	for _, p := range f.products {
		if p.RestaurantID == restaurantID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakeStore) SaveProduct(p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == 0 {
		p.ID = uint(len(f.products) + 1)
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeStore) SetProductAvailable(id uint, available bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return apperr.NotFound("product %d not found", id)
	}
	p.Available = available
	f.products[id] = p
	return nil
}

func (f *fakeStore) OrderByID(id uint) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return models.Order{}, apperr.NotFound("order %d not found", id)
	}
	return o, nil
}

func (f *fakeStore) OrdersByCustomer(customerID uint) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []models.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			list = append(list, o)
		}
	}
	return list, nil
}

func (f *fakeStore) OrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []models.Order
	for _, o := range f.orders {
		if o.Status == status {
			list = append(list, o)
		}
	}
	return list, nil
}

func (f *fakeStore) CreateOrder(o *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextOrderID++
	o.ID = f.nextOrderID
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeStore) UpdateOrderStatus(id uint, from, to models.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return apperr.NotFound("order %d not found", id)
	}
	if o.Status != from {
		return apperr.Business("order %d is no longer in status %s", id, from)
	}
	o.Status = to
	f.orders[id] = o
	return nil
}

func (f *fakeStore) orderCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}
