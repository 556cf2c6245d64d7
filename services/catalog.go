package services

import (
	"delivery-api/apperr"
	"delivery-api/cache"
	"delivery-api/models"
	"delivery-api/store"

	"github.com/sirupsen/logrus"
)

// Catalog owns restaurant, product and customer registration, and serves the
// cached catalog read paths. Every write invalidates the affected cache keys
// before returning, so readers after a completed write never see stale data.
type Catalog struct {
	store store.CatalogStore
	cache cache.Layer
	log   *logrus.Logger
}

func NewCatalog(s store.CatalogStore, c cache.Layer, log *logrus.Logger) *Catalog {
	return &Catalog{store: s, cache: c, log: log}
}

// ── Customers ───────────────────────────────────────────────────────────────

func (s *Catalog) RegisterCustomer(c models.Customer) (models.Customer, error) {
	if err := RequireText(c.Name, "name"); err != nil {
		return models.Customer{}, err
	}
	if err := RequireText(c.Email, "email"); err != nil {
		return models.Customer{}, err
	}
	c.ID = 0
	c.Active = true
	if err := s.store.SaveCustomer(&c); err != nil {
		return models.Customer{}, err
	}
	s.log.WithField("customer_id", c.ID).Info("customer registered")
	return c, nil
}

func (s *Catalog) CustomerByID(id uint) (models.Customer, error) {
	return s.store.CustomerByID(id)
}

func (s *Catalog) DeactivateCustomer(id uint) error {
	return s.store.SetCustomerActive(id, false)
}

// ── Restaurants ─────────────────────────────────────────────────────────────

func (s *Catalog) RegisterRestaurant(r models.Restaurant) (models.Restaurant, error) {
	if err := RequireText(r.Name, "name"); err != nil {
		return models.Restaurant{}, err
	}
	if err := RequireNonNegative(r.DeliveryFee, "delivery fee"); err != nil {
		return models.Restaurant{}, err
	}
	r.ID = 0
	r.Active = true
	if err := s.store.SaveRestaurant(&r); err != nil {
		return models.Restaurant{}, err
	}
	// A new restaurant changes catalog-wide listings; wildcard invalidation.
	s.cache.InvalidateAll()
	s.log.WithFields(logrus.Fields{"restaurant_id": r.ID, "name": r.Name}).
		Info("restaurant registered")
	return r, nil
}

func (s *Catalog) UpdateRestaurant(id uint, update models.Restaurant) (models.Restaurant, error) {
	existing, err := s.store.RestaurantByID(id)
	if err != nil {
		return models.Restaurant{}, err
	}
	if err := RequireText(update.Name, "name"); err != nil {
		return models.Restaurant{}, err
	}
	if err := RequireNonNegative(update.DeliveryFee, "delivery fee"); err != nil {
		return models.Restaurant{}, err
	}
	existing.Name = update.Name
	existing.Category = update.Category
	existing.Address = update.Address
	existing.Phone = update.Phone
	existing.DeliveryFee = update.DeliveryFee
	existing.Rating = update.Rating
	if err := s.store.SaveRestaurant(&existing); err != nil {
		return models.Restaurant{}, err
	}
	s.cache.Invalidate(cache.ActiveRestaurantsKey())
	return existing, nil
}

func (s *Catalog) SetRestaurantActive(id uint, active bool) error {
	if err := s.store.SetRestaurantActive(id, active); err != nil {
		return err
	}
	s.cache.Invalidate(cache.ActiveRestaurantsKey())
	s.cache.Invalidate(cache.ProductsKey(id))
	s.log.WithFields(logrus.Fields{"restaurant_id": id, "active": active}).
		Info("restaurant active flag changed")
	return nil
}

func (s *Catalog) RestaurantByID(id uint) (models.Restaurant, error) {
	return s.store.RestaurantByID(id)
}

func (s *Catalog) RestaurantByName(name string) (models.Restaurant, error) {
	return s.store.RestaurantByName(name)
}

// ActiveRestaurants serves the listing through the cache.
func (s *Catalog) ActiveRestaurants() ([]models.Restaurant, error) {
	v, err := s.cache.GetOrLoad(cache.ActiveRestaurantsKey(), func() (interface{}, error) {
		return s.store.ActiveRestaurants()
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Restaurant), nil
}

// ── Products ────────────────────────────────────────────────────────────────

func (s *Catalog) AddProduct(p models.Product) (models.Product, error) {
	if err := RequireText(p.Name, "name"); err != nil {
		return models.Product{}, err
	}
	if err := RequirePositive(p.Price, "price"); err != nil {
		return models.Product{}, err
	}
	if _, err := s.store.RestaurantByID(p.RestaurantID); err != nil {
		return models.Product{}, err
	}
	p.ID = 0
	p.Available = true
	if err := s.store.SaveProduct(&p); err != nil {
		return models.Product{}, err
	}
	s.cache.Invalidate(cache.ProductsKey(p.RestaurantID))
	s.log.WithFields(logrus.Fields{"product_id": p.ID, "restaurant_id": p.RestaurantID}).
		Info("product added")
	return p, nil
}

func (s *Catalog) UpdateProduct(id uint, update models.Product) (models.Product, error) {
	existing, err := s.store.ProductByID(id)
	if err != nil {
		return models.Product{}, err
	}
	if err := RequireText(update.Name, "name"); err != nil {
		return models.Product{}, err
	}
	if err := RequirePositive(update.Price, "price"); err != nil {
		return models.Product{}, err
	}
	// A product never migrates restaurants.
	if update.RestaurantID != 0 && update.RestaurantID != existing.RestaurantID {
		return models.Product{}, apperr.Business(
			"product %d belongs to restaurant %d and cannot be moved", id, existing.RestaurantID)
	}
	existing.Name = update.Name
	existing.Description = update.Description
	existing.Price = update.Price
	existing.Category = update.Category
	if err := s.store.SaveProduct(&existing); err != nil {
		return models.Product{}, err
	}
	s.cache.Invalidate(cache.ProductsKey(existing.RestaurantID))
	return existing, nil
}

func (s *Catalog) SetProductAvailable(id uint, available bool) error {
	p, err := s.store.ProductByID(id)
	if err != nil {
		return err
	}
	if err := s.store.SetProductAvailable(id, available); err != nil {
		return err
	}
	s.cache.Invalidate(cache.ProductsKey(p.RestaurantID))
	s.log.WithFields(logrus.Fields{"product_id": id, "available": available}).
		Info("product availability changed")
	return nil
}

func (s *Catalog) ProductByID(id uint) (models.Product, error) {
	return s.store.ProductByID(id)
}

// ProductsByRestaurant serves the product listing through the cache. The
// restaurant must exist; listing a missing restaurant is NotFound, not an
// empty slice.
func (s *Catalog) ProductsByRestaurant(restaurantID uint) ([]models.Product, error) {
	v, err := s.cache.GetOrLoad(cache.ProductsKey(restaurantID), func() (interface{}, error) {
		if _, err := s.store.RestaurantByID(restaurantID); err != nil {
			return nil, err
		}
		return s.store.ProductsByRestaurant(restaurantID)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Product), nil
}
