package store

import (
	"errors"

	"delivery-api/apperr"
	"delivery-api/models"

	"gorm.io/gorm"
)

// GormStore implements CatalogStore and OrderStore over a gorm connection.
type GormStore struct {
	db *gorm.DB
}

var (
	_ CatalogStore = (*GormStore)(nil)
	_ OrderStore   = (*GormStore)(nil)
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ── Customers ───────────────────────────────────────────────────────────────

func (s *GormStore) CustomerByID(id uint) (models.Customer, error) {
	var c models.Customer
	if err := s.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, apperr.NotFound("customer %d not found", id)
		}
		return models.Customer{}, err
	}
	return c, nil
}

func (s *GormStore) CustomerByEmail(email string) (models.Customer, error) {
	var c models.Customer
	if err := s.db.Where("LOWER(email) = LOWER(?)", email).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, apperr.NotFound("customer with email %q not found", email)
		}
		return models.Customer{}, err
	}
	return c, nil
}

func (s *GormStore) SaveCustomer(c *models.Customer) error {
	if c.ID == 0 {
		var existing models.Customer
		err := s.db.Where("LOWER(email) = LOWER(?)", c.Email).First(&existing).Error
		if err == nil {
			return apperr.Conflict("email already registered: %s", c.Email)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return s.db.Save(c).Error
}

func (s *GormStore) SetCustomerActive(id uint, active bool) error {
	res := s.db.Model(&models.Customer{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("customer %d not found", id)
	}
	return nil
}

// ── Restaurants ─────────────────────────────────────────────────────────────

func (s *GormStore) RestaurantByID(id uint) (models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, apperr.NotFound("restaurant %d not found", id)
		}
		return models.Restaurant{}, err
	}
	return r, nil
}

func (s *GormStore) RestaurantByName(name string) (models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, apperr.NotFound("restaurant %q not found", name)
		}
		return models.Restaurant{}, err
	}
	return r, nil
}

func (s *GormStore) ActiveRestaurants() ([]models.Restaurant, error) {
	var list []models.Restaurant
	if err := s.db.Where("active = ?", true).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// SaveRestaurant rejects a new restaurant whose name collides with an
// existing active one. Deactivated restaurants do not block name re-use.
func (s *GormStore) SaveRestaurant(r *models.Restaurant) error {
	var existing models.Restaurant
	err := s.db.Where("LOWER(name) = LOWER(?) AND active = ? AND id <> ?", r.Name, true, r.ID).
		First(&existing).Error
	if err == nil {
		return apperr.Conflict("active restaurant named %q already exists", r.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Save(r).Error
}

func (s *GormStore) SetRestaurantActive(id uint, active bool) error {
	res := s.db.Model(&models.Restaurant{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("restaurant %d not found", id)
	}
	return nil
}

// ── Products ────────────────────────────────────────────────────────────────

func (s *GormStore) ProductByID(id uint) (models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, apperr.NotFound("product %d not found", id)
		}
		return models.Product{}, err
	}
	return p, nil
}

func (s *GormStore) ProductsByRestaurant(restaurantID uint) ([]models.Product, error) {
	var list []models.Product
	if err := s.db.Where("restaurant_id = ?", restaurantID).Order("id asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *GormStore) SaveProduct(p *models.Product) error {
	return s.db.Save(p).Error
}

func (s *GormStore) SetProductAvailable(id uint, available bool) error {
	res := s.db.Model(&models.Product{}).Where("id = ?", id).Update("available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("product %d not found", id)
	}
	return nil
}

// ── Orders ──────────────────────────────────────────────────────────────────

func (s *GormStore) OrderByID(id uint) (models.Order, error) {
	var o models.Order
	if err := s.db.Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, apperr.NotFound("order %d not found", id)
		}
		return models.Order{}, err
	}
	return o, nil
}

func (s *GormStore) OrdersByCustomer(customerID uint) ([]models.Order, error) {
	var list []models.Order
	err := s.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *GormStore) OrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	var list []models.Order
	err := s.db.Preload("Items").
		Where("status = ?", status).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CreateOrder writes the order and its items as one transaction.
func (s *GormStore) CreateOrder(o *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

func (s *GormStore) UpdateOrderStatus(id uint, from, to models.OrderStatus) error {
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the order vanished or a concurrent transition won the race.
		var o models.Order
		if err := s.db.First(&o, id).Error; err != nil {
			return apperr.NotFound("order %d not found", id)
		}
		return apperr.Business("order %d is no longer in status %s", id, from)
	}
	return nil
}
