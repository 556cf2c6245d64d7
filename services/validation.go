package services

import (
	"strings"

	"delivery-api/apperr"
	"delivery-api/models"
	"delivery-api/store"

	"github.com/shopspring/decimal"
)

// ItemInput is one requested order line: a product and how many of it.
type ItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// Guard holds the stateless rule checks shared by the catalog and order
// flows. It never mutates state and never logs; it only decides.
type Guard struct {
	catalog store.CatalogStore
}

func NewGuard(catalog store.CatalogStore) *Guard {
	return &Guard{catalog: catalog}
}

// RequireActiveCustomer resolves the customer and rejects inactive ones.
func (g *Guard) RequireActiveCustomer(id uint) (models.Customer, error) {
	c, err := g.catalog.CustomerByID(id)
	if err != nil {
		return models.Customer{}, err
	}
	if !c.Active {
		return models.Customer{}, apperr.Business("customer %d is deactivated", id)
	}
	return c, nil
}

// RequireActiveRestaurant resolves the restaurant and rejects inactive ones.
func (g *Guard) RequireActiveRestaurant(id uint) (models.Restaurant, error) {
	r, err := g.catalog.RestaurantByID(id)
	if err != nil {
		return models.Restaurant{}, err
	}
	if !r.Active {
		return models.Restaurant{}, apperr.Business("restaurant %d is deactivated", id)
	}
	return r, nil
}

// RequireAvailableProduct resolves the product and rejects unavailable ones.
func (g *Guard) RequireAvailableProduct(id uint) (models.Product, error) {
	p, err := g.catalog.ProductByID(id)
	if err != nil {
		return models.Product{}, err
	}
	if !p.Available {
		return models.Product{}, apperr.Business("product %q is not available", p.Name)
	}
	return p, nil
}

// RequirePositive rejects zero or negative monetary values.
func RequirePositive(value decimal.Decimal, field string) error {
	if value.Sign() <= 0 {
		return apperr.Validation("%s must be greater than zero", field)
	}
	return nil
}

// RequireNonNegative rejects negative monetary values (delivery fees may be zero).
func RequireNonNegative(value decimal.Decimal, field string) error {
	if value.Sign() < 0 {
		return apperr.Validation("%s must not be negative", field)
	}
	return nil
}

// RequirePositiveInt rejects zero or negative counts.
func RequirePositiveInt(value int, field string) error {
	if value <= 0 {
		return apperr.Validation("%s must be greater than zero", field)
	}
	return nil
}

// RequireNonEmptyItems rejects an order without line items.
func RequireNonEmptyItems(items []ItemInput) error {
	if len(items) == 0 {
		return apperr.Validation("order must contain at least one item")
	}
	return nil
}

// RequireText rejects blank required text fields.
func RequireText(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Validation("%s is required", field)
	}
	return nil
}
