package services

import (
	"delivery-api/apperr"
	"delivery-api/models"

	"github.com/shopspring/decimal"
)

// QuoteItem is a validated order line with the unit price captured at quote
// time. Later product price changes never touch an existing order.
type QuoteItem struct {
	ProductID uint
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Quote is the priced result of a valid line-item set.
type Quote struct {
	Restaurant models.Restaurant
	Items      []QuoteItem
	Total      decimal.Decimal
}

// Pricer computes order totals from validated line items and the owning
// restaurant's delivery fee.
type Pricer struct {
	guard *Guard
}

func NewPricer(guard *Guard) *Pricer {
	return &Pricer{guard: guard}
}

// Quote resolves and validates every line item against the restaurant, then
// computes Σ(price × qty) + delivery fee. The sum is kept exact and rounded
// half-up to 2 decimal places once, at the end. Any failing item aborts the
// whole quote.
func (p *Pricer) Quote(restaurantID uint, items []ItemInput) (Quote, error) {
	if err := RequireNonEmptyItems(items); err != nil {
		return Quote{}, err
	}

	restaurant, err := p.guard.RequireActiveRestaurant(restaurantID)
	if err != nil {
		return Quote{}, err
	}

	quoted := make([]QuoteItem, 0, len(items))
	sum := decimal.Zero
	for _, item := range items {
		if err := RequirePositiveInt(item.Quantity, "quantity"); err != nil {
			return Quote{}, err
		}
		product, err := p.guard.RequireAvailableProduct(item.ProductID)
		if err != nil {
			return Quote{}, err
		}
		if product.RestaurantID != restaurantID {
			return Quote{}, apperr.Business(
				"product %q does not belong to restaurant %d", product.Name, restaurantID)
		}
		sum = sum.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		quoted = append(quoted, QuoteItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	total := sum.Add(restaurant.DeliveryFee).Round(2)
	return Quote{Restaurant: restaurant, Items: quoted, Total: total}, nil
}
