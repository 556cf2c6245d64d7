package services

import (
	"testing"

	"delivery-api/apperr"
	"delivery-api/cache"
	"delivery-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (*fakeStore, *Catalog) {
	t.Helper()
	st := newFakeStore()
	return st, NewCatalog(st, cache.NewMemoryLayer(), testLogger())
}

func TestRegisterRestaurantRejectsDuplicateActiveName(t *testing.T) {
	_, svc := newCatalogService(t)

	_, err := svc.RegisterRestaurant(models.Restaurant{Name: "Bella Napoli", DeliveryFee: dec("2.00")})
	require.NoError(t, err)

	_, err = svc.RegisterRestaurant(models.Restaurant{Name: "bella napoli", DeliveryFee: dec("4.00")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRegisterRestaurantNameReusableAfterDeactivation(t *testing.T) {
	_, svc := newCatalogService(t)

	first, err := svc.RegisterRestaurant(models.Restaurant{Name: "Bella Napoli", DeliveryFee: dec("2.00")})
	require.NoError(t, err)
	require.NoError(t, svc.SetRestaurantActive(first.ID, false))

	_, err = svc.RegisterRestaurant(models.Restaurant{Name: "Bella Napoli", DeliveryFee: dec("3.00")})
	require.NoError(t, err)
}

func TestRegisterRestaurantRejectsNegativeFeeAndBlankName(t *testing.T) {
	_, svc := newCatalogService(t)

	_, err := svc.RegisterRestaurant(models.Restaurant{Name: "  ", DeliveryFee: dec("1.00")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.RegisterRestaurant(models.Restaurant{Name: "X", DeliveryFee: dec("-1.00")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRegisterCustomerRejectsDuplicateEmail(t *testing.T) {
	_, svc := newCatalogService(t)

	_, err := svc.RegisterCustomer(models.Customer{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = svc.RegisterCustomer(models.Customer{Name: "Outra Ana", Email: "ANA@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRestaurantByNameIsCaseInsensitive(t *testing.T) {
	_, svc := newCatalogService(t)

	created, err := svc.RegisterRestaurant(models.Restaurant{Name: "Bella Napoli", DeliveryFee: dec("2.00")})
	require.NoError(t, err)

	found, err := svc.RestaurantByName("BELLA NAPOLI")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	// Storage is case-preserving.
	assert.Equal(t, "Bella Napoli", found.Name)
}

func TestProductListingIsCachedBetweenReads(t *testing.T) {
	st, svc := newCatalogService(t)

	r, err := svc.RegisterRestaurant(models.Restaurant{Name: "R", DeliveryFee: dec("1.00")})
	require.NoError(t, err)
	_, err = svc.AddProduct(models.Product{RestaurantID: r.ID, Name: "Pão", Price: dec("2.00")})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		products, err := svc.ProductsByRestaurant(r.ID)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	}
	assert.Equal(t, 1, st.productListCalls)
}

func TestAddProductInvalidatesListing(t *testing.T) {
	st, svc := newCatalogService(t)

	r, err := svc.RegisterRestaurant(models.Restaurant{Name: "R", DeliveryFee: dec("1.00")})
	require.NoError(t, err)
	_, err = svc.AddProduct(models.Product{RestaurantID: r.ID, Name: "Pão", Price: dec("2.00")})
	require.NoError(t, err)

	products, err := svc.ProductsByRestaurant(r.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)

	// No manual cache clear: the write path invalidates before returning.
	_, err = svc.AddProduct(models.Product{RestaurantID: r.ID, Name: "Bolo", Price: dec("5.00")})
	require.NoError(t, err)

	products, err = svc.ProductsByRestaurant(r.ID)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 2, st.productListCalls)
}

func TestAvailabilityToggleInvalidatesListing(t *testing.T) {
	st, svc := newCatalogService(t)

	r, err := svc.RegisterRestaurant(models.Restaurant{Name: "R", DeliveryFee: dec("1.00")})
	require.NoError(t, err)
	p, err := svc.AddProduct(models.Product{RestaurantID: r.ID, Name: "Pão", Price: dec("2.00")})
	require.NoError(t, err)

	products, err := svc.ProductsByRestaurant(r.ID)
	require.NoError(t, err)
	require.True(t, products[0].Available)

	require.NoError(t, svc.SetProductAvailable(p.ID, false))

	products, err = svc.ProductsByRestaurant(r.ID)
	require.NoError(t, err)
	assert.False(t, products[0].Available)
	assert.Equal(t, 2, st.productListCalls)
}

func TestActiveRestaurantListingCachedAndInvalidatedOnRegister(t *testing.T) {
	st, svc := newCatalogService(t)

	_, err := svc.RegisterRestaurant(models.Restaurant{Name: "A", DeliveryFee: dec("1.00")})
	require.NoError(t, err)

	list, err := svc.ActiveRestaurants()
	require.NoError(t, err)
	require.Len(t, list, 1)
	_, err = svc.ActiveRestaurants()
	require.NoError(t, err)
	assert.Equal(t, 1, st.restaurantListCalls)

	_, err = svc.RegisterRestaurant(models.Restaurant{Name: "B", DeliveryFee: dec("1.00")})
	require.NoError(t, err)

	list, err = svc.ActiveRestaurants()
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, st.restaurantListCalls)
}

func TestUpdateProductCannotMoveRestaurants(t *testing.T) {
	_, svc := newCatalogService(t)

	r1, err := svc.RegisterRestaurant(models.Restaurant{Name: "R1", DeliveryFee: dec("1.00")})
	require.NoError(t, err)
	r2, err := svc.RegisterRestaurant(models.Restaurant{Name: "R2", DeliveryFee: dec("1.00")})
	require.NoError(t, err)
	p, err := svc.AddProduct(models.Product{RestaurantID: r1.ID, Name: "Pão", Price: dec("2.00")})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(p.ID, models.Product{
		RestaurantID: r2.ID, Name: "Pão", Price: dec("2.00"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindBusiness, apperr.KindOf(err))
}

func TestListingMissingRestaurantIsNotFound(t *testing.T) {
	_, svc := newCatalogService(t)

	_, err := svc.ProductsByRestaurant(404)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
