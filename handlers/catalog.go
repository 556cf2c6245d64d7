package handlers

import (
	"net/http"
	"strconv"

	"delivery-api/models"
	"delivery-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CatalogHandler exposes restaurant, product and customer management.
type CatalogHandler struct {
	catalog *services.Catalog
}

func NewCatalogHandler(catalog *services.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// ── Customers ───────────────────────────────────────────────────────────────

type RegisterCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *CatalogHandler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.catalog.RegisterCustomer(models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customer registered", "customer": customer})
}

func (h *CatalogHandler) GetCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	customer, err := h.catalog.CustomerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (h *CatalogHandler) DeactivateCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeactivateCustomer(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deactivated", "customer_id": id})
}

// ── Restaurants ─────────────────────────────────────────────────────────────

type RestaurantRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Rating      float64         `json:"rating"`
}

func (h *CatalogHandler) RegisterRestaurant(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	restaurant, err := h.catalog.RegisterRestaurant(models.Restaurant{
		Name:        req.Name,
		Category:    req.Category,
		Address:     req.Address,
		Phone:       req.Phone,
		DeliveryFee: req.DeliveryFee,
		Rating:      req.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant registered", "restaurant": restaurant})
}

func (h *CatalogHandler) UpdateRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	restaurant, err := h.catalog.UpdateRestaurant(id, models.Restaurant{
		Name:        req.Name,
		Category:    req.Category,
		Address:     req.Address,
		Phone:       req.Phone,
		DeliveryFee: req.DeliveryFee,
		Rating:      req.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *CatalogHandler) SetRestaurantActive(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.catalog.SetRestaurantActive(id, *req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant_id": id, "active": *req.Active})
}

// ListRestaurants returns all active restaurants (public, cached)
func (h *CatalogHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.catalog.ActiveRestaurants()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

func (h *CatalogHandler) GetRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.catalog.RestaurantByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// ── Products ────────────────────────────────────────────────────────────────

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category"`
}

func (h *CatalogHandler) AddProduct(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.catalog.AddProduct(models.Product{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added", "product": product})
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "productId")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.catalog.UpdateProduct(id, models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

type SetAvailableRequest struct {
	Available *bool `json:"available" binding:"required"`
}

func (h *CatalogHandler) SetProductAvailable(c *gin.Context) {
	id, ok := paramID(c, "productId")
	if !ok {
		return
	}
	var req SetAvailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.catalog.SetProductAvailable(id, *req.Available); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product_id": id, "available": *req.Available})
}

// GetMenu returns the product list for a restaurant (public, cached)
func (h *CatalogHandler) GetMenu(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	products, err := h.catalog.ProductsByRestaurant(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}
