package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-pos/models"
)

type MenuItemRequest struct {
	Name                   string  `json:"name" binding:"required"`
	Description            string  `json:"description"`
	Price                  float64 `json:"price" binding:"required,gt=0"`
	Category               string  `json:"category" binding:"required"`
	Stock                  int     `json:"stock" binding:"min=0"`
	AveragePreparationTime int     `json:"averagePreparationTime" binding:"required,gt=0"`
	ImageURL               string  `json:"imageUrl"`
}

// CreateMenuItem adds a new item to the catalog
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		ID:                     "menu_" + uuid.NewString(),
		Name:                   req.Name,
		Description:            req.Description,
		Price:                  req.Price,
		Category:               req.Category,
		Stock:                  req.Stock,
		AveragePreparationTime: req.AveragePreparationTime,
		ImageURL:               req.ImageURL,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListMenuItems returns the catalog, optionally filtered by category
func (h *Handler) ListMenuItems(c *gin.Context) {
	items := []models.MenuItem{}
	query := h.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Find(&items)
	c.JSON(http.StatusOK, items)
}

// GetMenuItem returns a single catalog item
func (h *Handler) GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItem replaces all mutable fields of an item
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	item.Stock = req.Stock
	item.AveragePreparationTime = req.AveragePreparationTime
	item.ImageURL = req.ImageURL
	if err := h.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes an item from the catalog
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	h.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

// ListCategories returns the distinct category names present in the catalog
func (h *Handler) ListCategories(c *gin.Context) {
	categories := []string{}
	h.DB.Model(&models.MenuItem{}).Distinct().Pluck("category", &categories)
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
