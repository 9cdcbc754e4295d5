package handlers

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant-pos/models"
)

type ChefRequest struct {
	Name string `json:"name" binding:"required"`
	// CurrentOrders may be supplied on update to overwrite the load counter
	CurrentOrders *int `json:"currentOrders"`
}

// CreateChef adds a chef with an empty load
func (h *Handler) CreateChef(c *gin.Context) {
	var req ChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chef := models.Chef{
		ID:   "chef_" + uuid.NewString(),
		Name: req.Name,
	}
	if err := h.DB.Create(&chef).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chef"})
		return
	}
	c.JSON(http.StatusOK, chef)
}

// ListChefs returns all chefs with their current loads
func (h *Handler) ListChefs(c *gin.Context) {
	chefs := []models.Chef{}
	h.DB.Find(&chefs)
	c.JSON(http.StatusOK, chefs)
}

// UpdateChef renames a chef and, when supplied, overwrites the load counter
func (h *Handler) UpdateChef(c *gin.Context) {
	var chef models.Chef
	if err := h.DB.First(&chef, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
		return
	}

	var req ChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chef.Name = req.Name
	if req.CurrentOrders != nil {
		chef.CurrentOrders = *req.CurrentOrders
	}
	if err := h.DB.Save(&chef).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update chef"})
		return
	}
	c.JSON(http.StatusOK, chef)
}

// DeleteChef removes a chef from the pool
func (h *Handler) DeleteChef(c *gin.Context) {
	var chef models.Chef
	if err := h.DB.First(&chef, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chef not found"})
		return
	}
	h.DB.Delete(&chef)
	c.JSON(http.StatusOK, gin.H{"message": "Chef deleted successfully"})
}

// assignLeastLoaded picks a chef whose load equals the pool-wide minimum,
// breaking ties uniformly at random for a balanced long-run distribution,
// and increments the winner's load. An empty pool returns "" — orders
// proceed unassigned in that case.
func (h *Handler) assignLeastLoaded() string {
	var chefs []models.Chef
	if err := h.DB.Find(&chefs).Error; err != nil || len(chefs) == 0 {
		return ""
	}

	min := chefs[0].CurrentOrders
	for _, chef := range chefs[1:] {
		if chef.CurrentOrders < min {
			min = chef.CurrentOrders
		}
	}
	var candidates []models.Chef
	for _, chef := range chefs {
		if chef.CurrentOrders == min {
			candidates = append(candidates, chef)
		}
	}

	selected := candidates[rand.Intn(len(candidates))]
	h.DB.Model(&models.Chef{}).Where("id = ?", selected.ID).
		UpdateColumn("current_orders", gorm.Expr("current_orders + 1"))
	return selected.Name
}

// releaseChef decrements the named chef's load, clamped at zero
func (h *Handler) releaseChef(name string) {
	h.DB.Model(&models.Chef{}).
		Where("name = ? AND current_orders > 0", name).
		UpdateColumn("current_orders", gorm.Expr("current_orders - 1"))
}
