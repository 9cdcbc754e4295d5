package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant-pos/models"
)

type CreateTableRequest struct {
	ChairCount int    `json:"chairCount" binding:"required,gt=0"`
	Name       string `json:"name"`
}

// nextTableNumber always appends past the highest existing number; freed
// lower numbers are only ever reclaimed through deletion renumbering.
func (h *Handler) nextTableNumber() (int, error) {
	var max int
	err := h.DB.Model(&models.Table{}).Select("COALESCE(MAX(number), 0)").Scan(&max).Error
	return max + 1, err
}

// CreateTable adds a table at the next table number
func (h *Handler) CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	number, err := h.nextTableNumber()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to allocate table number"})
		return
	}
	table := models.Table{
		ID:         "table_" + uuid.NewString(),
		Number:     number,
		ChairCount: req.ChairCount,
		Name:       req.Name,
		Status:     models.TableAvailable,
	}
	if err := h.DB.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}
	c.JSON(http.StatusOK, table)
}

// ListTables returns all tables sorted by number
func (h *Handler) ListTables(c *gin.Context) {
	tables := []models.Table{}
	h.DB.Order("number").Find(&tables)
	c.JSON(http.StatusOK, tables)
}

// GetTable returns a single table
func (h *Handler) GetTable(c *gin.Context) {
	var table models.Table
	if err := h.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	c.JSON(http.StatusOK, table)
}

// UpdateTableStatus overwrites a table's status from the `status` query
// parameter. Setting a table available without a customer_id clears the
// occupant reference.
func (h *Handler) UpdateTableStatus(c *gin.Context) {
	status := c.Query("status")
	if !models.ValidTableStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table status: " + status})
		return
	}

	var table models.Table
	if err := h.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	updates := map[string]interface{}{"status": status}
	if customerID := c.Query("customer_id"); customerID != "" {
		updates["customer_id"] = customerID
	} else if models.TableStatus(status) == models.TableAvailable {
		updates["customer_id"] = nil
	}
	if err := h.DB.Model(&table).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update table"})
		return
	}

	h.DB.First(&table, "id = ?", table.ID)
	c.JSON(http.StatusOK, table)
}

// DeleteTable removes a table and renumbers every higher-numbered table
// down by one so the numbers stay contiguous. Reserved tables cannot be
// deleted.
func (h *Handler) DeleteTable(c *gin.Context) {
	var table models.Table
	if err := h.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	if table.Status == models.TableReserved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete reserved table"})
		return
	}

	// One transaction so readers never observe a partially renumbered
	// board.
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&table).Error; err != nil {
			return err
		}
		return tx.Model(&models.Table{}).
			Where("number > ?", table.Number).
			UpdateColumn("number", gorm.Expr("number - 1")).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted and numbers reshuffled"})
}
