package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-pos/lifecycle"
	"restaurant-pos/models"
)

type OrderItemRequest struct {
	MenuItemID          string  `json:"menuItemId" binding:"required"`
	MenuItemName        string  `json:"menuItemName" binding:"required"`
	Quantity            int     `json:"quantity" binding:"required,min=1"`
	Price               float64 `json:"price" binding:"min=0"`
	CookingInstructions string  `json:"cookingInstructions"`
}

type CreateOrderRequest struct {
	TableNumber     *int               `json:"tableNumber"`
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerPhone   string             `json:"customerPhone" binding:"required"`
	CustomerAddress string             `json:"customerAddress"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Type            string             `json:"type" binding:"required,oneof=dinein takeaway"`
}

// CreateOrder places an order: prices the cart, estimates preparation time,
// assigns the least-loaded chef, reserves the dine-in table, and upserts the
// customer record. The reserved-table check runs before any mutation, so a
// conflict leaves the system untouched.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	orderType := models.OrderType(req.Type)

	if orderType == models.TypeDineIn && req.TableNumber != nil {
		var table models.Table
		if err := h.DB.First(&table, "number = ?", *req.TableNumber).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		if table.Status == models.TableReserved {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Table reserved"})
			return
		}
	}

	var existingOrders int64
	h.DB.Model(&models.Order{}).Count(&existingOrders)

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			MenuItemID:          it.MenuItemID,
			MenuItemName:        it.MenuItemName,
			Quantity:            it.Quantity,
			Price:               it.Price,
			CookingInstructions: it.CookingInstructions,
		})
	}

	totals := lifecycle.ComputeTotals(items, orderType)
	processingTime := h.orderProcessingTime(items)
	assignedChef := h.assignLeastLoaded()

	if orderType == models.TypeDineIn && req.TableNumber != nil {
		h.DB.Model(&models.Table{}).Where("number = ?", *req.TableNumber).
			Update("status", models.TableReserved)
	}
	h.upsertCustomer(req.CustomerPhone, req.CustomerName, req.CustomerAddress)

	order := models.Order{
		ID:              "order_" + uuid.NewString(),
		OrderNumber:     lifecycle.OrderNumber(existingOrders),
		TableNumber:     req.TableNumber,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		Type:            orderType,
		Status:          models.StatusProcessing,
		TotalAmount:     totals.Subtotal,
		Taxes:           totals.Taxes,
		DeliveryCharge:  totals.DeliveryCharge,
		GrandTotal:      totals.GrandTotal,
		ProcessingTime:  processingTime,
		RemainingTime:   processingTime,
		CreatedAt:       time.Now().UTC(),
		AssignedChef:    assignedChef,
	}
	if err := h.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// orderProcessingTime estimates total preparation seconds for a cart from
// the catalog's per-item averages. Items no longer in the catalog
// contribute nothing.
func (h *Handler) orderProcessingTime(items []models.OrderItem) int {
	total := 0
	for _, it := range items {
		var menuItem models.MenuItem
		if err := h.DB.First(&menuItem, "id = ?", it.MenuItemID).Error; err != nil {
			continue
		}
		total += menuItem.AveragePreparationTime * it.Quantity
	}
	return total * 60
}

// ListOrders returns orders newest first, optionally filtered by status and
// type, advancing each order's processing timer on the way out.
func (h *Handler) ListOrders(c *gin.Context) {
	query := h.DB.Preload("Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if orderType := c.Query("type"); orderType != "" {
		query = query.Where("type = ?", orderType)
	}

	orders := []models.Order{}
	query.Order("created_at desc").Find(&orders)

	now := time.Now().UTC()
	for i := range orders {
		if lifecycle.Advance(&orders[i], now) {
			h.finishProcessing(&orders[i])
		}
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns a single order, advancing its processing timer
func (h *Handler) GetOrder(c *gin.Context) {
	var order models.Order
	if err := h.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if lifecycle.Advance(&order, time.Now().UTC()) {
		h.finishProcessing(&order)
	}
	c.JSON(http.StatusOK, order)
}

// finishProcessing persists the done transition produced by
// lifecycle.Advance and frees the order's dine-in table. The write always
// sets the same values, so concurrent reads of an expiring order may both
// land here harmlessly.
func (h *Handler) finishProcessing(o *models.Order) {
	h.DB.Model(&models.Order{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"status":         models.StatusDone,
		"remaining_time": 0,
	})
	if o.Type == models.TypeDineIn && o.TableNumber != nil {
		h.DB.Model(&models.Table{}).Where("number = ?", *o.TableNumber).
			Update("status", models.TableAvailable)
	}
}

// UpdateOrderStatus overwrites an order's status from the `status` query
// parameter. A move to done releases the dine-in table; a move to completed
// releases the assigned chef. Both side effects key off the requested
// status, so repeating the same update repeats them — preserved behavior.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	status := c.Query("status")
	if !models.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status: " + status})
		return
	}

	var order models.Order
	if err := h.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := h.DB.Model(&order).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	if models.OrderStatus(status) == models.StatusDone &&
		order.Type == models.TypeDineIn && order.TableNumber != nil {
		h.DB.Model(&models.Table{}).Where("number = ?", *order.TableNumber).
			Update("status", models.TableAvailable)
	}
	if models.OrderStatus(status) == models.StatusCompleted && order.AssignedChef != "" {
		h.releaseChef(order.AssignedChef)
	}

	order.Status = models.OrderStatus(status)
	c.JSON(http.StatusOK, order)
}
