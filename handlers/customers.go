package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant-pos/models"
)

// upsertCustomer records an order against the customer's phone number:
// existing customers get their order count bumped, new ones start at 1.
func (h *Handler) upsertCustomer(phone, name, address string) {
	var existing models.Customer
	if err := h.DB.First(&existing, "phone = ?", phone).Error; err == nil {
		h.DB.Model(&existing).UpdateColumn("orders_count", gorm.Expr("orders_count + 1"))
		return
	}
	h.DB.Create(&models.Customer{
		ID:          "customer_" + uuid.NewString(),
		Name:        name,
		Phone:       phone,
		Address:     address,
		OrdersCount: 1,
	})
}

// ListCustomers returns every customer record
func (h *Handler) ListCustomers(c *gin.Context) {
	customers := []models.Customer{}
	h.DB.Find(&customers)
	c.JSON(http.StatusOK, customers)
}

// GetCustomerByPhone looks up a customer by their phone number
func (h *Handler) GetCustomerByPhone(c *gin.Context) {
	var customer models.Customer
	if err := h.DB.First(&customer, "phone = ?", c.Param("phone")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}
