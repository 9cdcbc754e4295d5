package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-pos/models"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// GetAnalytics computes the dashboard rollup by scanning all orders and
// chefs on demand; nothing is cached.
func (h *Handler) GetAnalytics(c *gin.Context) {
	var totalChefs, totalClients int64
	h.DB.Model(&models.Chef{}).Count(&totalChefs)
	h.DB.Model(&models.Customer{}).Count(&totalClients)

	var orders []models.Order
	h.DB.Find(&orders)

	var totalRevenue float64
	ordersByType := map[string]int{"dinein": 0, "takeaway": 0, "served": 0}
	revenueByWeekday := map[string]float64{}
	for _, o := range orders {
		totalRevenue += o.GrandTotal
		switch o.Type {
		case models.TypeDineIn:
			ordersByType["dinein"]++
		case models.TypeTakeaway:
			ordersByType["takeaway"]++
		}
		if o.Status == models.StatusDone || o.Status == models.StatusCompleted {
			ordersByType["served"]++
		}
		revenueByWeekday[o.CreatedAt.Format("Mon")] += o.GrandTotal
	}

	revenueByDay := []models.DayRevenue{}
	for _, day := range weekdays {
		if revenue, ok := revenueByWeekday[day]; ok {
			revenueByDay = append(revenueByDay, models.DayRevenue{Day: day, Revenue: revenue})
		}
	}

	var chefs []models.Chef
	h.DB.Find(&chefs)
	// Distribution is keyed by chef name, matching how orders record their
	// assignment.
	distribution := []models.ChefOrders{}
	for _, chef := range chefs {
		count := 0
		for _, o := range orders {
			if o.AssignedChef == chef.Name {
				count++
			}
		}
		distribution = append(distribution, models.ChefOrders{Name: chef.Name, Orders: count})
	}

	c.JSON(http.StatusOK, models.Analytics{
		TotalChefs:            totalChefs,
		TotalRevenue:          totalRevenue,
		TotalOrders:           len(orders),
		TotalClients:          totalClients,
		OrdersByType:          ordersByType,
		RevenueByDay:          revenueByDay,
		ChefOrderDistribution: distribution,
	})
}
