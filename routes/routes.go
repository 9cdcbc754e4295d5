package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"restaurant-pos/handlers"
)

// Setup registers the JSON API under /api plus the static single-page app
// shell. Any unmatched path serves the SPA's index.html when deployed,
// falling back to a plain status message.
func Setup(r *gin.Engine, h *handlers.Handler, staticDir string) {
	api := r.Group("/api")
	{
		api.POST("/menu", h.CreateMenuItem)
		api.GET("/menu", h.ListMenuItems)
		api.GET("/menu/:id", h.GetMenuItem)
		api.PUT("/menu/:id", h.UpdateMenuItem)
		api.DELETE("/menu/:id", h.DeleteMenuItem)
		api.GET("/menu/categories/list", h.ListCategories)

		api.POST("/tables", h.CreateTable)
		api.GET("/tables", h.ListTables)
		api.GET("/tables/:id", h.GetTable)
		api.PUT("/tables/:id/status", h.UpdateTableStatus)
		api.DELETE("/tables/:id", h.DeleteTable)

		api.POST("/orders", h.CreateOrder)
		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id", h.GetOrder)
		api.PUT("/orders/:id/status", h.UpdateOrderStatus)

		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/:phone", h.GetCustomerByPhone)

		api.POST("/chefs", h.CreateChef)
		api.GET("/chefs", h.ListChefs)
		api.PUT("/chefs/:id", h.UpdateChef)
		api.DELETE("/chefs/:id", h.DeleteChef)

		api.GET("/analytics", h.GetAnalytics)
	}

	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		r.Static("/static", staticDir)
	}
	r.NoRoute(func(c *gin.Context) {
		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "API is running."})
	})
}
