package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-pos/models"
)

func TestAnalyticsRollup(t *testing.T) {
	_, r := newTestServer(t)

	doRequest(t, r, http.MethodPost, "/api/chefs", map[string]interface{}{"name": "Harshavardhan"})

	item := createMenuItem(t, r, "Cheesecake", 160, 4)
	table := createTable(t, r, 4)

	dinein := orderPayload("dinein", cartItem(item.ID, item.Name, 1, item.Price))
	dinein["tableNumber"] = table.Number
	placeOrder(t, r, dinein) // subtotal 160, grand 168

	takeaway := placeOrder(t, r, orderPayload("takeaway", cartItem("menu_x", "Classic Burger", 2, 100))) // grand 260
	doRequest(t, r, http.MethodPut, "/api/orders/"+takeaway.ID+"/status?status=completed", nil)

	w := doRequest(t, r, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var analytics models.Analytics
	decodeJSON(t, w, &analytics)

	assert.Equal(t, int64(1), analytics.TotalChefs)
	assert.Equal(t, 2, analytics.TotalOrders)
	assert.Equal(t, int64(1), analytics.TotalClients)
	assert.InDelta(t, 428.0, analytics.TotalRevenue, 1e-9)
	assert.Equal(t, 1, analytics.OrdersByType["dinein"])
	assert.Equal(t, 1, analytics.OrdersByType["takeaway"])
	assert.Equal(t, 1, analytics.OrdersByType["served"])

	// Both orders were placed today, so revenue groups under a single
	// weekday bucket.
	require.Len(t, analytics.RevenueByDay, 1)
	assert.Equal(t, time.Now().UTC().Format("Mon"), analytics.RevenueByDay[0].Day)
	assert.InDelta(t, 428.0, analytics.RevenueByDay[0].Revenue, 1e-9)

	require.Len(t, analytics.ChefOrderDistribution, 1)
	assert.Equal(t, "Harshavardhan", analytics.ChefOrderDistribution[0].Name)
	assert.Equal(t, 2, analytics.ChefOrderDistribution[0].Orders)
}

func TestAnalyticsEmptyStore(t *testing.T) {
	_, r := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var analytics models.Analytics
	decodeJSON(t, w, &analytics)

	assert.Zero(t, analytics.TotalChefs)
	assert.Zero(t, analytics.TotalOrders)
	assert.Zero(t, analytics.TotalRevenue)
	assert.Empty(t, analytics.RevenueByDay)
	assert.Empty(t, analytics.ChefOrderDistribution)
}
