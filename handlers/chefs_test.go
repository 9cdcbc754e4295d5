package handlers_test

import (
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-pos/models"
)

func TestChefCRUD(t *testing.T) {
	_, r := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/chefs", map[string]interface{}{"name": "Jalsa"})
	require.Equal(t, http.StatusOK, w.Code)
	var chef models.Chef
	decodeJSON(t, w, &chef)
	assert.Equal(t, "Jalsa", chef.Name)
	assert.Equal(t, 0, chef.CurrentOrders)

	// Update can overwrite the load counter when supplied.
	w = doRequest(t, r, http.MethodPut, "/api/chefs/"+chef.ID, map[string]interface{}{
		"name":          "Jalsa Rao",
		"currentOrders": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &chef)
	assert.Equal(t, "Jalsa Rao", chef.Name)
	assert.Equal(t, 3, chef.CurrentOrders)

	w = doRequest(t, r, http.MethodDelete, "/api/chefs/"+chef.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPut, "/api/chefs/"+chef.ID, map[string]interface{}{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeastLoadedAssignmentBalances(t *testing.T) {
	_, r := newTestServer(t)

	doRequest(t, r, http.MethodPost, "/api/chefs", map[string]interface{}{"name": "Anjan"})
	doRequest(t, r, http.MethodPost, "/api/chefs", map[string]interface{}{"name": "Madhu"})

	for i := 0; i < 3; i++ {
		order := placeOrder(t, r, orderPayload("takeaway", cartItem("menu_x", "Classic Burger", 1, 250)))
		assert.NotEmpty(t, order.AssignedChef)
	}

	w := doRequest(t, r, http.MethodGet, "/api/chefs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chefs []models.Chef
	decodeJSON(t, w, &chefs)
	require.Len(t, chefs, 2)

	loads := []int{chefs[0].CurrentOrders, chefs[1].CurrentOrders}
	sort.Ints(loads)
	// Ties break randomly, but the least-loaded rule forbids {0,3}.
	assert.Equal(t, []int{1, 2}, loads)
}

func TestOrderWithoutChefsProceedsUnassigned(t *testing.T) {
	_, r := newTestServer(t)

	order := placeOrder(t, r, orderPayload("takeaway", cartItem("menu_x", "Classic Burger", 1, 250)))
	assert.Empty(t, order.AssignedChef)
	assert.Equal(t, models.StatusProcessing, order.Status)
}
