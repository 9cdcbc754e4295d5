package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-pos/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))

	var chefs []models.Chef
	db.Find(&chefs)
	assert.Len(t, chefs, 4)
	for _, chef := range chefs {
		assert.Equal(t, 0, chef.CurrentOrders)
	}

	var items int64
	db.Model(&models.MenuItem{}).Count(&items)
	assert.EqualValues(t, len(menuCatalog), items)

	var tables []models.Table
	db.Order("number").Find(&tables)
	require.Len(t, tables, 30)
	chairCounts := []int{2, 4, 6, 8}
	for i, table := range tables {
		assert.Equal(t, i+1, table.Number)
		assert.Equal(t, chairCounts[(i+1)%4], table.ChairCount)
		assert.Equal(t, models.TableAvailable, table.Status)
	}
}

func TestSeedWipesExistingData(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Customer{ID: "customer_old", Phone: "123", OrdersCount: 7}).Error)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db)) // reseeding must not duplicate

	var customers, tables int64
	db.Model(&models.Customer{}).Count(&customers)
	db.Model(&models.Table{}).Count(&tables)
	assert.EqualValues(t, 0, customers)
	assert.EqualValues(t, 30, tables)
}
