package database

import (
	"fmt"

	"gorm.io/gorm"

	"restaurant-pos/models"
)

// Seed wipes the store and loads the initial chefs, menu catalog, and 30
// dining tables with 2/4/6/8 chairs cycling. Setup tooling only; the server
// never calls this.
func Seed(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.OrderItem{}, &models.Order{}, &models.MenuItem{},
		&models.Table{}, &models.Customer{}, &models.Chef{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clearing existing data: %w", err)
		}
	}

	chefs := []models.Chef{
		{ID: "chef_1", Name: "Harshavardhan"},
		{ID: "chef_2", Name: "Jalsa"},
		{ID: "chef_3", Name: "Anjan"},
		{ID: "chef_4", Name: "Madhu"},
	}
	if err := db.Create(&chefs).Error; err != nil {
		return fmt.Errorf("seeding chefs: %w", err)
	}

	if err := db.Create(&menuCatalog).Error; err != nil {
		return fmt.Errorf("seeding menu: %w", err)
	}

	chairCounts := []int{2, 4, 6, 8}
	tables := make([]models.Table, 0, 30)
	for i := 1; i <= 30; i++ {
		tables = append(tables, models.Table{
			ID:         fmt.Sprintf("table_%d", i),
			Number:     i,
			ChairCount: chairCounts[i%4],
			Name:       fmt.Sprintf("Table %d", i),
			Status:     models.TableAvailable,
		})
	}
	if err := db.Create(&tables).Error; err != nil {
		return fmt.Errorf("seeding tables: %w", err)
	}
	return nil
}

var menuCatalog = []models.MenuItem{
	{ID: "menu_burger_1", Name: "Classic Burger", Description: "Juicy beef patty with lettuce, tomato, and special sauce", Price: 250, Category: "Burger", Stock: 50, AveragePreparationTime: 10, ImageURL: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400"},
	{ID: "menu_burger_2", Name: "Cheese Burger", Description: "Classic burger with melted cheese", Price: 280, Category: "Burger", Stock: 50, AveragePreparationTime: 10, ImageURL: "https://images.unsplash.com/photo-1586190848861-99aa4a171e90?w=400"},
	{ID: "menu_burger_3", Name: "Double Cheeseburger", Description: "Two beef patties with double cheese", Price: 350, Category: "Burger", Stock: 40, AveragePreparationTime: 12, ImageURL: "https://images.unsplash.com/photo-1550547660-d9450f859349?w=400"},
	{ID: "menu_burger_4", Name: "Veggie Burger", Description: "Delicious vegetarian patty with fresh veggies", Price: 220, Category: "Burger", Stock: 30, AveragePreparationTime: 8, ImageURL: "https://images.unsplash.com/photo-1585238342024-78d387f4a707?w=400"},
	{ID: "menu_pizza_1", Name: "Marinara", Description: "Traditional tomato sauce with garlic and oregano", Price: 300, Category: "Pizza", Stock: 30, AveragePreparationTime: 15, ImageURL: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400"},
	{ID: "menu_pizza_2", Name: "Pepperoni", Description: "Classic pepperoni with mozzarella cheese", Price: 350, Category: "Pizza", Stock: 40, AveragePreparationTime: 15, ImageURL: "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=400"},
	{ID: "menu_pizza_3", Name: "Margherita", Description: "Fresh mozzarella, tomatoes, and basil", Price: 290, Category: "Pizza", Stock: 35, AveragePreparationTime: 14, ImageURL: "https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?w=400"},
	{ID: "menu_pizza_4", Name: "BBQ Chicken", Description: "BBQ sauce, grilled chicken, and red onions", Price: 360, Category: "Pizza", Stock: 32, AveragePreparationTime: 17, ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400"},
	{ID: "menu_drink_1", Name: "Coca-Cola", Description: "Classic Coca-Cola", Price: 60, Category: "Drink", Stock: 100, AveragePreparationTime: 1, ImageURL: "https://images.unsplash.com/photo-1554866585-cd94860890b7?w=400"},
	{ID: "menu_drink_2", Name: "Fresh Orange Juice", Description: "Freshly squeezed orange juice", Price: 80, Category: "Drink", Stock: 50, AveragePreparationTime: 3, ImageURL: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400"},
	{ID: "menu_drink_3", Name: "Lemonade", Description: "Refreshing homemade lemonade", Price: 70, Category: "Drink", Stock: 50, AveragePreparationTime: 2, ImageURL: "https://images.unsplash.com/photo-1523677011781-c91d1bbe2f9f?w=400"},
	{ID: "menu_drink_4", Name: "Coffee", Description: "Hot brewed coffee", Price: 50, Category: "Drink", Stock: 80, AveragePreparationTime: 3, ImageURL: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400"},
	{ID: "menu_fries_1", Name: "Classic French Fries", Description: "Crispy golden fries", Price: 120, Category: "French Fries", Stock: 60, AveragePreparationTime: 6, ImageURL: "https://images.unsplash.com/photo-1585108727903-f9a5c5f1f39d?w=400"},
	{ID: "menu_fries_2", Name: "Cheese Fries", Description: "Fries topped with melted cheese", Price: 150, Category: "French Fries", Stock: 50, AveragePreparationTime: 7, ImageURL: "https://images.unsplash.com/photo-1630384060421-cb20d0e0649d?w=400"},
	{ID: "menu_fries_3", Name: "Loaded Fries", Description: "Fries with cheese, bacon, and sour cream", Price: 180, Category: "French Fries", Stock: 40, AveragePreparationTime: 8, ImageURL: "https://images.unsplash.com/photo-1639024471283-03518883512d?w=400"},
	{ID: "menu_fries_4", Name: "Peri-Peri Fries", Description: "Spicy peri-peri seasoned fries", Price: 140, Category: "French Fries", Stock: 45, AveragePreparationTime: 7, ImageURL: "https://images.unsplash.com/photo-1578328819058-b69f3a3b0f6b?w=400"},
	{ID: "menu_veggie_1", Name: "Garden Salad", Description: "Fresh mixed greens with vegetables", Price: 150, Category: "Veggies", Stock: 40, AveragePreparationTime: 5, ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400"},
	{ID: "menu_veggie_2", Name: "Caesar Salad", Description: "Romaine lettuce with Caesar dressing", Price: 180, Category: "Veggies", Stock: 35, AveragePreparationTime: 6, ImageURL: "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400"},
	{ID: "menu_veggie_3", Name: "Grilled Vegetables", Description: "Assorted grilled vegetables", Price: 200, Category: "Veggies", Stock: 30, AveragePreparationTime: 10, ImageURL: "https://images.unsplash.com/photo-1592417817098-8fd3d9eb14a5?w=400"},
	{ID: "menu_veggie_4", Name: "Greek Salad", Description: "Feta cheese, olives, and cucumber", Price: 190, Category: "Veggies", Stock: 32, AveragePreparationTime: 6, ImageURL: "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=400"},
	{ID: "menu_dessert_1", Name: "Apple Pie", Description: "Classic apple pie with cinnamon", Price: 150, Category: "Dessert", Stock: 25, AveragePreparationTime: 5, ImageURL: "https://images.unsplash.com/photo-1535920527002-b35e96722eb9?w=400"},
	{ID: "menu_dessert_2", Name: "Ice Cream", Description: "Vanilla ice cream with chocolate sauce", Price: 120, Category: "Dessert", Stock: 40, AveragePreparationTime: 3, ImageURL: "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400"},
	{ID: "menu_dessert_3", Name: "Chocolate Brownie", Description: "Warm chocolate brownie with nuts", Price: 140, Category: "Dessert", Stock: 30, AveragePreparationTime: 6, ImageURL: "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=400"},
	{ID: "menu_dessert_4", Name: "Cheesecake", Description: "New York style cheesecake", Price: 160, Category: "Dessert", Stock: 20, AveragePreparationTime: 4, ImageURL: "https://images.unsplash.com/photo-1533134242820-3a7e73d7b0ba?w=400"},
}
