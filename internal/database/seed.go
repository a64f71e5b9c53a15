package database

import (
	"log"

	"brasserie/internal/auth"
	"brasserie/internal/models"

	"github.com/jinzhu/gorm"
)

// Seed ensures essential data exists in the database. Each block only runs
// when its table is empty, so restarts never duplicate rows.
func Seed(db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		seedUsers(db)
	}

	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	if categoryCount == 0 {
		seedMenu(db)
	}
}

func seedUsers(db *gorm.DB) {
	defaults := []struct {
		name, email, password string
		role                  models.Role
	}{
		{"Admin User", "admin@example.com", "password123", models.RoleAdmin},
		{"Cashier One", "cashier1@example.com", "password123", models.RoleCashier},
		{"Kitchen One", "kitchen1@example.com", "password123", models.RoleKitchen},
		{"Customer One", "customer1@example.com", "password123", models.RoleCustomer},
	}

	for _, u := range defaults {
		hashed, err := auth.HashPassword(u.password)
		if err != nil {
			log.Printf("Failed to hash seed password for %s: %v", u.email, err)
			continue
		}
		user := models.User{
			Name:     u.name,
			Email:    u.email,
			Password: hashed,
			Role:     string(u.role),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Failed to create seed user %s: %v", u.email, err)
		}
	}
}

func seedMenu(db *gorm.DB) {
	mainDish := models.Category{Name: "Main Dish", Description: "Delicious main course dishes"}
	beverages := models.Category{Name: "Beverages", Description: "Fresh drinks and beverages"}
	desserts := models.Category{Name: "Desserts", Description: "Sweet treats to finish the meal"}

	for _, c := range []*models.Category{&mainDish, &beverages, &desserts} {
		if err := db.Create(c).Error; err != nil {
			log.Printf("Failed to create seed category %s: %v", c.Name, err)
			return
		}
	}

	defaultMenu := []models.Menu{
		{CategoryID: mainDish.ID, Name: "Grilled Salmon", Description: "Salmon fillet with lemon butter", Price: 28000, IsAvailable: true},
		{CategoryID: mainDish.ID, Name: "Fried Rice", Description: "House fried rice with chicken", Price: 18000, IsAvailable: true},
		{CategoryID: mainDish.ID, Name: "Beef Rendang", Description: "Slow-cooked beef in coconut spice", Price: 32000, IsAvailable: true},
		{CategoryID: beverages.ID, Name: "Iced Tea", Description: "Freshly brewed, served cold", Price: 5000, IsAvailable: true},
		{CategoryID: beverages.ID, Name: "Orange Juice", Description: "Freshly squeezed", Price: 12000, IsAvailable: true},
		{CategoryID: desserts.ID, Name: "Fried Banana", Description: "Crispy banana fritters with palm sugar", Price: 10000, IsAvailable: true},
	}

	for _, item := range defaultMenu {
		m := item
		if err := db.Create(&m).Error; err != nil {
			log.Printf("Failed to create seed menu item %s: %v", m.Name, err)
		}
	}
}
