package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"freshmart/models"
	"freshmart/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Seed loads the sample storefront: one admin, one customer with a default
// address, categories and products. A no-op when users already exist.
func Seed(ctx context.Context) error {
	err := UserCollection.FindOne(ctx, bson.M{}).Err()
	if err == nil {
		log.Println("Database already has data; skipping seed")
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	now := time.Now()

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	customerHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	customerID := "u" + utils.GenerateRandomString(10)
	users := []interface{}{
		models.User{
			UserID:       "u" + utils.GenerateRandomString(10),
			Username:     "admin",
			Email:        "admin@freshmart.com",
			PasswordHash: string(adminHash),
			FirstName:    "Admin",
			LastName:     "User",
			Phone:        "9999999999",
			Role:         "admin",
			IsActive:     true,
			IsVerified:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		models.User{
			UserID:       customerID,
			Username:     "john_doe",
			Email:        "john@example.com",
			PasswordHash: string(customerHash),
			FirstName:    "John",
			LastName:     "Doe",
			Phone:        "9876543210",
			Role:         "customer",
			IsActive:     true,
			IsVerified:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	if _, err := UserCollection.InsertMany(ctx, users); err != nil {
		return err
	}

	address := models.Address{
		AddressID:            "a" + utils.GenerateRandomString(10),
		UserID:               customerID,
		Label:                "Home",
		Street:               "123 Main Street, Apartment 4B",
		City:                 "Mumbai",
		State:                "Maharashtra",
		PostalCode:           "400001",
		Country:              "India",
		IsDefault:            true,
		DeliveryInstructions: "Ring the doorbell twice",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if _, err := AddressCollection.InsertOne(ctx, address); err != nil {
		return err
	}

	type cat struct{ name, description, icon string }
	cats := []cat{
		{"Fruits", "Fresh fruits", "🍎"},
		{"Vegetables", "Fresh vegetables", "🥬"},
		{"Dairy", "Milk and dairy products", "🥛"},
		{"Meat", "Fresh meat", "🥩"},
		{"Seafood", "Fresh seafood", "🐟"},
		{"Bakery", "Bread and bakery items", "🍞"},
		{"Grains", "Rice, wheat, and grains", "🌾"},
		{"Beverages", "Drinks and beverages", "🥤"},
	}

	catIDs := make(map[string]string, len(cats))
	catDocs := make([]interface{}, 0, len(cats))
	for _, c := range cats {
		id := "c" + utils.GenerateRandomString(10)
		catIDs[c.name] = id
		catDocs = append(catDocs, models.Category{
			CategoryID:  id,
			Name:        c.name,
			Description: c.description,
			Icon:        c.icon,
			CreatedAt:   now,
		})
	}
	if _, err := CategoryCollection.InsertMany(ctx, catDocs); err != nil {
		return err
	}

	type prod struct {
		name, description, badge, category string
		price, originalPrice, rating       float64
		reviews, stock                     int
	}
	prods := []prod{
		{"Organic Apples", "Fresh organic apples from local farms", "Organic", "Fruits", 120, 150, 4.5, 45, 100},
		{"Fresh Bananas", "Ripe yellow bananas", "Fresh", "Fruits", 40, 50, 4.3, 32, 150},
		{"Sweet Oranges", "Juicy sweet oranges", "Premium", "Fruits", 80, 100, 4.6, 28, 80},
		{"Fresh Tomatoes", "Farm fresh tomatoes", "Fresh", "Vegetables", 30, 40, 4.4, 56, 200},
		{"Organic Spinach", "Organic green spinach", "Organic", "Vegetables", 25, 35, 4.7, 41, 120},
		{"Fresh Carrots", "Crunchy fresh carrots", "Fresh", "Vegetables", 35, 45, 4.5, 38, 150},
		{"Fresh Milk", "Full cream fresh milk 1L", "Fresh", "Dairy", 60, 70, 4.8, 89, 100},
		{"Greek Yogurt", "Creamy Greek yogurt", "Premium", "Dairy", 80, 100, 4.6, 52, 60},
		{"Cheddar Cheese", "Aged cheddar cheese", "Premium", "Dairy", 250, 300, 4.7, 34, 40},
		{"Chicken Breast", "Fresh chicken breast 500g", "Fresh", "Meat", 180, 220, 4.5, 67, 50},
		{"Lamb Chops", "Premium lamb chops", "Premium", "Meat", 450, 550, 4.8, 23, 30},
		{"Fresh Salmon", "Atlantic salmon fillet", "Premium", "Seafood", 600, 750, 4.9, 45, 25},
		{"Prawns", "Large fresh prawns", "Fresh", "Seafood", 400, 500, 4.7, 38, 35},
		{"Whole Wheat Bread", "Fresh whole wheat bread", "Fresh", "Bakery", 40, 50, 4.4, 92, 80},
		{"Croissants", "Butter croissants pack of 6", "Artisan", "Bakery", 120, 150, 4.8, 56, 40},
		{"Basmati Rice", "Premium basmati rice 5kg", "Premium", "Grains", 350, 400, 4.6, 78, 100},
		{"Quinoa", "Organic quinoa 1kg", "Organic", "Grains", 280, 350, 4.7, 34, 50},
		{"Orange Juice", "Fresh orange juice 1L", "Fresh", "Beverages", 120, 150, 4.5, 67, 70},
		{"Green Tea", "Organic green tea 100g", "Organic", "Beverages", 200, 250, 4.8, 89, 90},
	}

	prodDocs := make([]interface{}, 0, len(prods))
	for _, p := range prods {
		prodDocs = append(prodDocs, models.Product{
			ProductID:     "p" + utils.GenerateRandomString(10),
			CategoryID:    catIDs[p.category],
			Name:          p.name,
			Description:   p.description,
			Price:         p.price,
			OriginalPrice: p.originalPrice,
			Badge:         p.badge,
			Rating:        p.rating,
			ReviewsCount:  p.reviews,
			Stock:         p.stock,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	if _, err := ProductCollection.InsertMany(ctx, prodDocs); err != nil {
		return err
	}

	fmt.Println("Seeded sample data (admin/admin123, john_doe/password123)")
	return nil
}
