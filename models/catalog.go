package models

import "time"

type Category struct {
	CategoryID  string    `json:"categoryid" bson:"categoryid"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string    `json:"icon,omitempty" bson:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

type Product struct {
	ProductID     string    `json:"productid" bson:"productid"`
	CategoryID    string    `json:"categoryid" bson:"categoryid"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Price         float64   `json:"price" bson:"price"`
	OriginalPrice float64   `json:"original_price,omitempty" bson:"original_price,omitempty"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Badge         string    `json:"badge,omitempty" bson:"badge,omitempty"` // Organic, Premium, Fresh
	Rating        float64   `json:"rating" bson:"rating"`
	ReviewsCount  int       `json:"reviews_count" bson:"reviews_count"`
	Stock         int       `json:"stock" bson:"stock"`
	IsActive      bool      `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
