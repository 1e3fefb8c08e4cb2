package models

import "time"

// Address is a saved delivery address. At most one address per user
// carries IsDefault.
type Address struct {
	AddressID            string    `json:"addressid" bson:"addressid"`
	UserID               string    `json:"userid" bson:"userid"`
	Label                string    `json:"label" bson:"label"` // Home, Work, Other
	Street               string    `json:"street" bson:"street"`
	City                 string    `json:"city" bson:"city"`
	State                string    `json:"state" bson:"state"`
	PostalCode           string    `json:"postal_code" bson:"postal_code"`
	Country              string    `json:"country" bson:"country"`
	IsDefault            bool      `json:"is_default" bson:"is_default"`
	DeliveryInstructions string    `json:"delivery_instructions,omitempty" bson:"delivery_instructions,omitempty"`
	CreatedAt            time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at"`
}
