package models

import "time"

// Order statuses. Cancellation is only allowed from OrderPending.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// OrderItem snapshots the product name and unit price at order time;
// later product edits do not touch placed orders.
type OrderItem struct {
	ProductID    string  `json:"productid" bson:"productid"`
	ProductName  string  `json:"product_name" bson:"product_name"`
	ProductPrice float64 `json:"product_price" bson:"product_price"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	Subtotal     float64 `json:"subtotal" bson:"subtotal"`
}

type Order struct {
	OrderID string `json:"orderid" bson:"orderid"`
	UserID  string `json:"userid" bson:"userid"`

	// Delivery address snapshot, copied from the request at order time.
	DeliveryStreet       string `json:"delivery_street" bson:"delivery_street"`
	DeliveryCity         string `json:"delivery_city" bson:"delivery_city"`
	DeliveryState        string `json:"delivery_state" bson:"delivery_state"`
	DeliveryPostalCode   string `json:"delivery_postal_code" bson:"delivery_postal_code"`
	DeliveryCountry      string `json:"delivery_country" bson:"delivery_country"`
	DeliveryInstructions string `json:"delivery_instructions,omitempty" bson:"delivery_instructions,omitempty"`

	Items []OrderItem `json:"items" bson:"items"`

	Subtotal    float64 `json:"subtotal" bson:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee" bson:"delivery_fee"`
	Tax         float64 `json:"tax" bson:"tax"`
	Total       float64 `json:"total" bson:"total"`

	Status        string `json:"status" bson:"status"`
	PaymentMethod string `json:"payment_method,omitempty" bson:"payment_method,omitempty"` // card, cash, upi
	PaymentStatus string `json:"payment_status" bson:"payment_status"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
