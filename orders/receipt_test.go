package orders

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"freshmart/globals"
	"freshmart/models"
)

func TestReceiptQRPayload(t *testing.T) {
	issued := time.Unix(1700000000, 0)
	payload := ReceiptQRPayload("ORD1234567890", "u0000000001", issued)

	parts := strings.Split(payload, "|")
	if len(parts) != 4 {
		t.Fatalf("payload has %d segments, want 4: %q", len(parts), payload)
	}
	if parts[0] != "ORD1234567890" || parts[1] != "u0000000001" || parts[2] != "1700000000" {
		t.Errorf("unexpected payload fields: %q", payload)
	}

	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(strings.Join(parts[:3], "|")))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))
	if parts[3] != want {
		t.Errorf("signature mismatch: got %q, want %q", parts[3], want)
	}

	// same inputs must sign identically
	if again := ReceiptQRPayload("ORD1234567890", "u0000000001", issued); again != payload {
		t.Error("payload is not deterministic for fixed inputs")
	}
}

func TestRenderReceiptPDF(t *testing.T) {
	now := time.Now()
	order := models.Order{
		OrderID:            "ORD1234567890",
		UserID:             "u0000000001",
		DeliveryStreet:     "123 Main Street",
		DeliveryCity:       "Mumbai",
		DeliveryState:      "Maharashtra",
		DeliveryPostalCode: "400001",
		DeliveryCountry:    "India",
		Items: []models.OrderItem{
			{ProductID: "p0000000001", ProductName: "Fresh Milk", ProductPrice: 60, Quantity: 2, Subtotal: 120},
		},
		Subtotal:    120,
		DeliveryFee: 49,
		Tax:         6,
		Total:       175,
		Status:      models.OrderPending,
		CreatedAt:   now,
	}
	user := models.User{FirstName: "John", LastName: "Doe"}

	buf, err := RenderReceiptPDF(order, user, nil)
	if err != nil {
		t.Fatalf("RenderReceiptPDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty PDF output")
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Errorf("output does not look like a PDF, starts with %q", buf.String()[:8])
	}
}
