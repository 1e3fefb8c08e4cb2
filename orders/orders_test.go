package orders

import "testing"

func orderItem(id string, qty int) struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
} {
	return struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{ProductID: id, Quantity: qty}
}

func validInput() OrderInput {
	in := OrderInput{
		DeliveryStreet:     "123 Main Street",
		DeliveryCity:       "Mumbai",
		DeliveryState:      "Maharashtra",
		DeliveryPostalCode: "400001",
		DeliveryCountry:    "India",
		PaymentMethod:      "cod",
	}
	in.Items = append(in.Items, orderItem("p0000000001", 2))
	return in
}

func TestValidateOrderInput(t *testing.T) {
	if msg := ValidateOrderInput(validInput()); msg != "" {
		t.Fatalf("valid input rejected: %q", msg)
	}

	empty := validInput()
	empty.Items = nil
	if msg := ValidateOrderInput(empty); msg == "" {
		t.Error("expected rejection for empty items")
	}

	noID := validInput()
	noID.Items[0] = orderItem("", 1)
	if msg := ValidateOrderInput(noID); msg == "" {
		t.Error("expected rejection for missing productId")
	}

	zeroQty := validInput()
	zeroQty.Items[0] = orderItem("p0000000001", 0)
	if msg := ValidateOrderInput(zeroQty); msg == "" {
		t.Error("expected rejection for zero quantity")
	}

	negQty := validInput()
	negQty.Items[0] = orderItem("p0000000001", -3)
	if msg := ValidateOrderInput(negQty); msg == "" {
		t.Error("expected rejection for negative quantity")
	}

	noCity := validInput()
	noCity.DeliveryCity = ""
	if msg := ValidateOrderInput(noCity); msg == "" {
		t.Error("expected rejection for missing delivery city")
	}
}
