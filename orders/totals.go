package orders

import "math"

// Pricing rules: delivery is free above the subtotal threshold, otherwise a
// flat fee; tax is a flat percentage of the subtotal rounded to currency
// precision.
const (
	FreeDeliveryThreshold = 500.0
	FlatDeliveryFee       = 49.0
	TaxRate               = 0.05
)

// Round2 rounds to two decimal places (currency precision).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals derives the fee breakdown from an order subtotal.
func ComputeTotals(subtotal float64) (deliveryFee, tax, total float64) {
	deliveryFee = FlatDeliveryFee
	if subtotal > FreeDeliveryThreshold {
		deliveryFee = 0
	}
	tax = Round2(subtotal * TaxRate)
	total = Round2(subtotal + deliveryFee + tax)
	return deliveryFee, tax, total
}
