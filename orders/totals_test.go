package orders

import "testing"

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		fee      float64
		tax      float64
		total    float64
	}{
		{"small order pays flat fee", 120.0, 49.0, 6.0, 175.0},
		{"just below threshold", 500.0, 49.0, 25.0, 574.0},
		{"above threshold ships free", 500.01, 0.0, 25.0, 525.01},
		{"large order", 1000.0, 0.0, 50.0, 1050.0},
		{"rounding on odd subtotal", 99.99, 49.0, 5.0, 153.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, tax, total := ComputeTotals(tt.subtotal)
			if fee != tt.fee {
				t.Errorf("delivery fee = %v, want %v", fee, tt.fee)
			}
			if tax != tt.tax {
				t.Errorf("tax = %v, want %v", tax, tt.tax)
			}
			if total != tt.total {
				t.Errorf("total = %v, want %v", total, tt.total)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		6.004999: 6.0,
		4.9995:   5.0,
		49.0:     49.0,
		0.015001: 0.02,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}
