package utils

import "testing"

func TestGenerateRandomString(t *testing.T) {
	got := GenerateRandomString(10)
	if len(got) != 10 {
		t.Errorf("length = %d, want 10", len(got))
	}
	if GenerateRandomString(0) != "" {
		t.Error("zero length should be empty")
	}
}

func TestGenerateRandomDigitString(t *testing.T) {
	got := GenerateRandomDigitString(10)
	if len(got) != 10 {
		t.Fatalf("length = %d, want 10", len(got))
	}
	for _, c := range got {
		if c < '0' || c > '9' {
			t.Errorf("non-digit %q in %q", c, got)
		}
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	if !ContainsIgnoreCase("Fresh Milk", "milk") {
		t.Error("expected match regardless of case")
	}
	if ContainsIgnoreCase("Fresh Milk", "bread") {
		t.Error("unexpected match")
	}
}
