package addresses

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildUpdateDoc(t *testing.T) {
	now := time.Now()

	t.Run("empty update only bumps timestamp", func(t *testing.T) {
		set := BuildUpdateDoc(AddressUpdate{}, now)
		if len(set) != 1 {
			t.Fatalf("expected 1 key, got %d: %v", len(set), set)
		}
		if set["updated_at"] != now {
			t.Error("updated_at not set")
		}
	})

	t.Run("set fields are copied, nil fields skipped", func(t *testing.T) {
		set := BuildUpdateDoc(AddressUpdate{
			Label:  strPtr("Office"),
			Street: strPtr("42 Work Lane"),
		}, now)
		if set["label"] != "Office" || set["street"] != "42 Work Lane" {
			t.Errorf("unexpected doc: %v", set)
		}
		if _, ok := set["city"]; ok {
			t.Error("city should not appear for nil input")
		}
		if _, ok := set["is_default"]; ok {
			t.Error("is_default should not appear for nil input")
		}
	})

	t.Run("explicit false survives", func(t *testing.T) {
		set := BuildUpdateDoc(AddressUpdate{IsDefault: boolPtr(false)}, now)
		v, ok := set["is_default"]
		if !ok {
			t.Fatal("is_default missing")
		}
		if v != false {
			t.Errorf("is_default = %v, want false", v)
		}
	})

	t.Run("empty string clears a field", func(t *testing.T) {
		set := BuildUpdateDoc(AddressUpdate{DeliveryInstructions: strPtr("")}, now)
		if v, ok := set["delivery_instructions"]; !ok || v != "" {
			t.Errorf("delivery_instructions = %v (present=%v), want empty string", v, ok)
		}
	})
}
