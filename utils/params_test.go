package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryOptions(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		skip  int
		limit int
	}{
		{"defaults", "/api/products", 0, 100},
		{"explicit paging", "/api/products?skip=20&limit=10", 20, 10},
		{"negative skip clamps to zero", "/api/products?skip=-5", 0, 100},
		{"zero limit falls back", "/api/products?limit=0", 0, 100},
		{"oversized limit falls back", "/api/products?limit=500", 0, 100},
		{"garbage values fall back", "/api/products?skip=abc&limit=xyz", 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			opts := ParseQueryOptions(r)
			if opts.Skip != tt.skip {
				t.Errorf("Skip = %d, want %d", opts.Skip, tt.skip)
			}
			if opts.Limit != tt.limit {
				t.Errorf("Limit = %d, want %d", opts.Limit, tt.limit)
			}
		})
	}

	r := httptest.NewRequest("GET", "/api/products?category=Dairy&search=milk", nil)
	opts := ParseQueryOptions(r)
	if opts.Category != "Dairy" || opts.Search != "milk" {
		t.Errorf("filters not parsed: %+v", opts)
	}
}
