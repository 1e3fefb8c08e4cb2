package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestLimitBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	fire := func(addr string) int {
		r := httptest.NewRequest("GET", "/api/products", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler(w, r, nil)
		return w.Code
	}

	// burst of 10 passes, the next request is rejected
	for i := 0; i < 10; i++ {
		if code := fire("192.0.2.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d blocked early with %d", i+1, code)
		}
	}
	if code := fire("192.0.2.1:5000"); code != http.StatusTooManyRequests {
		t.Fatalf("request past burst returned %d, want 429", code)
	}

	// a different client has its own bucket
	if code := fire("198.51.100.7:5000"); code != http.StatusOK {
		t.Fatalf("fresh client blocked with %d", code)
	}
}
