package routes

import (
	"freshmart/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, rateLimiter)
	AddAddressRoutes(router, rateLimiter)
	AddProductRoutes(router, rateLimiter)
	AddOrderRoutes(router, rateLimiter)
}
