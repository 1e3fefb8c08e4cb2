package routes

import (
	"freshmart/addresses"
	"freshmart/auth"
	"freshmart/middleware"
	"freshmart/orders"
	"freshmart/products"
	"freshmart/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.GET("/api/auth/me", middleware.Authenticate(auth.Me))
}

func AddAddressRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/addresses", middleware.Authenticate(addresses.GetAddresses))
	router.POST("/api/addresses", rl.Limit(middleware.Authenticate(addresses.CreateAddress)))
	router.GET("/api/addresses/:id", middleware.Authenticate(addresses.GetAddress))
	router.PUT("/api/addresses/:id", rl.Limit(middleware.Authenticate(addresses.UpdateAddress)))
	router.DELETE("/api/addresses/:id", rl.Limit(middleware.Authenticate(addresses.DeleteAddress)))
	router.POST("/api/addresses/:id/set-default", rl.Limit(middleware.Authenticate(addresses.SetDefaultAddress)))
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", rl.Limit(products.GetProducts))
	router.GET("/api/products/:id", rl.Limit(products.GetProduct))
	router.GET("/api/categories", rl.Limit(products.GetCategories))
	router.GET("/api/categories/:name/products", rl.Limit(products.GetProductsByCategory))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(middleware.Authenticate(orders.PlaceOrder)))
	router.GET("/api/orders", middleware.Authenticate(orders.GetOrders))
	router.GET("/api/orders/:id", middleware.Authenticate(orders.GetOrder))
	router.POST("/api/orders/:id/cancel", rl.Limit(middleware.Authenticate(orders.CancelOrder)))
	router.GET("/api/orders/:id/receipt", rl.Limit(middleware.Authenticate(orders.DownloadReceipt)))
}
