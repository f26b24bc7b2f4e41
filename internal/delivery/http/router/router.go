// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"skyelectro/internal/delivery/http/middleware"
	"skyelectro/internal/delivery/http/router/handler"
	"skyelectro/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	CatalogHandler  *handler.CatalogHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler
	BulkHandler     *handler.BulkHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	reviewHandler   *handler.ReviewHandler
	bulkHandler     *handler.BulkHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:     params.CartHandler,
		wishlistHandler: params.WishlistHandler,
		catalogHandler:  params.CatalogHandler,
		orderHandler:    params.OrderHandler,
		reviewHandler:   params.ReviewHandler,
		bulkHandler:     params.BulkHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authed := r.authMiddleware.Authenticate
	admin := r.authMiddleware.RequireRole(constants.RoleAdmin)

	// Public catalog routes
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
	}
	api.GET("/categories", r.catalogHandler.ListCategories)

	// Cart routes, always authenticated
	cartGroup := api.Group("/cart")
	cartGroup.Use(authed)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddToCart)
		cartGroup.PUT("/item/:productId", r.cartHandler.UpdateCartItem)
		cartGroup.DELETE("/item/:productId", r.cartHandler.RemoveFromCart)
		cartGroup.DELETE("/clear", r.cartHandler.ClearCart)
	}

	// Wishlist routes, always authenticated
	wishlistGroup := api.Group("/wishlist")
	wishlistGroup.Use(authed)
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.POST("/add", r.wishlistHandler.AddToWishlist)
		wishlistGroup.DELETE("/item/:productId", r.wishlistHandler.RemoveFromWishlist)
		wishlistGroup.DELETE("/clear", r.wishlistHandler.ClearWishlist)
	}

	// Review routes; listing is public, writing requires login,
	// moderation requires the admin role
	commentGroup := api.Group("/comments")
	{
		commentGroup.GET("/product/:productId", r.reviewHandler.ListProductReviews)
		commentGroup.POST("", r.reviewHandler.CreateReview, authed)
		commentGroup.POST("/:id/replies", r.reviewHandler.AddReply, authed)
		commentGroup.POST("/:id/vote", r.reviewHandler.Vote, authed)
		commentGroup.PUT("/:id/status", r.reviewHandler.SetStatus, authed, admin)
	}

	// Order routes; customers read their own and may cancel, every
	// other lifecycle action is administrative
	orderGroup := api.Group("/orders")
	orderGroup.Use(authed)
	{
		orderGroup.GET("/my", r.orderHandler.ListMyOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PUT("/:id/cancel", r.orderHandler.CancelOrder)

		orderGroup.GET("", r.orderHandler.ListOrders, admin)
		orderGroup.PUT("/:id/status", r.orderHandler.AdvanceStatus, admin)
		orderGroup.PUT("/:id/return", r.orderHandler.ReturnOrder, admin)
		orderGroup.GET("/:id/qr", r.orderHandler.TrackingQR, admin)
	}

	// Bulk product routes, admin only apart from the public template
	bulkGroup := api.Group("/bulk-upload")
	{
		bulkGroup.GET("/template", r.bulkHandler.Template)
		bulkGroup.POST("/products", r.bulkHandler.ImportProducts, authed, admin)
		bulkGroup.PUT("/products", r.bulkHandler.BulkUpdate, authed, admin)
		bulkGroup.DELETE("/products", r.bulkHandler.BulkSoftDelete, authed, admin)
	}
}
