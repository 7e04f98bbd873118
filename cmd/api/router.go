package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	paymentHandler "bookstore-storefront/internal/domains/payment/handler"
	"bookstore-storefront/internal/events"
	"bookstore-storefront/internal/shared/middleware"
	"bookstore-storefront/pkg/container"
)

const sseHeartbeat = 25 * time.Second

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ClientIP(),
		middleware.Session(c.Config.Session, c.Sessions),
	)

	router.GET("/health", healthCheckHandler(c))

	// Trang trả về từ cổng thanh toán (HTML) và SSE stream mà trang mở
	router.GET("/payment/return", c.PaymentHandler.ReturnPage)
	router.GET(paymentHandler.StreamPath, c.PaymentHandler.Stream)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/events", events.Stream(c.Bus, sseHeartbeat))

		setupAuthRoutes(v1, c)
		setupAddressRoutes(v1, c)
		setupCartRoutes(v1, c)
		setupCheckoutRoutes(v1, c)
		setupOrderRoutes(v1, c)
		setupPaymentRoutes(v1, c)
		setupBookCommunityRoutes(v1, c)
		setupFavoriteRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.GET("/me", c.AuthHandler.Me)
	}
}

// ========================================
// ADDRESS ROUTES
// ========================================
func setupAddressRoutes(v1 *gin.RouterGroup, c *container.Container) {
	addresses := v1.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware(c.Inspector))
	{
		addresses.GET("", c.AddressHandler.ListAddresses)
		addresses.POST("", c.AddressHandler.CreateAddress)
	}
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cart := v1.Group("/cart")
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.GET("/badge", c.CartHandler.GetBadge)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PUT("/items/:book_id", c.CartHandler.UpdateItem)
		cart.DELETE("/items/:book_id", c.CartHandler.RemoveItem)
		cart.POST("/clear", c.CartHandler.Clear)
		cart.PUT("/select-all", c.CartHandler.SelectAll)
		cart.POST("/buy-now", c.CartHandler.BuyNow)
	}
}

// ========================================
// CHECKOUT ROUTES
// ========================================
func setupCheckoutRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Guard tự xử lý chưa đăng nhập (trả về redirect login)
	v1.GET("/checkout/guard", c.CheckoutHandler.Guard)
}

// ========================================
// ORDER ROUTES
// ========================================
func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	orders := v1.Group("/orders")
	orders.Use(middleware.AuthMiddleware(c.Inspector))
	{
		orders.POST("", c.OrderHandler.CreateOrder)
		orders.GET("/me", c.OrderHandler.ListMyOrders)
		orders.GET("/:code", c.OrderHandler.GetOrder)
	}
}

// ========================================
// PAYMENT ROUTES
// ========================================
func setupPaymentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	payments := v1.Group("/payments")
	{
		payments.GET("/return", c.PaymentHandler.Reconcile)
		payments.GET("/:code/outcome", c.PaymentHandler.GetOutcome)
	}
}

// ========================================
// BOOK COMMUNITY ROUTES (reviews, comments)
// ========================================
func setupBookCommunityRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books/:book_id")
	{
		books.GET("/community", c.CommunityHandler.GetPage)
		books.GET("/reviews", c.ReviewHandler.ListBookReviews)
		books.GET("/reviews/summary", c.ReviewHandler.GetBookSummary)
		books.GET("/comments", c.CommentHandler.GetThread)
	}

	requireAuth := middleware.AuthMiddleware(c.Inspector)

	reviews := v1.Group("/reviews")
	reviews.Use(requireAuth)
	{
		reviews.POST("", c.ReviewHandler.CreateReview)
		reviews.PUT("/:id", c.ReviewHandler.UpdateReview)
		reviews.DELETE("/:id", c.ReviewHandler.DeleteReview)
	}

	comments := v1.Group("/comments")
	comments.Use(requireAuth)
	{
		comments.POST("", c.CommentHandler.Create)
		comments.DELETE("/:id", c.CommentHandler.Delete)
		comments.POST("/:id/like-toggle", c.CommentHandler.ToggleLike)
	}
}

// ========================================
// FAVORITE ROUTES
// ========================================
func setupFavoriteRoutes(v1 *gin.RouterGroup, c *container.Container) {
	favorites := v1.Group("/favorites")
	{
		favorites.GET("/ids", c.FavoriteHandler.GetIDs)
		favorites.POST("/:book_id/toggle", c.FavoriteHandler.Toggle)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.Inspector), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", c.DashboardHandler.GetOverview)
		admin.GET("/dashboard/export", c.DashboardHandler.Export)
		admin.GET("/warehouses/stock", c.WarehouseHandler.SearchStock)

		// Staff management
		admin.GET("/staff", c.StaffHandler.ListStaff)
		admin.PUT("/staff/:id/role", c.StaffHandler.UpdateRole)
		admin.PUT("/staff/:id/status", c.StaffHandler.UpdateStatus)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check session store (Redis hoặc memory)
		storeStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.Cache.Ping(ctx); err != nil {
			storeStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		queueStatus := "disabled"
		if appCtx.Enqueuer != nil {
			queueStatus = "ok"
		}

		health["services"] = gin.H{
			"session_store": storeStatus,
			"settle_queue":  queueStatus,
		}

		statusCode := http.StatusOK
		if health["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, health)
	}
}
