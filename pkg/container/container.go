package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"bookstore-storefront/internal/config"
	"bookstore-storefront/internal/events"
	infraCache "bookstore-storefront/internal/infrastructure/cache"
	"bookstore-storefront/internal/infrastructure/queue"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/cache"
	"bookstore-storefront/pkg/jwt"

	addressHandler "bookstore-storefront/internal/domains/address/handler"
	addressRepo "bookstore-storefront/internal/domains/address/repository"
	addressService "bookstore-storefront/internal/domains/address/service"
	authHandler "bookstore-storefront/internal/domains/auth/handler"
	authRepo "bookstore-storefront/internal/domains/auth/repository"
	authService "bookstore-storefront/internal/domains/auth/service"
	cartHandler "bookstore-storefront/internal/domains/cart/handler"
	cartRepo "bookstore-storefront/internal/domains/cart/repository"
	cartService "bookstore-storefront/internal/domains/cart/service"
	checkoutHandler "bookstore-storefront/internal/domains/checkout/handler"
	checkoutService "bookstore-storefront/internal/domains/checkout/service"
	commentHandler "bookstore-storefront/internal/domains/comment/handler"
	commentRepo "bookstore-storefront/internal/domains/comment/repository"
	commentService "bookstore-storefront/internal/domains/comment/service"
	communityHandler "bookstore-storefront/internal/domains/community/handler"
	communityService "bookstore-storefront/internal/domains/community/service"
	dashboardHandler "bookstore-storefront/internal/domains/dashboard/handler"
	dashboardRepo "bookstore-storefront/internal/domains/dashboard/repository"
	dashboardService "bookstore-storefront/internal/domains/dashboard/service"
	favoriteHandler "bookstore-storefront/internal/domains/favorite/handler"
	favoriteRepo "bookstore-storefront/internal/domains/favorite/repository"
	favoriteService "bookstore-storefront/internal/domains/favorite/service"
	orderHandler "bookstore-storefront/internal/domains/order/handler"
	orderRepo "bookstore-storefront/internal/domains/order/repository"
	orderService "bookstore-storefront/internal/domains/order/service"
	paymentHandler "bookstore-storefront/internal/domains/payment/handler"
	paymentRepo "bookstore-storefront/internal/domains/payment/repository"
	paymentService "bookstore-storefront/internal/domains/payment/service"
	reviewHandler "bookstore-storefront/internal/domains/review/handler"
	reviewRepo "bookstore-storefront/internal/domains/review/repository"
	reviewService "bookstore-storefront/internal/domains/review/service"
	staffHandler "bookstore-storefront/internal/domains/staff/handler"
	staffRepo "bookstore-storefront/internal/domains/staff/repository"
	staffService "bookstore-storefront/internal/domains/staff/service"
	warehouseHandler "bookstore-storefront/internal/domains/warehouse/handler"
	warehouseRepo "bookstore-storefront/internal/domains/warehouse/repository"
	warehouseService "bookstore-storefront/internal/domains/warehouse/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của storefront
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config    *config.Config
	Cache     cache.Cache       // Redis hoặc in-memory
	Backend   *apiclient.Client // REST client tới bookstore backend
	Sessions  *session.Opener
	Bus       *events.Bus
	Inspector *jwt.Inspector
	Asynq     *asynq.Client // nil khi Redis tắt
	Enqueuer  *queue.Enqueuer
	Relay     *events.RedisRelay // payment:settled giữa api và worker

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthService      authService.ServiceInterface
	AddressService   addressService.ServiceInterface
	CartService      cartService.ServiceInterface
	CheckoutGuard    checkoutService.GuardInterface
	OrderService     orderService.OrderService
	Reconciler       paymentService.ReconcilerInterface
	ReviewService    reviewService.ServiceInterface
	CommentService   commentService.ServiceInterface
	CommunityService communityService.ServiceInterface
	FavoriteService  favoriteService.ServiceInterface
	WarehouseService warehouseService.Service
	DashboardService dashboardService.ServiceInterface
	StaffService     staffService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	AuthHandler      *authHandler.AuthHandler
	AddressHandler   *addressHandler.AddressHandler
	CartHandler      *cartHandler.Handler
	CheckoutHandler  *checkoutHandler.CheckoutHandler
	OrderHandler     *orderHandler.OrderHandler
	PaymentHandler   *paymentHandler.PaymentHandler
	ReviewHandler    *reviewHandler.ReviewHandler
	CommentHandler   *commentHandler.CommentHandler
	CommunityHandler *communityHandler.CommunityHandler
	FavoriteHandler  *favoriteHandler.FavoriteHandler
	WarehouseHandler *warehouseHandler.Handler
	DashboardHandler *dashboardHandler.DashboardHandler
	StaffHandler     *staffHandler.StaffHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
//  1. Config
//  2. Infrastructure (session store, backend client, bus, queue)
//  3. Services
//  4. Handlers
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE INFRASTRUCTURE
	// ========================================
	c.initCache()

	c.Backend = apiclient.New(cfg.Backend.BaseURL,
		apiclient.WithTimeout(cfg.Backend.Timeout),
		apiclient.WithRateLimit(cfg.Backend.RatePerSec, cfg.Backend.RateBurst),
		apiclient.WithUserAgent(cfg.App.Name+"/"+cfg.App.Version),
	)
	c.Sessions = session.NewOpener(c.Cache, cfg.Session.TTL)
	c.Bus = events.NewBus()
	c.Inspector = jwt.NewInspector(cfg.JWT.Secret)

	// Settle re-check cần Redis: worker đọc cùng session store
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		c.Asynq = queue.NewClient(cfg.Redis)
		c.Enqueuer = queue.NewEnqueuer(c.Asynq, cfg.Payment)
		c.Relay = events.NewRedisRelay(c.Bus, rc.Client, events.RelayChannel, events.TopicPaymentSettled)
		log.Println("✅ Asynq client + event relay ready")
	}

	// ========================================
	// STEP 3: INITIALIZE SERVICES
	// ========================================
	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 4: INITIALIZE HANDLERS
	// ========================================
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// initCache kết nối Redis; lỗi không critical → fallback in-memory
func (c *Container) initCache() {
	if !c.Config.Redis.Enabled {
		log.Println("⚠️  Redis disabled, using in-memory session store")
		c.Cache = infraCache.NewMemoryCache()
		return
	}

	log.Println("🔴 Connecting to Redis...")
	redisCache := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rc := redisCache.(*infraCache.RedisCache)
	if err := rc.Connect(ctx); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical), using in-memory store: %v", err)
		_ = rc.Close()
		c.Cache = infraCache.NewMemoryCache()
		return
	}
	log.Println("✅ Redis connected")
	c.Cache = redisCache
}

// initServices khởi tạo tất cả services
func (c *Container) initServices() error {
	backend := c.Backend

	c.AuthService = authService.NewAuthService(authRepo.NewAPIRepository(backend), c.Sessions, c.Inspector)
	c.AddressService = addressService.NewService(addressRepo.NewAPIRepository(backend))
	c.CartService = cartService.NewCartService(cartRepo.NewAPIRepository(backend), c.Sessions, c.Bus)
	c.CheckoutGuard = checkoutService.NewGuard(c.AuthService, c.AddressService)
	c.OrderService = orderService.NewOrderService(orderRepo.NewAPIRepository(backend))

	// ----------------------------------------
	// PAYMENT RECONCILER
	// ----------------------------------------
	// Enqueuer nil phải thành interface nil, không phải typed nil
	var scheduler paymentService.SettleScheduler
	if c.Enqueuer != nil {
		scheduler = c.Enqueuer
	}
	var publisher events.Publisher = c.Bus
	if c.Relay != nil {
		publisher = c.Relay
	}
	c.Reconciler = paymentService.NewReconciler(
		paymentRepo.NewAPIRepository(backend),
		c.OrderService,
		c.Sessions,
		publisher,
		scheduler,
		paymentService.Options{
			PollInterval: c.Config.Payment.PollInterval,
			PollTimeout:  c.Config.Payment.PollTimeout,
		},
	)

	c.ReviewService = reviewService.NewReviewService(reviewRepo.NewAPIRepository(backend), c.Inspector)
	c.CommentService = commentService.NewCommentService(commentRepo.NewAPIRepository(backend))
	c.CommunityService = communityService.NewCommunityService(c.ReviewService, c.CommentService)
	c.FavoriteService = favoriteService.NewFavoriteService(favoriteRepo.NewAPIRepository(backend), c.Sessions, c.Bus)

	c.WarehouseService = warehouseService.NewService(warehouseRepo.NewAPIRepository(backend))
	c.DashboardService = dashboardService.NewDashboardService(dashboardRepo.NewAPIRepository(backend), c.WarehouseService)
	c.StaffService = staffService.NewStaffService(staffRepo.NewAPIRepository(backend))

	return nil
}

// initHandlers khởi tạo tất cả HTTP handlers
func (c *Container) initHandlers() {
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.AddressHandler = addressHandler.NewAddressHandler(c.AddressService)
	c.CartHandler = cartHandler.NewHandler(c.CartService)
	c.CheckoutHandler = checkoutHandler.NewCheckoutHandler(c.CheckoutGuard)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
	c.PaymentHandler = paymentHandler.NewPaymentHandler(c.Reconciler)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.CommunityHandler = communityHandler.NewCommunityHandler(c.CommunityService)
	c.FavoriteHandler = favoriteHandler.NewFavoriteHandler(c.FavoriteService)
	c.WarehouseHandler = warehouseHandler.NewHandler(c.WarehouseService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)
	c.StaffHandler = staffHandler.NewStaffHandler(c.StaffService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Asynq != nil {
		if err := c.Asynq.Close(); err != nil {
			log.Printf("⚠️  Failed to close asynq client: %v", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
