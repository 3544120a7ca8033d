package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vista-store/storefront/internal/api/handler"
	"github.com/vista-store/storefront/internal/api/middleware"
	"github.com/vista-store/storefront/internal/core/domain"
	"github.com/vista-store/storefront/internal/core/ports"
	"github.com/vista-store/storefront/internal/core/service"
	"github.com/vista-store/storefront/internal/core/store"
	"github.com/vista-store/storefront/internal/infrastructure/notify"
)

// Deps carries the wired backends the router needs. Mongo and Redis handles
// are only used by the readiness probe and may be nil when the service runs
// on in-memory backends.
type Deps struct {
	Users     ports.UserRepository
	Products  ports.ProductRepository
	Orders    ports.OrderRepository
	Snapshots ports.SnapshotStore

	Dispatcher handler.EventDispatcher

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	TokenTTL  time.Duration
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Services and stores ---
	authService := service.NewAuthService(deps.Users, deps.JWTSecret, deps.TokenTTL, deps.Log)
	catalogService := service.NewCatalogService(deps.Products, deps.Log)
	orderService := service.NewOrderService(deps.Orders, deps.Log)

	notifier := notify.NewLogNotifier(deps.Log)
	carts := store.NewCartManager(deps.Snapshots, notifier, deps.Log)
	checkout := store.NewCheckout(orderService, notifier, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(carts, catalogService)
	orderHandler := handler.NewOrderHandler(checkout, carts, deps.Dispatcher)

	authRequired := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	v1 := e.Group("/v1")

	// --- Public routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/forgot-password", authHandler.ForgotPassword)

	v1.GET("/products", catalogHandler.List)
	v1.GET("/products/:id", catalogHandler.Get)
	v1.GET("/categories", catalogHandler.Categories)

	// --- Authenticated routes ---
	account := v1.Group("/auth", authRequired)
	account.GET("/me", authHandler.Me)
	account.PUT("/profile", authHandler.UpdateProfile)

	cart := v1.Group("/cart", authRequired)
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:product_id", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:product_id", cartHandler.RemoveItem)

	orders := v1.Group("/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id/tracking", orderHandler.Track)
	orders.POST("/events", orderHandler.ReceiveEvent, adminOnly)
	orders.POST("/events/batch", orderHandler.ReceiveEventBatch, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
