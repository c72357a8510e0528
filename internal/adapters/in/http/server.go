// Package http is the inbound HTTP adapter: echo routes, bearer-token
// authentication and the mapping from domain errors to status codes.
package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/identity"
	"commerce/internal/pkg/metrics"
)

const rateLimitPerSecond = 20

// TokenVerifier authenticates a bearer token and reconstructs its actor.
type TokenVerifier interface {
	Verify(token string) (identity.Actor, error)
}

// Handlers bundles the command and query handlers the server routes to.
type Handlers struct {
	RegisterUser   commands.RegisterUserCommandHandler
	LoginUser      commands.LoginUserCommandHandler
	UpdatePassword commands.UpdatePasswordCommandHandler
	ForgotPassword commands.ForgotPasswordCommandHandler
	ResetPassword  commands.ResetPasswordCommandHandler

	CreateOrder        commands.CreateOrderCommandHandler
	MarkOrderPaid      commands.MarkOrderPaidCommandHandler
	MarkOrderDelivered commands.MarkOrderDeliveredCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler

	CreateProduct      commands.CreateProductCommandHandler
	UpdateProduct      commands.UpdateProductCommandHandler
	AdjustProductStock commands.AdjustProductStockCommandHandler

	CreateCategory commands.CreateCategoryCommandHandler
	UpdateCategory commands.UpdateCategoryCommandHandler
	DeleteCategory commands.DeleteCategoryCommandHandler

	ListProducts   queries.ListProductsQueryHandler
	ListCategories queries.ListCategoriesQueryHandler
	GetCategory    queries.GetCategoryQueryHandler
	GetCurrentUser queries.GetCurrentUserQueryHandler
}

// Server coordinates between the HTTP surface and the application use cases.
type Server struct {
	handlers Handlers
	verifier TokenVerifier
	metrics  *metrics.ServerMetrics
}

// NewServer creates the HTTP server facade.
func NewServer(handlers Handlers, verifier TokenVerifier, serverMetrics *metrics.ServerMetrics) *Server {
	return &Server{
		handlers: handlers,
		verifier: verifier,
		metrics:  serverMetrics,
	}
}

// RegisterRoutes mounts all routes and shared middleware on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			)
			return nil
		},
	}))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rateLimitPerSecond)))
	e.Use(s.recordMetrics)

	e.GET("/health", s.health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.POST("/forgot-password", s.forgotPassword)
	auth.POST("/reset-password/:token", s.resetPassword)
	auth.POST("/logout", s.logout)
	auth.GET("/me", s.currentUser, s.requireAuth)
	auth.PUT("/update-password", s.updatePassword, s.requireAuth)

	orders := api.Group("/orders")
	orders.POST("", s.createOrder, s.requireAuth)
	orders.PUT("/:id/pay", s.payOrder)
	orders.PUT("/:id/deliver", s.deliverOrder, s.requireAuth)
	orders.PUT("/:id/cancel", s.cancelOrder, s.requireAuth)

	products := api.Group("/products")
	products.POST("", s.createProduct)
	products.GET("", s.listProducts)
	products.PUT("/:id", s.updateProduct)
	products.PATCH("/:id/stock", s.adjustProductStock)

	categories := api.Group("/categories")
	categories.POST("", s.createCategory)
	categories.GET("", s.listCategories)
	categories.GET("/:id", s.getCategory)
	categories.PUT("/:id", s.updateCategory)
	categories.DELETE("/:id", s.deleteCategory)
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
