package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	httpadapter "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/mongo/categoryrepo"
	"commerce/internal/adapters/out/mongo/orderrepo"
	"commerce/internal/adapters/out/mongo/productrepo"
	"commerce/internal/adapters/out/mongo/userrepo"
	"commerce/internal/adapters/out/nats"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
	"commerce/internal/jobs"
	"commerce/internal/pkg/token"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	db *mongo.Database

	orderRepo    ports.OrderRepository
	userRepo     ports.UserRepository
	productRepo  ports.ProductRepository
	categoryRepo ports.CategoryRepository

	publisher ports.OrderEventPublisher
	tokens    *token.JWT
	policy    services.AccessPolicy
}

// NewCompositionRoot builds the repositories and shared services from the
// configuration. Index creation runs here, once per boot.
func NewCompositionRoot(ctx context.Context, config Config, db *mongo.Database, logger *slog.Logger) (*CompositionRoot, error) {
	orderRepo, err := orderrepo.NewMongoOrderRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to build order repository: %w", err)
	}

	userRepo, err := userrepo.NewMongoUserRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to build user repository: %w", err)
	}

	productRepo, err := productrepo.NewMongoProductRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to build product repository: %w", err)
	}

	categoryRepo, err := categoryrepo.NewMongoCategoryRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to build category repository: %w", err)
	}

	publisher, err := nats.NewPublisher(config.NatsURL, logger)
	if err != nil {
		return nil, err
	}

	tokens, err := token.NewJWT(config.JWTSecret, config.JWTTTL)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		db:           db,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		tokens:       tokens,
		policy:       services.NewAccessPolicy(),
	}, nil
}

// TokenVerifier exposes the session token verifier for the HTTP middleware.
func (c *CompositionRoot) TokenVerifier() httpadapter.TokenVerifier {
	return c.tokens
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(config Config, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.userRepo, config.ResetCleanupSchedule, logger)
}

// Close releases the outbound connections owned by the root.
func (c *CompositionRoot) Close() {
	if publisher, ok := c.publisher.(*nats.Publisher); ok {
		publisher.Close()
	}
}

// CreateHTTPHandlers bundles every command and query handler for the server.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		RegisterUser:   commands.NewRegisterUserCommandHandler(c.userRepo, c.tokens),
		LoginUser:      commands.NewLoginUserCommandHandler(c.userRepo, c.tokens),
		UpdatePassword: commands.NewUpdatePasswordCommandHandler(c.userRepo, c.policy),
		ForgotPassword: commands.NewForgotPasswordCommandHandler(c.userRepo),
		ResetPassword:  commands.NewResetPasswordCommandHandler(c.userRepo),

		CreateOrder:        commands.NewCreateOrderCommandHandler(c.orderRepo, c.publisher, c.policy),
		MarkOrderPaid:      commands.NewMarkOrderPaidCommandHandler(c.orderRepo, c.publisher),
		MarkOrderDelivered: commands.NewMarkOrderDeliveredCommandHandler(c.orderRepo, c.publisher, c.policy),
		CancelOrder:        commands.NewCancelOrderCommandHandler(c.orderRepo, c.publisher, c.policy),

		CreateProduct:      commands.NewCreateProductCommandHandler(c.productRepo),
		UpdateProduct:      commands.NewUpdateProductCommandHandler(c.productRepo),
		AdjustProductStock: commands.NewAdjustProductStockCommandHandler(c.productRepo),

		CreateCategory: commands.NewCreateCategoryCommandHandler(c.categoryRepo),
		UpdateCategory: commands.NewUpdateCategoryCommandHandler(c.categoryRepo),
		DeleteCategory: commands.NewDeleteCategoryCommandHandler(c.categoryRepo),

		ListProducts:   queries.NewListProductsQueryHandler(c.db),
		ListCategories: queries.NewListCategoriesQueryHandler(c.db),
		GetCategory:    queries.NewGetCategoryQueryHandler(c.db),
		GetCurrentUser: queries.NewGetCurrentUserQueryHandler(c.db),
	}
}
