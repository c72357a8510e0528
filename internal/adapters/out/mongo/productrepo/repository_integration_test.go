package productrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commerce/internal/adapters/out/mongo/productrepo"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *mongodb.MongoDBContainer
	client     *mongo.Client
	db         *mongo.Database
	repository *productrepo.MongoProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	suite.Require().NoError(err)
	suite.client = client
	suite.db = client.Database("commerce_test")
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Collection("products").Drop(ctx))

	repository, err := productrepo.NewMongoProductRepository(ctx, suite.db)
	suite.Require().NoError(err)
	suite.repository = repository
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()
	if suite.client != nil {
		suite.Require().NoError(suite.client.Disconnect(ctx))
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(ctx))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct() *product.Product {
	aggregate, err := product.NewProduct(
		kernel.NewUUID(), "Trail Shoe", "Lightweight trail running shoe", 99.95,
		kernel.NewUUID(), 25, "Acme",
		[]string{"shoe.jpg"},
		[]product.Variant{{ID: kernel.NewUUID(), Color: "red", Size: "42", AdditionalPrice: 5}},
		time.Now().UTC().Truncate(time.Millisecond),
	)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newProduct()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(aggregate.ID()))
	suite.Equal(aggregate.Name(), loaded.Name())
	suite.Equal(aggregate.Price(), loaded.Price())
	suite.Equal(aggregate.Stock(), loaded.Stock())
	suite.Equal(aggregate.Variants(), loaded.Variants())
	suite.True(loaded.IsActive())
	suite.Empty(loaded.Ratings())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsRatingsAndAverage() {
	ctx := context.Background()
	aggregate := suite.newProduct()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	now := time.Now().UTC().Truncate(time.Millisecond)
	suite.Require().NoError(aggregate.AddRating(product.Rating{UserID: kernel.NewUUID(), Value: 4}, now))
	suite.Require().NoError(aggregate.AddRating(product.Rating{UserID: kernel.NewUUID(), Value: 5, Comment: "great"}, now))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(loaded.Ratings(), 2)
	suite.InDelta(4.5, loaded.AverageRating(), 0.001)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_UnknownProduct_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newProduct())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
