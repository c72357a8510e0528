package categoryrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commerce/internal/adapters/out/mongo/categoryrepo"
	"commerce/internal/core/domain/model/category"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

type CategoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *mongodb.MongoDBContainer
	client     *mongo.Client
	db         *mongo.Database
	repository *categoryrepo.MongoCategoryRepository
}

func (suite *CategoryRepositoryIntegrationTestSuite) SetupSuite() {
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

func (suite *CategoryRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Collection("categories").Drop(ctx))

	repository, err := categoryrepo.NewMongoCategoryRepository(ctx, suite.db)
	suite.Require().NoError(err)
	suite.repository = repository
}

func (suite *CategoryRepositoryIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()
	if suite.client != nil {
		suite.Require().NoError(suite.client.Disconnect(ctx))
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(ctx))
	}
}

func (suite *CategoryRepositoryIntegrationTestSuite) newCategory(name string) *category.Category {
	aggregate, err := category.NewCategory(
		kernel.NewUUID(), name, "", nil,
		time.Now().UTC().Truncate(time.Millisecond),
	)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *CategoryRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newCategory("Running Shoes")

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("Running Shoes", loaded.Name())
	suite.Equal("running-shoes", loaded.Slug())
	suite.Nil(loaded.ParentID())
	suite.True(loaded.IsActive())
}

func (suite *CategoryRepositoryIntegrationTestSuite) TestAdd_DuplicateName_ReturnsInvalid() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCategory("Shoes")))

	err := suite.repository.Add(ctx, suite.newCategory("Shoes"))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *CategoryRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	aggregate := suite.newCategory("Shoes")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	_, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCategoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryIntegrationTestSuite))
}
