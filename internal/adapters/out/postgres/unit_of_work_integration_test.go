package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "crumbsy/internal/adapters/out/postgres"
	"crumbsy/internal/adapters/out/postgres/orderrepo"
	"crumbsy/internal/core/domain/model/kernel"
	"crumbsy/internal/core/domain/model/order"
	"crumbsy/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.QuoteDTO{}, &orderrepo.MessageDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_quotes, order_messages").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin on an open transaction is a no-op.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.Require().NoError)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.Require().NoError)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Rolled back order should not be visible")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_QuoteAndAssignmentInOneTransaction() {
	ctx := context.Background()

	testOrder := createTestOrder(suite.Require().NoError)

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.OrderRepository()
	loaded, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	bakerID := kernel.NewUUID()
	now := time.Now().UTC()
	_, err = loaded.SubmitQuote(bakerID, 95, "", "Deal", now)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AssignBaker(bakerID, now))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.BakerAssigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Price())
	suite.InDelta(95.0, *retrieved.Price(), 0.001)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func createTestOrder(requireNoError func(error, ...interface{})) *order.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.CakeDesign{
			ID:    "design-1",
			Name:  "Birthday Classic",
			Shape: "round",
			Layers: []order.CakeLayer{
				{Flavor: "vanilla", Color: "white", Frosting: "buttercream", FrostingColor: "pink"},
			},
			Buttercream: order.Buttercream{Flavor: "vanilla", Color: "white"},
			Toppings:    []string{"sprinkles"},
			TopText:     "Happy Birthday",
		},
		"10001",
		now.Add(14*24*time.Hour),
		now,
	)
	requireNoError(err)
	return testOrder
}
