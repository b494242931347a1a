package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"flowgic/internal/adapters/out/postgres/orderrepo"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/pkg/errs"
)

// stubTracker is an in-memory version tracker standing in for the unit of work.
type stubTracker struct {
	versions map[kernel.UUID]int64
}

func newStubTracker() *stubTracker {
	return &stubTracker{versions: make(map[kernel.UUID]int64)}
}

func (s *stubTracker) TrackVersion(id kernel.UUID, version int64) {
	s.versions[id] = version
}

func (s *stubTracker) LoadedVersion(id kernel.UUID) (int64, bool) {
	version, ok := s.versions[id]
	return version, ok
}

// OrderRepositoryIntegrationTestSuite verifies persistence and optimistic
// locking behavior against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *stubTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = newStubTracker()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(companyID kernel.UUID) *order.Order {
	price, err := kernel.MoneyFromString("50000")
	suite.Require().NoError(err)
	distance := decimal.NewFromInt(700)
	pickup := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	aggregate, err := order.NewOrder(kernel.NewUUID(), companyID, kernel.NewUUID(), kernel.NewUUID(), order.Details{
		CargoType:   "steel coils",
		CargoMassKg: 12000,
		Origin:      "Rotterdam",
		Destination: "Hamburg",
		AgreedPrice: &price,
		PickupAt:    pickup,
		DeliverAt:   pickup.Add(24 * time.Hour),
		DistanceKm:  &distance,
	})
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), restored.ID())
	suite.Equal(aggregate.CompanyID(), restored.CompanyID())
	suite.Equal(order.StatusCreated, restored.Status())
	suite.Equal("steel coils", restored.Details().CargoType)
	suite.Require().NotNil(restored.AgreedPrice())
	suite.Equal("50000.00", restored.AgreedPrice().String())
	suite.Require().NotNil(restored.DistanceKm())
	suite.True(restored.DistanceKm().Equal(decimal.NewFromInt(700)))
	suite.False(restored.IsViewedByDriver())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.ChangeStatus(order.StatusDelayed, "closed motorway"))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	tracker := newStubTracker()
	repository := orderrepo.NewGormOrderRepository(suite.db, tracker)
	restored, err := repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusDelayed, restored.Status())
	suite.Equal("closed motorway", restored.DelayReason())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Two workers load the same order.
	firstTracker := newStubTracker()
	first := orderrepo.NewGormOrderRepository(suite.db, firstTracker)
	firstCopy, err := first.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	secondTracker := newStubTracker()
	second := orderrepo.NewGormOrderRepository(suite.db, secondTracker)
	secondCopy, err := second.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	// The first write wins.
	suite.Require().NoError(firstCopy.ChangeStatus(order.StatusAssigned, ""))
	suite.Require().NoError(first.Update(ctx, firstCopy))

	// The second write sees a moved version and fails without clobbering.
	suite.Require().NoError(secondCopy.ChangeStatus(order.StatusCancelled, ""))
	err = second.Update(ctx, secondCopy)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	finalTracker := newStubTracker()
	final := orderrepo.NewGormOrderRepository(suite.db, finalTracker)
	restored, err := final.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusAssigned, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_CompanyScoped() {
	ctx := context.Background()
	companyID := kernel.NewUUID()

	mine := suite.createTestOrder(companyID)
	suite.Require().NoError(suite.repository.Add(ctx, mine))

	finished := suite.createTestOrder(companyID)
	suite.Require().NoError(suite.repository.Add(ctx, finished))
	suite.Require().NoError(finished.ChangeStatus(order.StatusCompleted, ""))
	suite.Require().NoError(suite.repository.Update(ctx, finished))

	foreign := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	active, err := suite.repository.GetAllActive(ctx, companyID)
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal(mine.ID(), active[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInTransitDueBefore() {
	ctx := context.Background()
	overdue := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, overdue))
	suite.Require().NoError(overdue.ChangeStatus(order.StatusInTransit, ""))
	suite.Require().NoError(suite.repository.Update(ctx, overdue))

	onTime := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, onTime))

	cutoff := overdue.Details().DeliverAt.Add(time.Hour)
	due, err := suite.repository.GetAllInTransitDueBefore(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(due, 1)
	suite.Equal(overdue.ID(), due[0].ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
