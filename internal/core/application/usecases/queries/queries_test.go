package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowgic/internal/core/application/usecases/queries"
	"flowgic/internal/core/domain/model/kernel"
)

func testActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDispatcher, kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func TestNewGetActiveOrdersQuery(t *testing.T) {
	query, err := queries.NewGetActiveOrdersQuery(testActor(t))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetActiveOrdersQuery(kernel.Actor{})
	require.Error(t, err)

	var zero queries.GetActiveOrdersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetOrderHistoryQuery(t *testing.T) {
	query, err := queries.NewGetOrderHistoryQuery(testActor(t), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetOrderHistoryQuery(testActor(t), kernel.UUID{})
	require.Error(t, err)

	var zero queries.GetOrderHistoryQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetOrderHistoryQueryIsNotConstructed)
}

func TestNewGetAvailableVehiclesQuery(t *testing.T) {
	query, err := queries.NewGetAvailableVehiclesQuery(testActor(t))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetAvailableVehiclesQuery(kernel.Actor{})
	require.Error(t, err)

	var zero queries.GetAvailableVehiclesQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetAvailableVehiclesQueryIsNotConstructed)
}

func TestNewGetOrderSummaryQuery(t *testing.T) {
	query, err := queries.NewGetOrderSummaryQuery(testActor(t), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetOrderSummaryQuery(kernel.Actor{}, kernel.NewUUID())
	require.Error(t, err)

	var zero queries.GetOrderSummaryQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetOrderSummaryQueryIsNotConstructed)
}
