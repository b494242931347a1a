package order_test

import (
	"testing"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() order.Details {
	pickup := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	price := kernel.NewMoneyFromDecimal(decimal.NewFromInt(10000))
	distance := decimal.NewFromInt(700)

	return order.Details{
		CargoType:   "Electronics",
		CargoMassKg: 5000,
		Origin:      "Moscow",
		Destination: "Saint Petersburg",
		AgreedPrice: &price,
		PickupAt:    pickup,
		DeliverAt:   pickup.Add(5 * time.Hour),
		DistanceKm:  &distance,
	}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		validDetails(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	companyID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	createdBy := kernel.NewUUID()

	t.Run("creates valid order in created status", func(t *testing.T) {
		o, err := order.NewOrder(id, companyID, clientID, createdBy, validDetails())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CompanyID().IsEqual(companyID))
		assert.True(t, o.ClientID().IsEqual(clientID))
		assert.True(t, o.CreatedBy().IsEqual(createdBy))
		assert.Equal(t, order.StatusCreated, o.Status())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.Vehicle())
		assert.False(t, o.IsViewedByDriver())
		assert.Empty(t, o.DelayReason())
	})

	t.Run("fails with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, companyID, clientID, createdBy, validDetails())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("fails with missing cargo type", func(t *testing.T) {
		details := validDetails()
		details.CargoType = ""

		_, err := order.NewOrder(id, companyID, clientID, createdBy, details)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with non-positive cargo mass", func(t *testing.T) {
		details := validDetails()
		details.CargoMassKg = 0

		_, err := order.NewOrder(id, companyID, clientID, createdBy, details)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails when delivery precedes pickup", func(t *testing.T) {
		details := validDetails()
		details.DeliverAt = details.PickupAt.Add(-time.Hour)

		_, err := order.NewOrder(id, companyID, clientID, createdBy, details)

		require.ErrorIs(t, err, order.ErrDeliveryBeforePickup)
	})

	t.Run("allows delivery equal to pickup", func(t *testing.T) {
		details := validDetails()
		details.DeliverAt = details.PickupAt

		_, err := order.NewOrder(id, companyID, clientID, createdBy, details)

		require.NoError(t, err)
	})

	t.Run("fails with negative distance", func(t *testing.T) {
		details := validDetails()
		negative := decimal.NewFromInt(-5)
		details.DistanceKm = &negative

		_, err := order.NewOrder(id, companyID, clientID, createdBy, details)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("allows nil distance and nil agreed price", func(t *testing.T) {
		details := validDetails()
		details.DistanceKm = nil
		details.AgreedPrice = nil

		o, err := order.NewOrder(id, companyID, clientID, createdBy, details)

		require.NoError(t, err)
		assert.Nil(t, o.DistanceKm())
		assert.Nil(t, o.AgreedPrice())
	})

	t.Run("collects multiple validation errors", func(t *testing.T) {
		details := validDetails()
		details.CargoType = ""
		var invalidClient kernel.UUID

		_, err := order.NewOrder(id, companyID, invalidClient, createdBy, details)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "clientId")
		assert.Contains(t, err.Error(), "cargoType")
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Number(t *testing.T) {
	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	o, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validDetails())
	require.NoError(t, err)

	assert.Equal(t, "550E8400", o.Number())
	assert.Len(t, o.Number(), 8)
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("applies a real transition", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.StatusAssigned, "")

		require.NoError(t, err)
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("same status is a reported no-op", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.StatusCreated, "")

		require.ErrorIs(t, err, errs.ErrStatusUnchanged)
		assert.Equal(t, order.StatusCreated, o.Status())
	})

	t.Run("unknown status is rejected without mutation", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Status(42), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusCreated, o.Status())
	})

	t.Run("delay records a reason and resuming clears it", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusInTransit, ""))

		require.NoError(t, o.ChangeStatus(order.StatusDelayed, "snowstorm on M11"))
		assert.Equal(t, order.StatusDelayed, o.Status())
		assert.Equal(t, "snowstorm on M11", o.DelayReason())

		require.NoError(t, o.ChangeStatus(order.StatusInTransit, ""))
		assert.Equal(t, order.StatusInTransit, o.Status())
		assert.Empty(t, o.DelayReason())
	})

	t.Run("cancellation is a status change", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.StatusCancelled, ""))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})
}

func TestOrder_AssignTransport(t *testing.T) {
	t.Run("assigning a driver and a vehicle reports change", func(t *testing.T) {
		o := newTestOrder(t)
		driverID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()

		changed, err := o.AssignTransport(&driverID, &vehicleID)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, o.Driver().IsEqual(driverID))
		assert.True(t, o.Vehicle().IsEqual(vehicleID))
		// assignment alone does not move the status
		assert.Equal(t, order.StatusCreated, o.Status())
	})

	t.Run("reassigning the same transport is not a change", func(t *testing.T) {
		o := newTestOrder(t)
		driverID := kernel.NewUUID()

		changed, err := o.AssignTransport(&driverID, nil)
		require.NoError(t, err)
		require.True(t, changed)

		changed, err = o.AssignTransport(&driverID, nil)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("clearing the driver reports change", func(t *testing.T) {
		o := newTestOrder(t)
		driverID := kernel.NewUUID()

		_, err := o.AssignTransport(&driverID, nil)
		require.NoError(t, err)

		changed, err := o.AssignTransport(nil, nil)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Nil(t, o.Driver())
	})

	t.Run("rejects an invalid driver ID", func(t *testing.T) {
		o := newTestOrder(t)
		var invalidID kernel.UUID

		_, err := o.AssignTransport(&invalidID, nil)

		require.Error(t, err)
		assert.Nil(t, o.Driver())
	})
}

func TestOrder_MarkViewedBy(t *testing.T) {
	t.Run("assigned driver flips the flag exactly once", func(t *testing.T) {
		o := newTestOrder(t)
		driverID := kernel.NewUUID()
		_, err := o.AssignTransport(&driverID, nil)
		require.NoError(t, err)

		assert.True(t, o.MarkViewedBy(driverID))
		assert.True(t, o.IsViewedByDriver())

		// second call is an idempotent no-op
		assert.False(t, o.MarkViewedBy(driverID))
		assert.True(t, o.IsViewedByDriver())
	})

	t.Run("other users do not flip the flag", func(t *testing.T) {
		o := newTestOrder(t)
		driverID := kernel.NewUUID()
		_, err := o.AssignTransport(&driverID, nil)
		require.NoError(t, err)

		assert.False(t, o.MarkViewedBy(kernel.NewUUID()))
		assert.False(t, o.IsViewedByDriver())
	})

	t.Run("unassigned order ignores the call", func(t *testing.T) {
		o := newTestOrder(t)

		assert.False(t, o.MarkViewedBy(kernel.NewUUID()))
		assert.False(t, o.IsViewedByDriver())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores full state", func(t *testing.T) {
		id := kernel.NewUUID()
		driverID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&driverID, nil,
			validDetails(),
			order.StatusDelayed, "customs hold", true,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelayed, o.Status())
		assert.Equal(t, "customs hold", o.DelayReason())
		assert.True(t, o.IsViewedByDriver())
		assert.True(t, o.Driver().IsEqual(driverID))
		assert.Nil(t, o.Vehicle())
	})

	t.Run("rejects invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, nil,
			validDetails(),
			order.Status(77), "", false,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
