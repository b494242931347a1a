package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/pkg/errs"
)

func errNotFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("orderID", id)
}

func actorInCompany(t *testing.T, role kernel.Role, companyID kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role, companyID)
	require.NoError(t, err)
	return actor
}

func testActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	return actorInCompany(t, role, kernel.NewUUID())
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testDetails() order.Details {
	price := kernel.NewMoneyFromDecimal(decimal.NewFromInt(50000))
	distance := decimal.NewFromInt(700)
	pickup := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return order.Details{
		CargoType:   "steel coils",
		CargoMassKg: 12000,
		Origin:      "Rotterdam",
		Destination: "Hamburg",
		AgreedPrice: &price,
		PickupAt:    pickup,
		DeliverAt:   pickup.Add(24 * time.Hour),
		DistanceKm:  &distance,
	}
}

func testOrder(t *testing.T, companyID kernel.UUID) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), companyID, kernel.NewUUID(), kernel.NewUUID(), testDetails())
	require.NoError(t, err)
	return aggregate
}
