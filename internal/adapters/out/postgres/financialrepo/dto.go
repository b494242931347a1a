// Package financialrepo persists the per-order financial ledger.
// A unique index on order_id enforces the one-record-per-order invariant at
// the storage level.
package financialrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/core/domain/model/kernel"
)

// FinancialDTO represents the database structure for ledger records.
// Money columns use numeric(12,2); the payment plan is stored as jsonb.
type FinancialDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	ClientCost     decimal.Decimal `gorm:"type:numeric(12,2)"`
	DriverCost     decimal.Decimal `gorm:"type:numeric(12,2)"`
	ThirdPartyCost decimal.Decimal `gorm:"type:numeric(12,2)"`
	FuelExpenses   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Profit         decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentStatus  string
	PaymentPlan    []byte `gorm:"type:jsonb"`
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for ledger records.
func (FinancialDTO) TableName() string {
	return "financials"
}

// paymentPlanJSON is the jsonb shape of a stored payment plan.
type paymentPlanJSON struct {
	Amount    string    `json:"amount"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// fromDomain converts a ledger aggregate to its database representation.
func fromDomain(aggregate *financial.Financial) (FinancialDTO, error) {
	var plan []byte
	if p := aggregate.PaymentPlan(); p != nil {
		raw, err := json.Marshal(paymentPlanJSON{
			Amount:    p.Amount.String(),
			UpdatedBy: p.UpdatedBy,
			UpdatedAt: p.UpdatedAt,
		})
		if err != nil {
			return FinancialDTO{}, err
		}
		plan = raw
	}

	return FinancialDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		ClientCost:     aggregate.ClientCost().Decimal(),
		DriverCost:     aggregate.DriverCost().Decimal(),
		ThirdPartyCost: aggregate.ThirdPartyCost().Decimal(),
		FuelExpenses:   aggregate.FuelExpenses().Decimal(),
		Profit:         aggregate.Profit().Decimal(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		PaymentPlan:    plan,
	}, nil
}

// toDomain converts a database DTO to a ledger aggregate.
func toDomain(dto FinancialDTO) (*financial.Financial, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	paymentStatus, err := financial.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var plan *financial.PaymentPlan
	if len(dto.PaymentPlan) > 0 {
		var stored paymentPlanJSON
		if err = json.Unmarshal(dto.PaymentPlan, &stored); err != nil {
			return nil, err
		}
		amount, amountErr := kernel.MoneyFromString(stored.Amount)
		if amountErr != nil {
			return nil, amountErr
		}
		plan = &financial.PaymentPlan{
			Amount:    amount,
			UpdatedBy: stored.UpdatedBy,
			UpdatedAt: stored.UpdatedAt,
		}
	}

	return financial.RestoreFinancial(id, orderID,
		kernel.NewMoneyFromDecimal(dto.ClientCost),
		kernel.NewMoneyFromDecimal(dto.DriverCost),
		kernel.NewMoneyFromDecimal(dto.ThirdPartyCost),
		kernel.NewMoneyFromDecimal(dto.FuelExpenses),
		kernel.NewMoneyFromDecimal(dto.Profit),
		paymentStatus, plan)
}
