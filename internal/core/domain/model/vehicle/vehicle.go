package vehicle

import (
	"errors"
	"strings"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
	"flowgic/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle was not created
// through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")

// Vehicle is a company's truck or van. Registration numbers are unique per
// company; the uniqueness itself is enforced by the storage layer.
type Vehicle struct {
	id        kernel.UUID
	companyID kernel.UUID
	regNumber string
	model     string
	capacity  int
	status    Status

	guard guard.ConstructorGuard
}

// NewVehicle creates a vehicle in the available state.
// Capacity is the payload limit in kilograms and must be positive.
func NewVehicle(id, companyID kernel.UUID, regNumber, model string, capacity int) (*Vehicle, error) {
	vehicle := &Vehicle{
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setCompanyID(companyID),
		vehicle.setRegNumber(regNumber),
		vehicle.setModel(model),
		vehicle.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(id, companyID kernel.UUID, regNumber, model string, capacity int, status Status) (*Vehicle, error) {
	vehicle, err := NewVehicle(id, companyID, regNumber, model, capacity)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	vehicle.status = status

	return vehicle, nil
}

// Validate ensures the vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// CompanyID returns the owning company.
func (v *Vehicle) CompanyID() kernel.UUID {
	return v.companyID
}

// RegNumber returns the registration plate, uppercased and trimmed.
func (v *Vehicle) RegNumber() string {
	return v.regNumber
}

// Model returns the vehicle's make and model.
func (v *Vehicle) Model() string {
	return v.model
}

// Capacity returns the payload limit in kilograms.
func (v *Vehicle) Capacity() int {
	return v.capacity
}

// Status returns the vehicle's operational state.
func (v *Vehicle) Status() Status {
	return v.status
}

// ChangeStatus moves the vehicle to a new operational state.
// Returns errs.ErrStatusUnchanged when the target equals the current status.
func (v *Vehicle) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if v.status == newStatus {
		return errs.ErrStatusUnchanged
	}
	v.status = newStatus
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	v.companyID = companyID
	return nil
}

func (v *Vehicle) setRegNumber(regNumber string) error {
	regNumber = strings.ToUpper(strings.TrimSpace(regNumber))
	if regNumber == "" {
		return errs.NewValueIsRequiredError("regNumber")
	}
	v.regNumber = regNumber
	return nil
}

func (v *Vehicle) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 || capacity > maxCapacityKg {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 1, maxCapacityKg)
	}
	v.capacity = capacity
	return nil
}

// maxCapacityKg caps the payload limit at the heaviest road train allowed.
const maxCapacityKg = 60000
