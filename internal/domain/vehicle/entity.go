package vehicle

import (
	"regexp"
	"strings"
	"time"

	"fleetrent/internal/pkg/errs"
)

var (
	ErrInvalidPlate  = errs.New("invalid plate")
	ErrInvalidStatus = errs.New("invalid vehicle status")
	ErrEmptyBrand    = errs.New("brand must not be empty")
	ErrEmptyModel    = errs.New("model must not be empty")
)

// Plates are uppercased alphanumerics with optional dashes, 5 to 10 chars.
var platePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{3,8}[A-Z0-9]$`)

// Vehicle is a rentable unit of the fleet, identified by its plate. The plate
// is the natural key and never changes; everything else is mutable.
type Vehicle struct {
	plate     string
	brand     string
	model     string
	color     string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewVehicle(plate, brand, model, color string, now time.Time) (*Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if !platePattern.MatchString(plate) {
		return nil, ErrInvalidPlate
	}
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, ErrEmptyBrand
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, ErrEmptyModel
	}

	return &Vehicle{
		plate:     plate,
		brand:     brand,
		model:     model,
		color:     strings.TrimSpace(color),
		status:    StatusFree,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructVehicle(plate, brand, model, color string, status Status, createdAt, updatedAt time.Time) *Vehicle {
	return &Vehicle{
		plate:     plate,
		brand:     brand,
		model:     model,
		color:     color,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// SetStatus updates the display state. Any valid state may follow any other:
// the board is operator-driven and carries no machine semantics.
func (v *Vehicle) SetStatus(s Status, now time.Time) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	v.status = s
	v.updatedAt = now
	return nil
}

func (v *Vehicle) Plate() string        { return v.plate }
func (v *Vehicle) Brand() string        { return v.brand }
func (v *Vehicle) Model() string        { return v.model }
func (v *Vehicle) Color() string        { return v.color }
func (v *Vehicle) Status() Status       { return v.status }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time { return v.updatedAt }
