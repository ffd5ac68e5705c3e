package person

import "fleetrent/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleEmployee, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may act on other people's rentals.
func (r Role) IsStaff() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// RoleData is the variant payload carried by a Person. Exactly one concrete
// type exists per role; the flat base fields live on Person itself.
type RoleData interface {
	Role() Role
}

// CustomerData holds the attributes only customers have.
type CustomerData struct {
	LicenseNumber string
}

func (CustomerData) Role() Role { return RoleCustomer }

// EmployeeData holds the attributes only employees have.
type EmployeeData struct {
	BadgeNumber string
}

func (EmployeeData) Role() Role { return RoleEmployee }

// AdminData has no extra attributes.
type AdminData struct{}

func (AdminData) Role() Role { return RoleAdmin }
