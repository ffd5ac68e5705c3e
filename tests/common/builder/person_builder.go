//go:build unit || integration

package builder

import (
	"time"

	domperson "fleetrent/internal/domain/person"
	reqdto "fleetrent/internal/handler/dto/request"
	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type PersonBuilder struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Password      string
	PasswordHash  string
	Role          domperson.Role
	LicenseNumber string
	BadgeNumber   string
	CreatedAt     time.Time
}

func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{
		ID:            uuid.New(),
		Name:          "Ada Renter",
		Email:         "ada@example.com",
		Password:      "correct-horse",
		PasswordHash:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:          domperson.RoleCustomer,
		LicenseNumber: "DL-2026-0001",
		CreatedAt:     time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *PersonBuilder) With(mutate func(*PersonBuilder)) *PersonBuilder {
	mutate(p)
	return p
}

func (p *PersonBuilder) roleData() domperson.RoleData {
	switch p.Role {
	case domperson.RoleEmployee:
		return domperson.EmployeeData{BadgeNumber: p.BadgeNumber}
	case domperson.RoleAdmin:
		return domperson.AdminData{}
	default:
		return domperson.CustomerData{LicenseNumber: p.LicenseNumber}
	}
}

func (p *PersonBuilder) BuildDomain() (*domperson.Person, error) {
	return domperson.NewPerson(p.Name, p.Email, p.PasswordHash, p.roleData(), p.CreatedAt)
}

func (p *PersonBuilder) BuildRegisterRequestDTO() reqdto.RegisterPersonRequest {
	return reqdto.RegisterPersonRequest{
		Name:          p.Name,
		Email:         p.Email,
		Password:      p.Password,
		Role:          p.Role.String(),
		LicenseNumber: p.LicenseNumber,
		BadgeNumber:   p.BadgeNumber,
	}
}

func (p *PersonBuilder) BuildView() *queries.PersonView {
	return &queries.PersonView{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      p.Role.String(),
		CreatedAt: p.CreatedAt,
	}
}

func (p *PersonBuilder) BuildAuthView() *queries.AuthPersonView {
	return &queries.AuthPersonView{
		ID:           p.ID,
		Email:        p.Email,
		Role:         p.Role.String(),
		PasswordHash: p.PasswordHash,
	}
}
