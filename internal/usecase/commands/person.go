package commands

import (
	"context"

	"fleetrent/internal/domain/person"
	"fleetrent/internal/infra"
	"fleetrent/internal/pkg/clock"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/pkg/password"
	"fleetrent/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail   = errs.New("person with this email already exists")
	ErrPersonValidation = errs.New("person validation failed")
	ErrPasswordTooWeak  = errs.New("password does not meet requirements")
)

const minPasswordLength = 8

type RegisterPersonInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	// Role-specific payload; only the field matching Role is read.
	LicenseNumber string
	BadgeNumber   string
}

type PersonCommands interface {
	Register(ctx context.Context, in RegisterPersonInput) (uuid.UUID, error)
}

type personCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPersonCommands(uow shared.UnitOfWork, clk clock.Clock) PersonCommands {
	return &personCommandsImpl{uow: uow, clock: clk}
}

func (c *personCommandsImpl) Register(ctx context.Context, in RegisterPersonInput) (uuid.UUID, error) {
	if len(in.Password) < minPasswordLength {
		return uuid.Nil, ErrPasswordTooWeak
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPersonValidation)
	}

	role, err := person.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPersonValidation)
	}

	var roleData person.RoleData
	switch role {
	case person.RoleCustomer:
		roleData = person.CustomerData{LicenseNumber: in.LicenseNumber}
	case person.RoleEmployee:
		roleData = person.EmployeeData{BadgeNumber: in.BadgeNumber}
	case person.RoleAdmin:
		roleData = person.AdminData{}
	}

	entity, err := person.NewPerson(in.Name, in.Email, hash, roleData, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPersonValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Persons().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}
