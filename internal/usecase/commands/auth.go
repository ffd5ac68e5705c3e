package commands

import (
	"context"

	"fleetrent/internal/domain/person"
	"fleetrent/internal/infra"
	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/pkg/jwt"
	"fleetrent/internal/pkg/password"
	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	PersonID uuid.UUID
	Role     string
	Token    string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	persons    queries.PersonReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(persons queries.PersonReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		persons:    persons,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, err := a.persons.FindAuthByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same outcome as a wrong password, so probes learn nothing.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(view.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := person.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		PersonID: view.ID,
		Role:     role.String(),
		Token:    token,
	}, nil
}
