package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PersonView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthPersonView carries the password hash and is never serialized outward.
type AuthPersonView struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
}

type PersonReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PersonView, error)
	FindAuthByEmail(ctx context.Context, email string) (*AuthPersonView, error)
}

type PersonQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PersonView, error)
}

type personQueriesImpl struct {
	store PersonReadStore
}

func NewPersonQueries(store PersonReadStore) PersonQueries {
	return &personQueriesImpl{store: store}
}

func (q *personQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PersonView, error) {
	return q.store.FindByID(ctx, id)
}
