package readstore

import (
	"context"
	"errors"

	"fleetrent/internal/infra"
	"fleetrent/internal/infra/db"
	"fleetrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PersonReadStore struct {
	db db.DBTX
}

func NewPersonReadStore(dbtx db.DBTX) *PersonReadStore {
	return &PersonReadStore{db: dbtx}
}

func (r *PersonReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PersonView, error) {
	const query = `
		SELECT id, name, email, role, created_at
		FROM persons
		WHERE id = $1`

	var view queries.PersonView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.Role, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "person not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find person by ID", err)
	}

	return &view, nil
}

func (r *PersonReadStore) FindAuthByEmail(ctx context.Context, email string) (*queries.AuthPersonView, error) {
	const query = `
		SELECT id, email, role, password_hash
		FROM persons
		WHERE email = $1`

	var view queries.AuthPersonView
	err := r.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.Role, &view.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "person not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find person by email", err)
	}

	return &view, nil
}
