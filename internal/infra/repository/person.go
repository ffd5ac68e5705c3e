package repository

import (
	"context"

	"fleetrent/internal/domain/person"
	"fleetrent/internal/infra/db"

	"github.com/google/uuid"
)

type PersonRepository struct{}

func NewPersonRepository() *PersonRepository {
	return &PersonRepository{}
}

func (r *PersonRepository) Create(ctx context.Context, dbtx db.DBTX, entity *person.Person) (uuid.UUID, error) {
	const query = `
		INSERT INTO persons (id, name, email, password_hash, role, license_number, badge_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	licenseNumber, badgeNumber := rolePayloadColumns(entity.RoleData())

	_, err := dbtx.Exec(ctx, query,
		entity.ID(),
		entity.Name(),
		entity.Email(),
		entity.PasswordHash(),
		entity.Role().String(),
		licenseNumber,
		badgeNumber,
		entity.CreatedAt(),
		entity.UpdatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create person", err)
	}

	return entity.ID(), nil
}

// rolePayloadColumns flattens the role variant into its nullable columns.
func rolePayloadColumns(data person.RoleData) (*string, *string) {
	switch d := data.(type) {
	case person.CustomerData:
		if d.LicenseNumber == "" {
			return nil, nil
		}
		return &d.LicenseNumber, nil
	case person.EmployeeData:
		if d.BadgeNumber == "" {
			return nil, nil
		}
		return nil, &d.BadgeNumber
	default:
		return nil, nil
	}
}
