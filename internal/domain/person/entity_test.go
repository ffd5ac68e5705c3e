//go:build unit

package person_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fleetrent/internal/domain/person"
	"fleetrent/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		p, err := builder.NewPersonBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, "Ada Renter", p.Name())
		assert.Equal(t, person.RoleCustomer, p.Role())
		assert.Equal(t, p.CreatedAt(), p.UpdatedAt())
	})

	t.Run("name and email are trimmed", func(t *testing.T) {
		p, err := builder.NewPersonBuilder().
			With(func(b *builder.PersonBuilder) {
				b.Name = "  Ada Renter  "
				b.Email = " ada@example.com "
			}).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Ada Renter", p.Name())
		assert.Equal(t, "ada@example.com", p.Email())
	})

	t.Run("role payload per role", func(t *testing.T) {
		customer, err := builder.NewPersonBuilder().BuildDomain()
		require.NoError(t, err)
		data, ok := customer.RoleData().(person.CustomerData)
		require.True(t, ok)
		assert.Equal(t, "DL-2026-0001", data.LicenseNumber)

		employee, err := builder.NewPersonBuilder().
			With(func(b *builder.PersonBuilder) {
				b.Role = person.RoleEmployee
				b.BadgeNumber = "B-42"
			}).
			BuildDomain()
		require.NoError(t, err)
		empData, ok := employee.RoleData().(person.EmployeeData)
		require.True(t, ok)
		assert.Equal(t, "B-42", empData.BadgeNumber)

		admin, err := builder.NewPersonBuilder().
			With(func(b *builder.PersonBuilder) { b.Role = person.RoleAdmin }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, person.RoleAdmin, admin.Role())
	})

	t.Run("all violations reported in one pass", func(t *testing.T) {
		_, err := person.NewPerson("", "not-an-email", "", nil, timeNow())
		require.Error(t, err)

		var violations person.Violations
		require.True(t, errors.As(err, &violations))

		want := person.Violations{
			{Field: "name", Reason: "must not be empty"},
			{Field: "email", Reason: "must be a valid address"},
			{Field: "password", Reason: "hash must not be empty"},
			{Field: "role", Reason: "must be customer, employee or admin"},
		}
		if diff := cmp.Diff(want, violations); diff != "" {
			t.Errorf("violations mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("violation error message names every field", func(t *testing.T) {
		_, err := person.NewPerson("", "bad", "hash", person.AdminData{}, timeNow())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name:")
		assert.Contains(t, err.Error(), "email:")
		assert.NotContains(t, err.Error(), "password:")
	})

	t.Run("overlong name rejected", func(t *testing.T) {
		_, err := builder.NewPersonBuilder().
			With(func(b *builder.PersonBuilder) { b.Name = strings.Repeat("a", person.MaxNameLength+1) }).
			BuildDomain()

		var violations person.Violations
		require.True(t, errors.As(err, &violations))
		require.Len(t, violations, 1)
		assert.Equal(t, "name", violations[0].Field)
	})
}

func timeNow() time.Time {
	return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
}

func TestRole(t *testing.T) {
	t.Run("parsing", func(t *testing.T) {
		for _, s := range []string{"customer", "employee", "admin"} {
			role, err := person.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}

		_, err := person.NewRole("superuser")
		require.ErrorIs(t, err, person.ErrInvalidRole)
	})

	t.Run("staff classification", func(t *testing.T) {
		assert.False(t, person.RoleCustomer.IsStaff())
		assert.True(t, person.RoleEmployee.IsStaff())
		assert.True(t, person.RoleAdmin.IsStaff())
	})
}
