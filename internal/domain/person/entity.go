package person

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxNameLength = 120

// Violation is a single rejected attribute from the construction-time
// validation pass.
type Violation struct {
	Field  string
	Reason string
}

// Violations collects every invalid attribute found in one pass, so a caller
// sees the full picture instead of the first offending field.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = fmt.Sprintf("%s: %s", violation.Field, violation.Reason)
	}
	return "invalid person: " + strings.Join(parts, "; ")
}

type Person struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	roleData     RoleData
	createdAt    time.Time
	updatedAt    time.Time
}

// NewPerson validates every attribute in a single pass and returns the full
// violation list on failure; a valid Person is never partially constructed.
func NewPerson(name, email, passwordHash string, roleData RoleData, now time.Time) (*Person, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	var violations Violations
	if name == "" {
		violations = append(violations, Violation{Field: "name", Reason: "must not be empty"})
	}
	if len(name) > MaxNameLength {
		violations = append(violations, Violation{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", MaxNameLength)})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		violations = append(violations, Violation{Field: "email", Reason: "must be a valid address"})
	}
	if passwordHash == "" {
		violations = append(violations, Violation{Field: "password", Reason: "hash must not be empty"})
	}
	if roleData == nil || !roleData.Role().IsValid() {
		violations = append(violations, Violation{Field: "role", Reason: "must be customer, employee or admin"})
	}
	if len(violations) > 0 {
		return nil, violations
	}

	return &Person{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		roleData:     roleData,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPerson(
	id uuid.UUID,
	name, email, passwordHash string,
	roleData RoleData,
	createdAt, updatedAt time.Time,
) *Person {
	return &Person{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		roleData:     roleData,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Person) ID() uuid.UUID        { return p.id }
func (p *Person) Name() string         { return p.name }
func (p *Person) Email() string        { return p.email }
func (p *Person) PasswordHash() string { return p.passwordHash }
func (p *Person) RoleData() RoleData   { return p.roleData }
func (p *Person) Role() Role           { return p.roleData.Role() }
func (p *Person) CreatedAt() time.Time { return p.createdAt }
func (p *Person) UpdatedAt() time.Time { return p.updatedAt }
