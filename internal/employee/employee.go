package employee

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role is what an employee may do in the portal.
type Role string

const (
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleCashier
}

var (
	ErrNotFound     = errors.New("employee not found")
	ErrMissingField = errors.New("missing required field")
	ErrInvalidRole  = errors.New("invalid employee role")
)

// Employee is a staff member of a store with portal access.
type Employee struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Email     string
	Role      Role
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
