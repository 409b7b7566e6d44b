package interfaces

import (
	"context"

	"nyumbanii_maintenance/internal/domain/entities"
)

// IStaffDirectory resolves staff members. A missing member is a zero value, not an error.
type IStaffDirectory interface {
	Lookup(ctx context.Context, staffID string) (entities.Staff, error)
}
