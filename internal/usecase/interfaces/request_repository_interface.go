package interfaces

import (
	"context"
	"errors"

	"nyumbanii_maintenance/internal/domain/entities"
)

// ErrStatusConflict is returned by conditional writes when the stored document no longer
// carries the expected status.
var ErrStatusConflict = errors.New("stored status does not match expected status")

// IRequestRepository abstracts document-store persistence for MaintenanceRequest.
//
// Lookups return a zero-value request (empty ID) when the document does not exist.
// Save is a compare-and-set: the write lands only if the stored status still equals
// expected, otherwise ErrStatusConflict. A missing document yields a zero value.
type IRequestRepository interface {
	Create(ctx context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error)
	GetByID(ctx context.Context, id string) (entities.MaintenanceRequest, error)
	List(ctx context.Context, filter entities.RequestFilter) ([]entities.MaintenanceRequest, error)
	Save(ctx context.Context, r entities.MaintenanceRequest, expected entities.RequestStatus) (entities.MaintenanceRequest, error)
	Delete(ctx context.Context, id string, expected entities.RequestStatus) error
	Subscribe(ctx context.Context, filter entities.RequestFilter, onChange func([]entities.MaintenanceRequest), onError func(error)) (unsubscribe func())
}
