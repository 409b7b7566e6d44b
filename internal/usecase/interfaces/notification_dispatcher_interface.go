package interfaces

import (
	"context"

	"nyumbanii_maintenance/internal/domain/entities"
)

// INotificationDispatcher delivers user notifications. Delivery is best-effort.
type INotificationDispatcher interface {
	Enqueue(ctx context.Context, n entities.Notification) error
}
