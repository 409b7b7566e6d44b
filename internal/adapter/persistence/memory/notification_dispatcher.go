package memory

import (
	"context"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"
)

type NotificationDispatcher struct {
	store *Store
}

var _ interfaces.INotificationDispatcher = (*NotificationDispatcher)(nil)

func (d *NotificationDispatcher) Enqueue(_ context.Context, n entities.Notification) error {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	d.store.notifications = append(d.store.notifications, n)
	return nil
}

// ByUser returns the notifications delivered to userID in delivery order.
func (d *NotificationDispatcher) ByUser(userID string) []entities.Notification {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()
	out := make([]entities.Notification, 0)
	for _, n := range d.store.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
