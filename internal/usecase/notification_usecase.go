package usecase

import (
	"context"
	"log"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// INotificationUseCase turns domain events into portal notifications.
type INotificationUseCase interface {
	HandleEvent(ctx context.Context, event entities.DomainEvent) error
	Start(consumer interfaces.IEventConsumer) error
}

type NotificationUseCase struct {
	staff      interfaces.IStaffDirectory
	dispatcher interfaces.INotificationDispatcher
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(staff interfaces.IStaffDirectory, dispatcher interfaces.INotificationDispatcher) *NotificationUseCase {
	return &NotificationUseCase{staff: staff, dispatcher: dispatcher}
}

// HandleEvent resolves the recipient staff member to a portal account and enqueues the
// notification. Delivery is best-effort: every failure is logged and swallowed so the
// state change that produced the event is never affected.
func (u *NotificationUseCase) HandleEvent(ctx context.Context, event entities.DomainEvent) error {
	if event.RecipientStaffID == "" {
		return nil
	}

	member, err := u.staff.Lookup(ctx, event.RecipientStaffID)
	if err != nil {
		log.Printf("[notification][usecase] staff lookup failed staff_id=%s type=%s err=%v", event.RecipientStaffID, event.Type, err)
		return nil
	}
	if !member.HasPortalAccount() {
		log.Printf("[notification][usecase] skip, no portal account staff_id=%s type=%s", event.RecipientStaffID, event.Type)
		return nil
	}

	n := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    member.UserID,
		Title:     event.Title,
		Message:   event.Message,
		Type:      string(event.Type),
		RelatedID: event.RequestID,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.dispatcher.Enqueue(ctx, n); err != nil {
		log.Printf("[notification][usecase] dispatch failed user_id=%s type=%s request_id=%s err=%v", n.UserID, event.Type, event.RequestID, err)
		return nil
	}
	log.Printf("[notification][usecase] dispatched user_id=%s type=%s request_id=%s", n.UserID, event.Type, event.RequestID)
	return nil
}

// Start hands HandleEvent to the consumer; events keep flowing until the consumer is closed.
func (u *NotificationUseCase) Start(consumer interfaces.IEventConsumer) error {
	return consumer.Consume(u.HandleEvent)
}
