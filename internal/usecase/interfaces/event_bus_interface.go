package interfaces

import (
	"context"

	"nyumbanii_maintenance/internal/domain/entities"
)

// IEventPublisher emits domain events after state has been durably written.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.DomainEvent) error
}

// IEventConsumer delivers domain events to a handler until closed.
type IEventConsumer interface {
	Consume(handler func(ctx context.Context, event entities.DomainEvent) error) error
	Close() error
}
