package messaging

import (
	"context"
	"log"
	"sync"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

const defaultBusBuffer = 256

// ErrBusClosed is returned by Publish after Close.
var ErrBusClosed = errors.New("event bus closed")

// ErrConsumerRunning is returned by a second Consume on the same bus.
var ErrConsumerRunning = errors.New("event bus already has a consumer")

// ChannelBus is an in-process event bus used when no broker is configured. Publish
// never blocks the caller: when the buffer is full the event is dropped and logged.
type ChannelBus struct {
	mu        sync.RWMutex
	events    chan entities.DomainEvent
	closed    bool
	consuming bool
	done      chan struct{}
}

var (
	_ interfaces.IEventPublisher = (*ChannelBus)(nil)
	_ interfaces.IEventConsumer  = (*ChannelBus)(nil)
)

func NewChannelBus(buffer int) *ChannelBus {
	if buffer <= 0 {
		buffer = defaultBusBuffer
	}
	return &ChannelBus{
		events: make(chan entities.DomainEvent, buffer),
		done:   make(chan struct{}),
	}
}

func (b *ChannelBus) Publish(_ context.Context, event entities.DomainEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}
	select {
	case b.events <- event:
		return nil
	default:
		log.Printf("[messaging] bus full, dropping event event_id=%s type=%s", event.ID, event.Type)
		return errors.Errorf("event bus full, dropped %s", event.Type)
	}
}

// Consume starts a single worker that hands every event to handler until Close.
func (b *ChannelBus) Consume(handler func(ctx context.Context, event entities.DomainEvent) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.consuming {
		return ErrConsumerRunning
	}
	b.consuming = true

	go func() {
		defer close(b.done)
		for event := range b.events {
			if err := handler(context.Background(), event); err != nil {
				log.Printf("[messaging] handler failed event_id=%s type=%s err=%v", event.ID, event.Type, err)
			}
		}
	}()
	return nil
}

// Close stops accepting events. Events already buffered are still delivered when a
// consumer is running.
func (b *ChannelBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.events)
	return nil
}

// Drained is closed once the consumer worker has delivered every buffered event.
func (b *ChannelBus) Drained() <-chan struct{} {
	return b.done
}
