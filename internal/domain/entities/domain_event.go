package entities

import "time"

// EventType names a state change emitted after a durable write.
type EventType string

const (
	EventRequestCreated      EventType = "request.created"
	EventEstimateSubmitted   EventType = "estimate.submitted"
	EventRequestAutoApproved EventType = "request.auto_approved"
	EventEstimateApproved    EventType = "estimate.approved"
	EventEstimateRejected    EventType = "estimate.rejected"
	EventQuoteSubmitted      EventType = "quote.submitted"
	EventQuoteApproved       EventType = "quote.approved"
	EventQuoteRejected       EventType = "quote.rejected"
	EventRequestAssigned     EventType = "request.assigned"
	EventWorkStarted         EventType = "work.started"
	EventWorkCompleted       EventType = "work.completed"
	EventRequestDeleted      EventType = "request.deleted"
)

// DomainEvent carries what the notification consumer needs to reach a staff member.
// RecipientStaffID may be empty for events nobody is notified about.
type DomainEvent struct {
	ID               string    `json:"id"`
	Type             EventType `json:"type"`
	RequestID        string    `json:"request_id"`
	QuoteID          string    `json:"quote_id,omitempty"`
	RecipientStaffID string    `json:"recipient_staff_id,omitempty"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// RoutingKey is the topic used on the message broker.
func (e DomainEvent) RoutingKey() string {
	return "maintenance." + string(e.Type)
}
