package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// publishEvent emits a domain event after the durable write it describes.
// Publishing never fails the calling operation.
func publishEvent(ctx context.Context, pub interfaces.IEventPublisher, ev entities.DomainEvent) {
	if pub == nil {
		return
	}
	ev.ID = uuid.NewString()
	ev.OccurredAt = time.Now().UTC()
	if err := pub.Publish(ctx, ev); err != nil {
		log.Printf("[events][usecase] publish failed type=%s request_id=%s err=%v", ev.Type, ev.RequestID, err)
		return
	}
	log.Printf("[events][usecase] published type=%s request_id=%s recipient=%s", ev.Type, ev.RequestID, ev.RecipientStaffID)
}

// allowedSources lists the statuses from which to is reachable.
func allowedSources(to entities.RequestStatus, quotesRequired bool) []entities.RequestStatus {
	out := make([]entities.RequestStatus, 0)
	for _, s := range entities.AllRequestStatuses {
		if entities.CanTransition(s, to, quotesRequired) {
			out = append(out, s)
		}
	}
	return out
}

func newTransitionError(r entities.MaintenanceRequest, op string, to entities.RequestStatus) error {
	return &TransitionError{
		RequestID: r.ID,
		Operation: op,
		Current:   r.Status,
		Allowed:   allowedSources(to, r.QuotesRequired),
	}
}

func loadRequest(ctx context.Context, repo interfaces.IRequestRepository, id string) (entities.MaintenanceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceRequest{}, newValidationError("request_id", "must not be empty")
	}
	r, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceRequest{}, storeError("get request", err)
	}
	if r.ID == "" {
		return entities.MaintenanceRequest{}, &NotFoundError{Kind: "request", ID: id}
	}
	return r, nil
}

// saveTransition writes next if the stored request still carries expected. A lost race is
// reported as a TransitionError against the status that won.
func saveTransition(ctx context.Context, repo interfaces.IRequestRepository, next entities.MaintenanceRequest, expected entities.RequestStatus, op string) (entities.MaintenanceRequest, error) {
	return saveTransitionAs(ctx, repo, next, expected, op, next.Status)
}

// saveTransitionAs is saveTransition for writes that cross more than one edge at once;
// a conflict lists the sources of edge instead of those of next.Status.
func saveTransitionAs(ctx context.Context, repo interfaces.IRequestRepository, next entities.MaintenanceRequest, expected entities.RequestStatus, op string, edge entities.RequestStatus) (entities.MaintenanceRequest, error) {
	saved, err := repo.Save(ctx, next, expected)
	if errors.Is(err, interfaces.ErrStatusConflict) {
		current, getErr := repo.GetByID(ctx, next.ID)
		if getErr != nil {
			return entities.MaintenanceRequest{}, storeError("get request", getErr)
		}
		if current.ID == "" {
			return entities.MaintenanceRequest{}, &NotFoundError{Kind: "request", ID: next.ID}
		}
		log.Printf("[request][usecase] status conflict op=%q request_id=%s expected=%s current=%s", op, next.ID, expected, current.Status)
		return entities.MaintenanceRequest{}, newTransitionError(current, op, edge)
	}
	if err != nil {
		return entities.MaintenanceRequest{}, storeError("save request", err)
	}
	if saved.ID == "" {
		return entities.MaintenanceRequest{}, &NotFoundError{Kind: "request", ID: next.ID}
	}
	return saved, nil
}
