package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"
)

// assignAttempts bounds retries when the request changes status between read and write.
const assignAttempts = 3

type IAssignmentUseCase interface {
	Assign(ctx context.Context, requestID, staffID string) (entities.MaintenanceRequest, error)
}

type AssignmentUseCase struct {
	requests interfaces.IRequestRepository
	staff    interfaces.IStaffDirectory
	events   interfaces.IEventPublisher
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(requests interfaces.IRequestRepository, staff interfaces.IStaffDirectory, events interfaces.IEventPublisher) *AssignmentUseCase {
	return &AssignmentUseCase{requests: requests, staff: staff, events: events}
}

// Assign hands a request to a staff member. The status is left untouched; only completed
// requests refuse a new assignee.
func (u *AssignmentUseCase) Assign(ctx context.Context, requestID, staffID string) (entities.MaintenanceRequest, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return entities.MaintenanceRequest{}, newValidationError("staff_id", "must not be empty")
	}

	member, err := u.staff.Lookup(ctx, staffID)
	if err != nil {
		log.Printf("[assignment][usecase] staff lookup failed staff_id=%s err=%v", staffID, err)
		return entities.MaintenanceRequest{}, storeError("lookup staff", err)
	}
	if member.ID == "" {
		return entities.MaintenanceRequest{}, &NotFoundError{Kind: "staff", ID: staffID}
	}

	var saved entities.MaintenanceRequest
	for attempt := 1; ; attempt++ {
		r, err := loadRequest(ctx, u.requests, requestID)
		if err != nil {
			return entities.MaintenanceRequest{}, err
		}
		if r.Status.Terminal() {
			return entities.MaintenanceRequest{}, &TransitionError{
				RequestID: r.ID,
				Operation: "assign",
				Current:   r.Status,
				Allowed:   nonTerminalStatuses(),
			}
		}

		now := time.Now().UTC()
		r.AssignedTo = member.ID
		r.AssignedToName = member.Name
		r.AssignedAt = entities.TimePtr(now)
		r.UpdatedAt = now

		saved, err = u.requests.Save(ctx, r, r.Status)
		if errors.Is(err, interfaces.ErrStatusConflict) && attempt < assignAttempts {
			log.Printf("[assignment][usecase] status moved, retrying request_id=%s attempt=%d", r.ID, attempt)
			continue
		}
		if errors.Is(err, interfaces.ErrStatusConflict) {
			return entities.MaintenanceRequest{}, &TransitionError{RequestID: r.ID, Operation: "assign", Current: r.Status, Allowed: nonTerminalStatuses()}
		}
		if err != nil {
			return entities.MaintenanceRequest{}, storeError("save request", err)
		}
		if saved.ID == "" {
			return entities.MaintenanceRequest{}, &NotFoundError{Kind: "request", ID: r.ID}
		}
		break
	}
	log.Printf("[assignment][usecase] assigned request_id=%s staff_id=%s", saved.ID, member.ID)

	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:             entities.EventRequestAssigned,
		RequestID:        saved.ID,
		RecipientStaffID: member.ID,
		Title:            "New maintenance assignment",
		Message:          fmt.Sprintf("You have been assigned %q (%s priority)", saved.Title, saved.Priority),
	})
	return saved, nil
}

func nonTerminalStatuses() []entities.RequestStatus {
	out := make([]entities.RequestStatus, 0, len(entities.AllRequestStatuses))
	for _, s := range entities.AllRequestStatuses {
		if !s.Terminal() {
			out = append(out, s)
		}
	}
	return out
}
