package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/domain/policy"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CreateRequestInput is what staff fill in when logging a new issue.
type CreateRequestInput struct {
	PropertyID  string
	UnitID      string
	TenantID    string
	Title       string
	Description string
	Priority    entities.Priority
}

// EstimateInput is a staff member's single cost estimate for a pending request.
type EstimateInput struct {
	EstimatedCost     float64
	EstimatedDuration string
	CostBreakdown     []entities.CostItem
	Notes             string
}

// QuoteInput is a vendor quote recorded by a staff member.
type QuoteInput struct {
	VendorName    string
	VendorContact string
	VendorEmail   string
	Amount        float64
	ItemizedCosts []entities.CostItem
	QuoteNumber   string
	ValidUntil    *time.Time
	Notes         string
	SubmittedBy   string
}

// CompleteWorkInput closes an in-progress request. ActualCost is optional.
type CompleteWorkInput struct {
	ActualCost     *float64
	Notes          string
	ActualDuration string
}

// EstimateOutcome is the stored request after SubmitEstimate plus the path the policy chose.
type EstimateOutcome struct {
	Request entities.MaintenanceRequest
	Path    policy.ApprovalPath
}

// QuoteOption is one pending quote in a comparison.
type QuoteOption struct {
	Quote                entities.Quote
	Best                 bool
	Expired              bool
	DifferenceFromLowest float64
}

// QuoteComparison ranks the pending quotes of a request by amount, cheapest first.
type QuoteComparison struct {
	RequestID     string
	Options       []QuoteOption
	LowestAmount  float64
	HighestAmount float64
	Savings       float64
}

// IRequestUseCase exposes the request lifecycle outside the approval edges.
type IRequestUseCase interface {
	Create(ctx context.Context, in CreateRequestInput) (entities.MaintenanceRequest, error)
	Get(ctx context.Context, id string) (entities.MaintenanceRequest, error)
	List(ctx context.Context, filter entities.RequestFilter) ([]entities.MaintenanceRequest, error)
	SubmitEstimate(ctx context.Context, id string, in EstimateInput) (EstimateOutcome, error)
	SubmitQuote(ctx context.Context, id string, in QuoteInput) (entities.Quote, error)
	ListQuotes(ctx context.Context, id string) ([]entities.Quote, error)
	CompareQuotes(ctx context.Context, id string) (QuoteComparison, error)
	StartWork(ctx context.Context, id string) (entities.MaintenanceRequest, error)
	CompleteWork(ctx context.Context, id string, in CompleteWorkInput) (entities.MaintenanceRequest, error)
	Delete(ctx context.Context, id string) error
}

type RequestUseCase struct {
	requests interfaces.IRequestRepository
	quotes   interfaces.IQuoteRepository
	settings interfaces.ISettingsProvider
	events   interfaces.IEventPublisher
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(requests interfaces.IRequestRepository, quotes interfaces.IQuoteRepository, settings interfaces.ISettingsProvider, events interfaces.IEventPublisher) *RequestUseCase {
	return &RequestUseCase{requests: requests, quotes: quotes, settings: settings, events: events}
}

func (u *RequestUseCase) Create(ctx context.Context, in CreateRequestInput) (entities.MaintenanceRequest, error) {
	in.PropertyID = strings.TrimSpace(in.PropertyID)
	in.Title = strings.TrimSpace(in.Title)
	if in.PropertyID == "" {
		return entities.MaintenanceRequest{}, newValidationError("property_id", "must not be empty")
	}
	if in.Title == "" {
		return entities.MaintenanceRequest{}, newValidationError("title", "must not be empty")
	}
	if in.Priority == "" {
		in.Priority = entities.PriorityMedium
	}
	if !in.Priority.Valid() {
		return entities.MaintenanceRequest{}, newValidationError("priority", fmt.Sprintf("unknown priority %q", in.Priority))
	}

	now := time.Now().UTC()
	r := entities.MaintenanceRequest{
		ID:          uuid.NewString(),
		PropertyID:  in.PropertyID,
		UnitID:      strings.TrimSpace(in.UnitID),
		TenantID:    strings.TrimSpace(in.TenantID),
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Priority:    in.Priority,
		Status:      entities.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.requests.Create(ctx, r)
	if err != nil {
		log.Printf("[request][usecase] create failed property_id=%s err=%v", r.PropertyID, err)
		return entities.MaintenanceRequest{}, storeError("create request", err)
	}
	log.Printf("[request][usecase] created request_id=%s property_id=%s priority=%s", created.ID, created.PropertyID, created.Priority)

	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:      entities.EventRequestCreated,
		RequestID: created.ID,
		Title:     "New maintenance request",
		Message:   created.Title,
	})
	return created, nil
}

func (u *RequestUseCase) Get(ctx context.Context, id string) (entities.MaintenanceRequest, error) {
	return loadRequest(ctx, u.requests, id)
}

func (u *RequestUseCase) List(ctx context.Context, filter entities.RequestFilter) ([]entities.MaintenanceRequest, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, newValidationError("status", fmt.Sprintf("unknown status %q", filter.Status))
	}
	requests, err := u.requests.List(ctx, filter)
	if err != nil {
		return nil, storeError("list requests", err)
	}
	return requests, nil
}

// SubmitEstimate records the estimate and applies the automation policy to it. An
// auto-approved estimate is stored as approved in the same compare-and-set on pending,
// so a lost race leaves nothing behind.
func (u *RequestUseCase) SubmitEstimate(ctx context.Context, id string, in EstimateInput) (EstimateOutcome, error) {
	if in.EstimatedCost <= 0 {
		return EstimateOutcome{}, newValidationError("estimated_cost", "must be greater than zero")
	}
	r, err := loadRequest(ctx, u.requests, id)
	if err != nil {
		return EstimateOutcome{}, err
	}
	if !entities.CanTransition(r.Status, entities.RequestStatusEstimated, r.QuotesRequired) {
		return EstimateOutcome{}, newTransitionError(r, "submit estimate", entities.RequestStatusEstimated)
	}

	cfg := u.settings.CurrentConfig()
	path := policy.DecidePath(in.EstimatedCost, cfg)
	log.Printf("[request][usecase] estimate submitted request_id=%s cost=%.2f path=%s", r.ID, in.EstimatedCost, path)

	now := time.Now().UTC()
	expected := r.Status
	r.Status = entities.RequestStatusEstimated
	r.EstimatedCost = entities.Float64Ptr(in.EstimatedCost)
	r.EstimatedDuration = strings.TrimSpace(in.EstimatedDuration)
	r.CostBreakdown = in.CostBreakdown
	r.EstimateNotes = strings.TrimSpace(in.Notes)
	r.EstimatedAt = entities.TimePtr(now)
	r.QuotesRequired = path == policy.PathRequireFormalQuotes
	r.UpdatedAt = now

	if path == policy.PathAutoApprove {
		r.Status = entities.RequestStatusApproved
		r.ApprovedCost = entities.Float64Ptr(in.EstimatedCost)
		r.ApprovedBy = entities.SystemApprover
		r.ApprovedAt = entities.TimePtr(now)
		r.ApprovalNotes = fmt.Sprintf("Auto-approved: within the %.2f approval limit", cfg.MaintenanceApprovalLimit)
	}

	saved, err := saveTransitionAs(ctx, u.requests, r, expected, "submit estimate", entities.RequestStatusEstimated)
	if err != nil {
		return EstimateOutcome{}, err
	}

	switch path {
	case policy.PathAutoApprove:
		log.Printf("[request][usecase] auto-approved request_id=%s approved_cost=%.2f", saved.ID, in.EstimatedCost)
		publishEvent(ctx, u.events, entities.DomainEvent{
			Type:             entities.EventRequestAutoApproved,
			RequestID:        saved.ID,
			RecipientStaffID: saved.AssignedTo,
			Title:            "Estimate auto-approved",
			Message:          fmt.Sprintf("Your estimate of %.2f for %q was approved automatically", in.EstimatedCost, saved.Title),
		})
	case policy.PathRequireFormalQuotes:
		publishEvent(ctx, u.events, entities.DomainEvent{
			Type:             entities.EventEstimateSubmitted,
			RequestID:        saved.ID,
			RecipientStaffID: saved.AssignedTo,
			Title:            "Formal quotes required",
			Message:          fmt.Sprintf("The estimate of %.2f for %q is above the quote threshold; collect vendor quotes", in.EstimatedCost, saved.Title),
		})
	default:
		publishEvent(ctx, u.events, entities.DomainEvent{
			Type:      entities.EventEstimateSubmitted,
			RequestID: saved.ID,
			Title:     "Estimate awaiting review",
			Message:   fmt.Sprintf("An estimate of %.2f for %q needs landlord review", in.EstimatedCost, saved.Title),
		})
	}

	return EstimateOutcome{Request: saved, Path: path}, nil
}

// SubmitQuote attaches a pending vendor quote and moves the request to quotes_submitted.
// Further quotes on a request already in quotes_submitted only bump the counter.
func (u *RequestUseCase) SubmitQuote(ctx context.Context, id string, in QuoteInput) (entities.Quote, error) {
	in.VendorName = strings.TrimSpace(in.VendorName)
	in.SubmittedBy = strings.TrimSpace(in.SubmittedBy)
	if in.VendorName == "" {
		return entities.Quote{}, newValidationError("vendor_name", "must not be empty")
	}
	if in.Amount <= 0 {
		return entities.Quote{}, newValidationError("amount", "must be greater than zero")
	}
	if in.SubmittedBy == "" {
		return entities.Quote{}, newValidationError("submitted_by", "must not be empty")
	}

	r, err := loadRequest(ctx, u.requests, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if r.Status != entities.RequestStatusQuotesSubmitted &&
		!entities.CanTransition(r.Status, entities.RequestStatusQuotesSubmitted, r.QuotesRequired) {
		return entities.Quote{}, newTransitionError(r, "submit quote", entities.RequestStatusQuotesSubmitted)
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:            uuid.NewString(),
		RequestID:     r.ID,
		VendorName:    in.VendorName,
		VendorContact: strings.TrimSpace(in.VendorContact),
		VendorEmail:   strings.TrimSpace(in.VendorEmail),
		Amount:        in.Amount,
		ItemizedCosts: in.ItemizedCosts,
		QuoteNumber:   strings.TrimSpace(in.QuoteNumber),
		ValidUntil:    in.ValidUntil,
		Notes:         strings.TrimSpace(in.Notes),
		SubmittedBy:   in.SubmittedBy,
		Status:        entities.QuoteStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	// The quote lands first: if the request is approved concurrently the quote is an
	// unselected pending sibling, which the reconciler rejects.
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed request_id=%s err=%v", r.ID, err)
		return entities.Quote{}, storeError("create quote", err)
	}

	expected := r.Status
	r.Status = entities.RequestStatusQuotesSubmitted
	r.QuotesSubmitted++
	r.UpdatedAt = now
	if _, err := saveTransition(ctx, u.requests, r, expected, "submit quote"); err != nil {
		if errors.Is(err, ErrTransition) {
			u.withdrawQuote(ctx, created)
		}
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] submitted request_id=%s quote_id=%s vendor=%q amount=%.2f", r.ID, created.ID, created.VendorName, created.Amount)

	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:      entities.EventQuoteSubmitted,
		RequestID: r.ID,
		QuoteID:   created.ID,
		Title:     "New vendor quote",
		Message:   fmt.Sprintf("%s quoted %.2f for %q", created.VendorName, created.Amount, r.Title),
	})
	return created, nil
}

func (u *RequestUseCase) withdrawQuote(ctx context.Context, q entities.Quote) {
	now := time.Now().UTC()
	q.Status = entities.QuoteStatusRejected
	q.RejectedBy = entities.SystemApprover
	q.RejectedAt = entities.TimePtr(now)
	q.RejectionReason = "Request changed before the quote was recorded"
	q.UpdatedAt = now
	if _, err := u.quotes.Save(ctx, q, entities.QuoteStatusPending); err != nil {
		log.Printf("[quote][usecase] withdraw failed quote_id=%s err=%v", q.ID, err)
	}
}

func (u *RequestUseCase) ListQuotes(ctx context.Context, id string) ([]entities.Quote, error) {
	r, err := loadRequest(ctx, u.requests, id)
	if err != nil {
		return nil, err
	}
	quotes, err := u.quotes.ListByRequestID(ctx, r.ID)
	if err != nil {
		return nil, storeError("list quotes", err)
	}
	return quotes, nil
}

func (u *RequestUseCase) CompareQuotes(ctx context.Context, id string) (QuoteComparison, error) {
	quotes, err := u.ListQuotes(ctx, id)
	if err != nil {
		return QuoteComparison{}, err
	}

	now := time.Now().UTC()
	cmp := QuoteComparison{RequestID: strings.TrimSpace(id), Options: make([]QuoteOption, 0, len(quotes))}
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusPending {
			continue
		}
		cmp.Options = append(cmp.Options, QuoteOption{Quote: q, Expired: q.Expired(now)})
	}
	if len(cmp.Options) == 0 {
		return cmp, nil
	}

	sort.SliceStable(cmp.Options, func(i, j int) bool {
		return cmp.Options[i].Quote.Amount < cmp.Options[j].Quote.Amount
	})
	cmp.LowestAmount = cmp.Options[0].Quote.Amount
	cmp.HighestAmount = cmp.Options[len(cmp.Options)-1].Quote.Amount
	cmp.Savings = cmp.HighestAmount - cmp.LowestAmount
	cmp.Options[0].Best = true
	for i := range cmp.Options {
		cmp.Options[i].DifferenceFromLowest = cmp.Options[i].Quote.Amount - cmp.LowestAmount
	}
	return cmp, nil
}

// StartWork moves a pending or approved request to in-progress.
func (u *RequestUseCase) StartWork(ctx context.Context, id string) (entities.MaintenanceRequest, error) {
	r, err := loadRequest(ctx, u.requests, id)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if !entities.CanTransition(r.Status, entities.RequestStatusInProgress, r.QuotesRequired) {
		return entities.MaintenanceRequest{}, newTransitionError(r, "start work", entities.RequestStatusInProgress)
	}

	now := time.Now().UTC()
	expected := r.Status
	r.Status = entities.RequestStatusInProgress
	r.StartedAt = entities.TimePtr(now)
	r.UpdatedAt = now
	saved, err := saveTransition(ctx, u.requests, r, expected, "start work")
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	log.Printf("[request][usecase] work started request_id=%s from=%s", saved.ID, expected)

	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:      entities.EventWorkStarted,
		RequestID: saved.ID,
		Title:     "Work started",
		Message:   fmt.Sprintf("Work on %q has started", saved.Title),
	})
	return saved, nil
}

// CompleteWork moves an in-progress request to completed.
func (u *RequestUseCase) CompleteWork(ctx context.Context, id string, in CompleteWorkInput) (entities.MaintenanceRequest, error) {
	if in.ActualCost != nil && *in.ActualCost < 0 {
		return entities.MaintenanceRequest{}, newValidationError("actual_cost", "must not be negative")
	}
	r, err := loadRequest(ctx, u.requests, id)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if !entities.CanTransition(r.Status, entities.RequestStatusCompleted, r.QuotesRequired) {
		return entities.MaintenanceRequest{}, newTransitionError(r, "complete work", entities.RequestStatusCompleted)
	}

	now := time.Now().UTC()
	r.Status = entities.RequestStatusCompleted
	if in.ActualCost != nil {
		r.ActualCost = entities.Float64Ptr(*in.ActualCost)
	}
	r.CompletionNotes = strings.TrimSpace(in.Notes)
	r.ActualDuration = strings.TrimSpace(in.ActualDuration)
	r.CompletedAt = entities.TimePtr(now)
	r.UpdatedAt = now
	saved, err := saveTransition(ctx, u.requests, r, entities.RequestStatusInProgress, "complete work")
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	log.Printf("[request][usecase] work completed request_id=%s", saved.ID)

	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:      entities.EventWorkCompleted,
		RequestID: saved.ID,
		Title:     "Work completed",
		Message:   fmt.Sprintf("Work on %q is complete", saved.Title),
	})
	return saved, nil
}

// Delete removes a non-terminal request and its quotes.
func (u *RequestUseCase) Delete(ctx context.Context, id string) error {
	r, err := loadRequest(ctx, u.requests, id)
	if err != nil {
		return err
	}
	if r.Status.Terminal() {
		return &TransitionError{RequestID: r.ID, Operation: "delete", Current: r.Status, Allowed: nonTerminalStatuses()}
	}

	if err := u.requests.Delete(ctx, r.ID, r.Status); err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			current, getErr := loadRequest(ctx, u.requests, r.ID)
			if getErr != nil {
				return getErr
			}
			return &TransitionError{RequestID: r.ID, Operation: "delete", Current: current.Status, Allowed: []entities.RequestStatus{r.Status}}
		}
		return storeError("delete request", err)
	}
	if err := u.quotes.DeleteByRequestID(ctx, r.ID); err != nil {
		log.Printf("[request][usecase] quote cleanup failed request_id=%s err=%v", r.ID, err)
		return storeError("delete quotes", err)
	}
	log.Printf("[request][usecase] deleted request_id=%s status=%s", r.ID, r.Status)

	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:             entities.EventRequestDeleted,
		RequestID:        r.ID,
		RecipientStaffID: r.AssignedTo,
		Title:            "Maintenance request removed",
		Message:          fmt.Sprintf("%q was deleted", r.Title),
	})
	return nil
}
