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

// IReconcileQueue accepts requests whose quote fan-out did not fully land.
type IReconcileQueue interface {
	Enqueue(requestID string)
}

// IApprovalUseCase resolves a request to exactly one approved cost.
//
// Every write carries a status precondition; losing a race surfaces as a TransitionError
// and nothing is written.
type IApprovalUseCase interface {
	ApproveEstimate(ctx context.Context, requestID, actor, notes string) (entities.MaintenanceRequest, error)
	RejectEstimate(ctx context.Context, requestID, actor, notes string) (entities.MaintenanceRequest, error)
	ApproveQuote(ctx context.Context, requestID, quoteID, actor, notes string) (entities.MaintenanceRequest, error)
	RejectQuote(ctx context.Context, requestID, quoteID, actor, reason string) (entities.Quote, error)
}

type ApprovalUseCase struct {
	requests   interfaces.IRequestRepository
	quotes     interfaces.IQuoteRepository
	transactor interfaces.IApprovalTransactor
	events     interfaces.IEventPublisher
	reconcile  IReconcileQueue
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

// NewApprovalUseCase wires the coordinator. transactor and reconcile may be nil: without a
// transactor quote approvals fan out as single-document writes.
func NewApprovalUseCase(
	requests interfaces.IRequestRepository,
	quotes interfaces.IQuoteRepository,
	transactor interfaces.IApprovalTransactor,
	events interfaces.IEventPublisher,
	reconcile IReconcileQueue,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		requests:   requests,
		quotes:     quotes,
		transactor: transactor,
		events:     events,
		reconcile:  reconcile,
	}
}

func (u *ApprovalUseCase) ApproveEstimate(ctx context.Context, requestID, actor, notes string) (entities.MaintenanceRequest, error) {
	log.Printf("[approval][usecase] approve-estimate start request_id=%s actor=%s", requestID, actor)
	r, err := loadRequest(ctx, u.requests, requestID)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if r.Status != entities.RequestStatusEstimated {
		return entities.MaintenanceRequest{}, &TransitionError{
			RequestID: r.ID,
			Operation: "approve estimate",
			Current:   r.Status,
			Allowed:   []entities.RequestStatus{entities.RequestStatusEstimated},
		}
	}
	if r.QuotesRequired {
		return entities.MaintenanceRequest{}, newValidationError("request", "formal vendor quotes are required for this estimate")
	}
	if r.EstimatedCost == nil {
		return entities.MaintenanceRequest{}, newValidationError("estimated_cost", "request has no estimate")
	}

	now := time.Now().UTC()
	r.Status = entities.RequestStatusApproved
	r.ApprovedCost = entities.Float64Ptr(*r.EstimatedCost)
	r.ApprovedBy = actorOrDefault(actor)
	r.ApprovedAt = entities.TimePtr(now)
	r.ApprovalNotes = strings.TrimSpace(notes)
	r.UpdatedAt = now

	saved, err := saveTransition(ctx, u.requests, r, entities.RequestStatusEstimated, "approve estimate")
	if err != nil {
		log.Printf("[approval][usecase] approve-estimate failed request_id=%s err=%v", r.ID, err)
		return entities.MaintenanceRequest{}, err
	}
	log.Printf("[approval][usecase] estimate approved request_id=%s approved_cost=%.2f", saved.ID, *saved.ApprovedCost)

	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:             entities.EventEstimateApproved,
		RequestID:        saved.ID,
		RecipientStaffID: saved.AssignedTo,
		Title:            "Estimate approved",
		Message:          fmt.Sprintf("Your estimate of %.2f for %q was approved", *saved.ApprovedCost, saved.Title),
	})
	return saved, nil
}

func (u *ApprovalUseCase) RejectEstimate(ctx context.Context, requestID, actor, notes string) (entities.MaintenanceRequest, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return entities.MaintenanceRequest{}, newValidationError("notes", "a rejection reason is required")
	}
	log.Printf("[approval][usecase] reject-estimate start request_id=%s actor=%s", requestID, actor)
	r, err := loadRequest(ctx, u.requests, requestID)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if !entities.CanTransition(r.Status, entities.RequestStatusEstimateRejected, r.QuotesRequired) {
		return entities.MaintenanceRequest{}, newTransitionError(r, "reject estimate", entities.RequestStatusEstimateRejected)
	}

	now := time.Now().UTC()
	r.Status = entities.RequestStatusEstimateRejected
	r.RejectionNotes = notes
	r.RejectedAt = entities.TimePtr(now)
	r.UpdatedAt = now

	saved, err := saveTransition(ctx, u.requests, r, entities.RequestStatusEstimated, "reject estimate")
	if err != nil {
		log.Printf("[approval][usecase] reject-estimate failed request_id=%s err=%v", r.ID, err)
		return entities.MaintenanceRequest{}, err
	}
	log.Printf("[approval][usecase] estimate rejected request_id=%s", saved.ID)

	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:             entities.EventEstimateRejected,
		RequestID:        saved.ID,
		RecipientStaffID: saved.AssignedTo,
		Title:            "Estimate rejected",
		Message:          fmt.Sprintf("Your estimate for %q was rejected: %s", saved.Title, notes),
	})
	return saved, nil
}

// ApproveQuote selects the winning quote and rejects every other pending quote.
//
// The request write (quotes_submitted -> approved) is the commit point. With a transactor
// all writes land atomically; otherwise the winner and the siblings follow one by one, and
// any of those that fail are reported in a PartialFailureError while the request is queued
// for reconciliation. The returned request is valid in both cases.
//
// A winner that is no longer pending when its write lands undoes the commit: the request
// goes back to quotes_submitted and the caller gets a ValidationError.
func (u *ApprovalUseCase) ApproveQuote(ctx context.Context, requestID, quoteID, actor, notes string) (entities.MaintenanceRequest, error) {
	log.Printf("[approval][usecase] approve-quote start request_id=%s quote_id=%s actor=%s", requestID, quoteID, actor)
	r, err := loadRequest(ctx, u.requests, requestID)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if r.Status != entities.RequestStatusQuotesSubmitted {
		return entities.MaintenanceRequest{}, &TransitionError{
			RequestID: r.ID,
			Operation: "approve quote",
			Current:   r.Status,
			Allowed:   []entities.RequestStatus{entities.RequestStatusQuotesSubmitted},
		}
	}
	winner, err := u.loadQuote(ctx, r.ID, quoteID)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if winner.Status != entities.QuoteStatusPending {
		return entities.MaintenanceRequest{}, newValidationError("quote", fmt.Sprintf("quote is already %s", winner.Status))
	}

	all, err := u.quotes.ListByRequestID(ctx, r.ID)
	if err != nil {
		return entities.MaintenanceRequest{}, storeError("list quotes", err)
	}

	now := time.Now().UTC()
	approver := actorOrDefault(actor)
	notes = strings.TrimSpace(notes)

	next := r
	next.Status = entities.RequestStatusApproved
	next.ApprovedCost = entities.Float64Ptr(winner.Amount)
	next.ApprovedVendor = winner.VendorName
	next.ApprovedBy = approver
	next.ApprovedAt = entities.TimePtr(now)
	next.ApprovalNotes = notes
	next.SelectedQuoteID = winner.ID
	next.UpdatedAt = now

	winner.Status = entities.QuoteStatusApproved
	winner.ApprovedBy = approver
	winner.ApprovedAt = entities.TimePtr(now)
	winner.ApprovalNotes = notes
	winner.UpdatedAt = now

	siblings := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if q.ID == winner.ID || q.Status != entities.QuoteStatusPending {
			continue
		}
		siblings = append(siblings, rejectAsSibling(q, approver, now))
	}

	if u.transactor != nil && 2+len(siblings) <= u.transactor.MaxItems() {
		return u.commitAtomically(ctx, next, winner, siblings)
	}

	saved, err := saveTransition(ctx, u.requests, next, entities.RequestStatusQuotesSubmitted, "approve quote")
	if err != nil {
		log.Printf("[approval][usecase] approve-quote commit failed request_id=%s err=%v", r.ID, err)
		return entities.MaintenanceRequest{}, err
	}
	log.Printf("[approval][usecase] request approved request_id=%s quote_id=%s siblings=%d", saved.ID, winner.ID, len(siblings))

	failed := make(map[string]error)
	_, err = u.quotes.Save(ctx, winner, entities.QuoteStatusPending)
	switch {
	case errors.Is(err, interfaces.ErrStatusConflict):
		return entities.MaintenanceRequest{}, u.withdrawApproval(ctx, saved, winner.ID)
	case err != nil:
		log.Printf("[approval][usecase] winner write failed request_id=%s quote_id=%s err=%v", saved.ID, winner.ID, err)
		failed[winner.ID] = err
	}
	rejected := make([]entities.Quote, 0, len(siblings))
	for _, q := range siblings {
		_, err := u.quotes.Save(ctx, q, entities.QuoteStatusPending)
		switch {
		case err == nil:
			rejected = append(rejected, q)
		case errors.Is(err, interfaces.ErrStatusConflict):
			// Already resolved by someone else; nothing is left pending.
		default:
			log.Printf("[approval][usecase] sibling write failed request_id=%s quote_id=%s err=%v", saved.ID, q.ID, err)
			failed[q.ID] = err
		}
	}

	u.publishQuoteOutcome(ctx, saved, winner, rejected)

	if len(failed) > 0 {
		if u.reconcile != nil {
			u.reconcile.Enqueue(saved.ID)
		}
		return saved, &PartialFailureError{RequestID: saved.ID, Failed: failed}
	}
	return saved, nil
}

// withdrawApproval puts an approved request back to quotes_submitted after its selected
// quote was resolved elsewhere. A failed rollback is left to the reconciler.
func (u *ApprovalUseCase) withdrawApproval(ctx context.Context, approved entities.MaintenanceRequest, quoteID string) error {
	log.Printf("[approval][usecase] winner no longer pending, withdrawing approval request_id=%s quote_id=%s", approved.ID, quoteID)
	restored := withdrawnApproval(approved, time.Now().UTC())
	if _, err := u.requests.Save(ctx, restored, entities.RequestStatusApproved); err != nil {
		log.Printf("[approval][usecase] withdraw failed request_id=%s err=%v", approved.ID, err)
		if u.reconcile != nil {
			u.reconcile.Enqueue(approved.ID)
		}
	}
	return newValidationError("quote", "quote is no longer pending")
}

func (u *ApprovalUseCase) commitAtomically(ctx context.Context, next entities.MaintenanceRequest, winner entities.Quote, siblings []entities.Quote) (entities.MaintenanceRequest, error) {
	err := u.transactor.CommitQuoteApproval(ctx, interfaces.QuoteApprovalCommit{
		Request:         next,
		ExpectedStatus:  entities.RequestStatusQuotesSubmitted,
		Winner:          winner,
		RejectedSibling: siblings,
	})
	if errors.Is(err, interfaces.ErrStatusConflict) {
		current, getErr := loadRequest(ctx, u.requests, next.ID)
		if getErr != nil {
			return entities.MaintenanceRequest{}, getErr
		}
		log.Printf("[approval][usecase] approve-quote transaction conflict request_id=%s current=%s", next.ID, current.Status)
		return entities.MaintenanceRequest{}, newTransitionError(current, "approve quote", entities.RequestStatusApproved)
	}
	if err != nil {
		log.Printf("[approval][usecase] approve-quote transaction failed request_id=%s err=%v", next.ID, err)
		return entities.MaintenanceRequest{}, storeError("commit quote approval", err)
	}
	log.Printf("[approval][usecase] request approved atomically request_id=%s quote_id=%s siblings=%d", next.ID, winner.ID, len(siblings))

	u.publishQuoteOutcome(ctx, next, winner, siblings)
	return next, nil
}

func (u *ApprovalUseCase) publishQuoteOutcome(ctx context.Context, r entities.MaintenanceRequest, winner entities.Quote, rejected []entities.Quote) {
	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:             entities.EventQuoteApproved,
		RequestID:        r.ID,
		QuoteID:          winner.ID,
		RecipientStaffID: winner.SubmittedBy,
		Title:            "Quote approved",
		Message:          fmt.Sprintf("The %s quote of %.2f for %q was approved", winner.VendorName, winner.Amount, r.Title),
	})
	for _, q := range rejected {
		publishEvent(ctx, u.events, entities.DomainEvent{
			Type:             entities.EventQuoteRejected,
			RequestID:        r.ID,
			QuoteID:          q.ID,
			RecipientStaffID: q.SubmittedBy,
			Title:            "Quote not selected",
			Message:          fmt.Sprintf("The %s quote for %q was not selected: %s", q.VendorName, r.Title, q.RejectionReason),
		})
	}
}

// RejectQuote rejects a single pending quote. The parent request keeps its status.
// Once the request carries an approval its quotes are settled and only the reconciler
// rewrites them.
func (u *ApprovalUseCase) RejectQuote(ctx context.Context, requestID, quoteID, actor, reason string) (entities.Quote, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Quote{}, newValidationError("reason", "a rejection reason is required")
	}
	log.Printf("[approval][usecase] reject-quote start request_id=%s quote_id=%s actor=%s", requestID, quoteID, actor)
	r, err := loadRequest(ctx, u.requests, requestID)
	if err != nil {
		return entities.Quote{}, err
	}
	q, err := u.loadQuote(ctx, r.ID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if r.Status.CarriesApproval() || r.SelectedQuoteID == q.ID {
		return entities.Quote{}, &TransitionError{
			RequestID: r.ID,
			Operation: "reject quote",
			Current:   r.Status,
			Allowed:   []entities.RequestStatus{entities.RequestStatusQuotesSubmitted},
		}
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, newValidationError("quote", fmt.Sprintf("quote is already %s", q.Status))
	}

	now := time.Now().UTC()
	q.Status = entities.QuoteStatusRejected
	q.RejectedBy = actorOrDefault(actor)
	q.RejectedAt = entities.TimePtr(now)
	q.RejectionReason = reason
	q.UpdatedAt = now

	saved, err := u.quotes.Save(ctx, q, entities.QuoteStatusPending)
	if errors.Is(err, interfaces.ErrStatusConflict) {
		return entities.Quote{}, newValidationError("quote", "quote is no longer pending")
	}
	if err != nil {
		log.Printf("[approval][usecase] reject-quote failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, storeError("save quote", err)
	}
	if saved.ID == "" {
		return entities.Quote{}, &NotFoundError{Kind: "quote", ID: q.ID}
	}
	log.Printf("[approval][usecase] quote rejected request_id=%s quote_id=%s", r.ID, saved.ID)

	publishEvent(ctx, u.events, entities.DomainEvent{
		Type:             entities.EventQuoteRejected,
		RequestID:        r.ID,
		QuoteID:          saved.ID,
		RecipientStaffID: saved.SubmittedBy,
		Title:            "Quote rejected",
		Message:          fmt.Sprintf("The %s quote for %q was rejected: %s", saved.VendorName, r.Title, reason),
	})
	return saved, nil
}

func (u *ApprovalUseCase) loadQuote(ctx context.Context, requestID, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, newValidationError("quote_id", "must not be empty")
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, storeError("get quote", err)
	}
	if q.ID == "" || q.RequestID != requestID {
		return entities.Quote{}, &NotFoundError{Kind: "quote", ID: quoteID}
	}
	return q, nil
}

// withdrawnApproval is r back in quotes_submitted with its approval cleared.
func withdrawnApproval(r entities.MaintenanceRequest, at time.Time) entities.MaintenanceRequest {
	r.Status = entities.RequestStatusQuotesSubmitted
	r.ApprovedCost = nil
	r.ApprovedVendor = ""
	r.ApprovedBy = ""
	r.ApprovedAt = nil
	r.ApprovalNotes = ""
	r.SelectedQuoteID = ""
	r.UpdatedAt = at
	return r
}

func rejectAsSibling(q entities.Quote, approver string, at time.Time) entities.Quote {
	q.Status = entities.QuoteStatusRejected
	q.RejectedBy = approver
	q.RejectedAt = entities.TimePtr(at)
	q.RejectionReason = entities.SiblingRejectionReason
	q.UpdatedAt = at
	return q
}

// DefaultActor is recorded when a caller does not identify itself.
const DefaultActor = "landlord"

func actorOrDefault(actor string) string {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return DefaultActor
	}
	return actor
}
