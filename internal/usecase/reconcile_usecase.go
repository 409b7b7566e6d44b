package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"
)

const reconcileQueueSize = 256

// IReconcileUseCase finishes quote approvals whose fan-out did not fully land.
type IReconcileUseCase interface {
	IReconcileQueue
	ReconcileRequest(ctx context.Context, requestID string) (int, error)
	Sweep(ctx context.Context) (int, error)
	Run(ctx context.Context) error
}

// Reconciler re-applies the outcome of an approved quote to its siblings: the selected
// quote ends approved and every other pending quote ends rejected. Each write is a
// compare-and-set on pending, so running it repeatedly is harmless.
//
// An approved request whose selected quote ended rejected goes back to quotes_submitted.
// Past approved the work is already under way and the request is only logged.
type Reconciler struct {
	requests interfaces.IRequestRepository
	quotes   interfaces.IQuoteRepository
	interval time.Duration
	queue    chan string

	mu   sync.Mutex
	seen map[string]time.Time
}

var _ IReconcileUseCase = (*Reconciler)(nil)

func NewReconciler(requests interfaces.IRequestRepository, quotes interfaces.IQuoteRepository, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reconciler{
		requests: requests,
		quotes:   quotes,
		interval: interval,
		queue:    make(chan string, reconcileQueueSize),
		seen:     make(map[string]time.Time),
	}
}

// Enqueue never blocks. A dropped id is picked up by the next sweep.
func (r *Reconciler) Enqueue(requestID string) {
	select {
	case r.queue <- requestID:
		log.Printf("[reconcile][usecase] queued request_id=%s", requestID)
	default:
		log.Printf("[reconcile][usecase] queue full, deferring to sweep request_id=%s", requestID)
	}
}

// ReconcileRequest returns how many quotes it rewrote.
func (r *Reconciler) ReconcileRequest(ctx context.Context, requestID string) (int, error) {
	req, err := r.requests.GetByID(ctx, requestID)
	if err != nil {
		return 0, storeError("get request", err)
	}
	if req.ID == "" || !req.Status.CarriesApproval() || req.SelectedQuoteID == "" {
		return 0, nil
	}

	quotes, err := r.quotes.ListByRequestID(ctx, req.ID)
	if err != nil {
		return 0, storeError("list quotes", err)
	}

	now := time.Now().UTC()
	for _, q := range quotes {
		if q.ID != req.SelectedQuoteID || q.Status != entities.QuoteStatusRejected {
			continue
		}
		return r.withdraw(ctx, req, now)
	}

	approver := actorOrDefault(req.ApprovedBy)
	fixed := 0
	var errs []error
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusPending {
			continue
		}
		next := rejectAsSibling(q, approver, now)
		if q.ID == req.SelectedQuoteID {
			next = q
			next.Status = entities.QuoteStatusApproved
			next.ApprovedBy = approver
			next.ApprovedAt = req.ApprovedAt
			next.ApprovalNotes = req.ApprovalNotes
			next.UpdatedAt = now
		}

		_, err := r.quotes.Save(ctx, next, entities.QuoteStatusPending)
		switch {
		case err == nil:
			fixed++
			log.Printf("[reconcile][usecase] quote %s request_id=%s quote_id=%s", next.Status, req.ID, q.ID)
		case errors.Is(err, interfaces.ErrStatusConflict):
		default:
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fixed, storeError("reconcile quotes", errors.Join(errs...))
	}
	return fixed, nil
}

func (r *Reconciler) withdraw(ctx context.Context, req entities.MaintenanceRequest, now time.Time) (int, error) {
	if req.Status != entities.RequestStatusApproved {
		log.Printf("[reconcile][usecase] selected quote rejected after work started request_id=%s status=%s quote_id=%s", req.ID, req.Status, req.SelectedQuoteID)
		return 0, nil
	}
	_, err := r.requests.Save(ctx, withdrawnApproval(req, now), entities.RequestStatusApproved)
	switch {
	case err == nil:
		log.Printf("[reconcile][usecase] approval withdrawn request_id=%s quote_id=%s", req.ID, req.SelectedQuoteID)
		return 1, nil
	case errors.Is(err, interfaces.ErrStatusConflict):
		return 0, nil
	default:
		return 0, storeError("withdraw approval", err)
	}
}

// Sweep reconciles every request that carries a selected quote.
func (r *Reconciler) Sweep(ctx context.Context) (int, error) {
	requests, err := r.requests.List(ctx, entities.RequestFilter{})
	if err != nil {
		return 0, storeError("list requests", err)
	}

	total := 0
	var errs []error
	for _, req := range requests {
		if !req.Status.CarriesApproval() || req.SelectedQuoteID == "" {
			continue
		}
		n, err := r.ReconcileRequest(ctx, req.ID)
		total += n
		if err != nil {
			log.Printf("[reconcile][usecase] request failed request_id=%s err=%v", req.ID, err)
			errs = append(errs, err)
		}
	}
	if total > 0 {
		log.Printf("[reconcile][usecase] sweep fixed=%d", total)
	}
	return total, errors.Join(errs...)
}

// Run drains the queue, follows approved requests through the store subscription and
// sweeps on a ticker until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) error {
	unsubscribe := r.requests.Subscribe(ctx,
		entities.RequestFilter{Status: entities.RequestStatusApproved},
		r.onApprovedChange,
		func(err error) {
			log.Printf("[reconcile][usecase] subscription error err=%v", err)
		},
	)
	defer unsubscribe()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Printf("[reconcile][usecase] running interval=%s", r.interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[reconcile][usecase] stopped")
			return nil
		case id := <-r.queue:
			if _, err := r.ReconcileRequest(ctx, id); err != nil {
				log.Printf("[reconcile][usecase] request failed request_id=%s err=%v", id, err)
			}
		case <-ticker.C:
			if _, err := r.Sweep(ctx); err != nil {
				log.Printf("[reconcile][usecase] sweep failed err=%v", err)
			}
		}
	}
}

// onApprovedChange receives every approved request on each change; ids missing from the
// snapshot have left approved and are forgotten.
func (r *Reconciler) onApprovedChange(requests []entities.MaintenanceRequest) {
	r.mu.Lock()
	present := make(map[string]struct{}, len(requests))
	for _, req := range requests {
		present[req.ID] = struct{}{}
	}
	for id := range r.seen {
		if _, ok := present[id]; !ok {
			delete(r.seen, id)
		}
	}

	changed := make([]string, 0)
	for _, req := range requests {
		if req.SelectedQuoteID == "" {
			continue
		}
		if last, ok := r.seen[req.ID]; ok && !req.UpdatedAt.After(last) {
			continue
		}
		r.seen[req.ID] = req.UpdatedAt
		changed = append(changed, req.ID)
	}
	r.mu.Unlock()

	for _, id := range changed {
		r.Enqueue(id)
	}
}
