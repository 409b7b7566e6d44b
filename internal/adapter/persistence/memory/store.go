package memory

import (
	"context"
	"sort"
	"sync"

	"nyumbanii_maintenance/internal/domain/entities"
)

// Store is an in-process document store holding requests, quotes and notifications.
// It backs STORE_DRIVER=memory and the workflow tests. Reads return copies, so callers
// never alias stored documents.
type Store struct {
	mu            sync.RWMutex
	requests      map[string]entities.MaintenanceRequest
	quotes        map[string]entities.Quote
	notifications []entities.Notification

	subMu  sync.Mutex
	subs   map[int]*subscription
	nextID int
}

func NewStore() *Store {
	return &Store{
		requests: make(map[string]entities.MaintenanceRequest),
		quotes:   make(map[string]entities.Quote),
		subs:     make(map[int]*subscription),
	}
}

// Requests returns the request repository view of the store.
func (s *Store) Requests() *RequestRepository { return &RequestRepository{store: s} }

// Quotes returns the quote repository view of the store.
func (s *Store) Quotes() *QuoteRepository { return &QuoteRepository{store: s} }

// Notifications returns the notification dispatcher view of the store.
func (s *Store) Notifications() *NotificationDispatcher { return &NotificationDispatcher{store: s} }

type subscription struct {
	filter   entities.RequestFilter
	onChange func([]entities.MaintenanceRequest)
	signal   chan struct{}
	done     chan struct{}
}

func (s *Store) subscribe(ctx context.Context, filter entities.RequestFilter, onChange func([]entities.MaintenanceRequest)) func() {
	sub := &subscription{
		filter:   filter,
		onChange: onChange,
		signal:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = sub
	s.subMu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
			close(sub.done)
		})
	}

	// Signals coalesce: a slow consumer always sees the latest snapshot, never an older one.
	sub.signal <- struct{}{}
	go func() {
		for {
			select {
			case <-ctx.Done():
				unsubscribe()
				return
			case <-sub.done:
				return
			case <-sub.signal:
				sub.onChange(s.snapshot(sub.filter))
			}
		}
	}()
	return unsubscribe
}

func (s *Store) notifySubscribers() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, sub := range s.subs {
		select {
		case sub.signal <- struct{}{}:
		default:
		}
	}
}

func (s *Store) snapshot(filter entities.RequestFilter) []entities.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.MaintenanceRequest, 0, len(s.requests))
	for _, r := range s.requests {
		if filter.Matches(r) {
			out = append(out, cloneRequest(r))
		}
	}
	sortRequests(out)
	return out
}

func sortRequests(rs []entities.MaintenanceRequest) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})
}

func cloneRequest(r entities.MaintenanceRequest) entities.MaintenanceRequest {
	r.AssignedAt = cloneTime(r.AssignedAt)
	r.EstimatedCost = cloneFloat(r.EstimatedCost)
	r.CostBreakdown = cloneItems(r.CostBreakdown)
	r.EstimatedAt = cloneTime(r.EstimatedAt)
	r.ApprovedCost = cloneFloat(r.ApprovedCost)
	r.ApprovedAt = cloneTime(r.ApprovedAt)
	r.RejectedAt = cloneTime(r.RejectedAt)
	r.StartedAt = cloneTime(r.StartedAt)
	r.ActualCost = cloneFloat(r.ActualCost)
	r.CompletedAt = cloneTime(r.CompletedAt)
	return r
}

func cloneQuote(q entities.Quote) entities.Quote {
	q.ItemizedCosts = cloneItems(q.ItemizedCosts)
	q.ValidUntil = cloneTime(q.ValidUntil)
	q.ApprovedAt = cloneTime(q.ApprovedAt)
	q.RejectedAt = cloneTime(q.RejectedAt)
	return q
}

func cloneItems(items []entities.CostItem) []entities.CostItem {
	if items == nil {
		return nil
	}
	out := make([]entities.CostItem, len(items))
	copy(out, items)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
