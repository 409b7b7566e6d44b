package memory

import (
	"context"
	"errors"
	"sort"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"
)

var errQuoteExists = errors.New("quote already exists")

type QuoteRepository struct {
	store *Store
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func (r *QuoteRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.quotes[q.ID]; ok {
		return entities.Quote{}, errQuoteExists
	}
	r.store.quotes[q.ID] = cloneQuote(q)
	return q, nil
}

func (r *QuoteRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	q, ok := r.store.quotes[id]
	if !ok {
		return entities.Quote{}, nil
	}
	return cloneQuote(q), nil
}

func (r *QuoteRepository) ListByRequestID(_ context.Context, requestID string) ([]entities.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.Quote, 0)
	for _, q := range r.store.quotes {
		if q.RequestID == requestID {
			out = append(out, cloneQuote(q))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *QuoteRepository) Save(_ context.Context, q entities.Quote, expected entities.QuoteStatus) (entities.Quote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.quotes[q.ID]
	if !ok {
		return entities.Quote{}, nil
	}
	if current.Status != expected {
		return entities.Quote{}, interfaces.ErrStatusConflict
	}
	r.store.quotes[q.ID] = cloneQuote(q)
	return q, nil
}

func (r *QuoteRepository) DeleteByRequestID(_ context.Context, requestID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, q := range r.store.quotes {
		if q.RequestID == requestID {
			delete(r.store.quotes, id)
		}
	}
	return nil
}
