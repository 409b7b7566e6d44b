package memory

import (
	"context"
	"errors"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"
)

var errRequestExists = errors.New("request already exists")

type RequestRepository struct {
	store *Store
}

var _ interfaces.IRequestRepository = (*RequestRepository)(nil)

func (r *RequestRepository) Create(_ context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	r.store.mu.Lock()
	if _, ok := r.store.requests[req.ID]; ok {
		r.store.mu.Unlock()
		return entities.MaintenanceRequest{}, errRequestExists
	}
	r.store.requests[req.ID] = cloneRequest(req)
	r.store.mu.Unlock()

	r.store.notifySubscribers()
	return req, nil
}

func (r *RequestRepository) GetByID(_ context.Context, id string) (entities.MaintenanceRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	req, ok := r.store.requests[id]
	if !ok {
		return entities.MaintenanceRequest{}, nil
	}
	return cloneRequest(req), nil
}

func (r *RequestRepository) List(_ context.Context, filter entities.RequestFilter) ([]entities.MaintenanceRequest, error) {
	return r.store.snapshot(filter), nil
}

func (r *RequestRepository) Save(_ context.Context, req entities.MaintenanceRequest, expected entities.RequestStatus) (entities.MaintenanceRequest, error) {
	r.store.mu.Lock()
	current, ok := r.store.requests[req.ID]
	if !ok {
		r.store.mu.Unlock()
		return entities.MaintenanceRequest{}, nil
	}
	if current.Status != expected {
		r.store.mu.Unlock()
		return entities.MaintenanceRequest{}, interfaces.ErrStatusConflict
	}
	r.store.requests[req.ID] = cloneRequest(req)
	r.store.mu.Unlock()

	r.store.notifySubscribers()
	return req, nil
}

func (r *RequestRepository) Delete(_ context.Context, id string, expected entities.RequestStatus) error {
	r.store.mu.Lock()
	current, ok := r.store.requests[id]
	if !ok {
		r.store.mu.Unlock()
		return nil
	}
	if current.Status != expected {
		r.store.mu.Unlock()
		return interfaces.ErrStatusConflict
	}
	delete(r.store.requests, id)
	r.store.mu.Unlock()

	r.store.notifySubscribers()
	return nil
}

func (r *RequestRepository) Subscribe(ctx context.Context, filter entities.RequestFilter, onChange func([]entities.MaintenanceRequest), _ func(error)) func() {
	return r.store.subscribe(ctx, filter, onChange)
}
