package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"
)

func TestRequestRepository_SaveCompareAndSet(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Requests()

	req := entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending, CreatedAt: time.Now()}
	if _, err := repo.Create(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("stale expected status", func(t *testing.T) {
		next := req
		next.Status = entities.RequestStatusInProgress
		_, err := repo.Save(ctx, next, entities.RequestStatusApproved)
		if !errors.Is(err, interfaces.ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
		stored, _ := repo.GetByID(ctx, "r1")
		if stored.Status != entities.RequestStatusPending {
			t.Fatalf("document must be unchanged, got %s", stored.Status)
		}
	})

	t.Run("missing document", func(t *testing.T) {
		res, err := repo.Save(ctx, entities.MaintenanceRequest{ID: "missing"}, entities.RequestStatusPending)
		if err != nil || res.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", res, err)
		}
	})

	t.Run("matching status", func(t *testing.T) {
		next := req
		next.Status = entities.RequestStatusInProgress
		if _, err := repo.Save(ctx, next, entities.RequestStatusPending); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, _ := repo.GetByID(ctx, "r1")
		if stored.Status != entities.RequestStatusInProgress {
			t.Fatalf("expected in-progress, got %s", stored.Status)
		}
	})
}

func TestRequestRepository_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Requests()
	_, _ = repo.Create(ctx, entities.MaintenanceRequest{ID: "r1", EstimatedCost: entities.Float64Ptr(10)})

	got, _ := repo.GetByID(ctx, "r1")
	*got.EstimatedCost = 99

	again, _ := repo.GetByID(ctx, "r1")
	if *again.EstimatedCost != 10 {
		t.Fatalf("stored document was mutated through a read: %v", *again.EstimatedCost)
	}
}

func TestRequestRepository_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	repo := NewStore().Requests()

	updates := make(chan []entities.MaintenanceRequest, 16)
	unsubscribe := repo.Subscribe(ctx, entities.RequestFilter{Status: entities.RequestStatusApproved},
		func(rs []entities.MaintenanceRequest) { updates <- rs }, nil)
	defer unsubscribe()

	waitFor := func(want int) {
		t.Helper()
		deadline := time.After(2 * time.Second)
		for {
			select {
			case rs := <-updates:
				if len(rs) == want {
					return
				}
			case <-deadline:
				t.Fatalf("timed out waiting for %d approved requests", want)
			}
		}
	}

	waitFor(0)
	_, _ = repo.Create(ctx, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusApproved})
	waitFor(1)
	_, _ = repo.Create(ctx, entities.MaintenanceRequest{ID: "r2", Status: entities.RequestStatusPending})
	_, _ = repo.Create(ctx, entities.MaintenanceRequest{ID: "r3", Status: entities.RequestStatusApproved})
	waitFor(2)
}

func TestQuoteRepository_ListByRequestID(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Quotes()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, _ = repo.Create(ctx, entities.Quote{ID: "q2", RequestID: "r1", CreatedAt: base.Add(time.Minute)})
	_, _ = repo.Create(ctx, entities.Quote{ID: "q1", RequestID: "r1", CreatedAt: base})
	_, _ = repo.Create(ctx, entities.Quote{ID: "q3", RequestID: "r2", CreatedAt: base})

	quotes, err := repo.ListByRequestID(ctx, "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 || quotes[0].ID != "q1" || quotes[1].ID != "q2" {
		t.Fatalf("unexpected quotes: %+v", quotes)
	}

	if err := repo.DeleteByRequestID(ctx, "r1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	quotes, _ = repo.ListByRequestID(ctx, "r1")
	if len(quotes) != 0 {
		t.Fatalf("expected quotes removed, got %d", len(quotes))
	}
}
