package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nyumbanii_maintenance/internal/adapter/persistence/memory"
	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/domain/policy"
	"nyumbanii_maintenance/internal/usecase/interfaces"
	mock_interfaces "nyumbanii_maintenance/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type eventLog struct {
	mu     sync.Mutex
	events []entities.DomainEvent
}

func (l *eventLog) ofType(t entities.EventType) []entities.DomainEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entities.DomainEvent, 0)
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func recordingPublisher(ctrl *gomock.Controller) (*mock_interfaces.MockIEventPublisher, *eventLog) {
	pub := mock_interfaces.NewMockIEventPublisher(ctrl)
	l := &eventLog{}
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.DomainEvent) error {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.events = append(l.events, e)
			return nil
		},
	).AnyTimes()
	return pub, l
}

func fixedSettings(ctrl *gomock.Controller, cfg entities.AutomatedWorkflowConfig) *mock_interfaces.MockISettingsProvider {
	settings := mock_interfaces.NewMockISettingsProvider(ctrl)
	settings.EXPECT().CurrentConfig().Return(cfg).AnyTimes()
	return settings
}

func seedRequest(t *testing.T, store *memory.Store, r entities.MaintenanceRequest) entities.MaintenanceRequest {
	t.Helper()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
		r.UpdatedAt = r.CreatedAt
	}
	if r.Title == "" {
		r.Title = "Leaking sink"
	}
	created, err := store.Requests().Create(context.Background(), r)
	if err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return created
}

func mustGet(t *testing.T, store *memory.Store, id string) entities.MaintenanceRequest {
	t.Helper()
	r, err := store.Requests().GetByID(context.Background(), id)
	if err != nil || r.ID == "" {
		t.Fatalf("request %s not found: %v", id, err)
	}
	return r
}

func TestRequestUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil)
		_, err := uc.Create(ctx, CreateRequestInput{PropertyID: "p1", Title: "  "})
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "title" {
			t.Fatalf("expected title ValidationError, got %v", err)
		}
	})

	t.Run("unknown priority", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil)
		_, err := uc.Create(ctx, CreateRequestInput{PropertyID: "p1", Title: "Broken door", Priority: "urgent"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.MaintenanceRequest{}, errors.New("db"))
		uc := NewRequestUseCase(repo, nil, nil, nil)

		_, err := uc.Create(ctx, CreateRequestInput{PropertyID: "p1", Title: "Broken door"})
		if !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		pub, events := recordingPublisher(ctrl)
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, pub)

		r, err := uc.Create(ctx, CreateRequestInput{PropertyID: " p1 ", Title: "Broken door"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID == "" || r.Status != entities.RequestStatusPending || r.Priority != entities.PriorityMedium || r.PropertyID != "p1" {
			t.Fatalf("unexpected request: %+v", r)
		}
		if len(events.ofType(entities.EventRequestCreated)) != 1 {
			t.Fatalf("expected request.created event")
		}
	})
}

func TestRequestUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, nil)
		_, err := uc.Get(context.Background(), "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.MaintenanceRequest{}, errors.New("timeout"))
		uc := NewRequestUseCase(repo, nil, nil, nil)

		_, err := uc.Get(context.Background(), "r1")
		var sErr *StoreError
		if !errors.As(err, &sErr) || sErr.Err.Error() != "timeout" {
			t.Fatalf("expected StoreError wrapping timeout, got %v", err)
		}
	})
}

func TestRequestUseCase_SubmitEstimate(t *testing.T) {
	ctx := context.Background()
	cfg := entities.AutomatedWorkflowConfig{
		AutoApproveMaintenance:   true,
		MaintenanceApprovalLimit: 5000,
		QuoteRequiredThreshold:   10000,
	}

	t.Run("auto-approves within the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		pub, events := recordingPublisher(ctrl)
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), fixedSettings(ctrl, cfg), pub)
		seeded := seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending, AssignedTo: "staff-1"})

		out, err := uc.SubmitEstimate(ctx, seeded.ID, EstimateInput{EstimatedCost: 3000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Path != policy.PathAutoApprove {
			t.Fatalf("expected auto-approve, got %s", out.Path)
		}
		stored := mustGet(t, store, "r1")
		if stored.Status != entities.RequestStatusApproved || stored.ApprovedBy != entities.SystemApprover {
			t.Fatalf("unexpected request: %+v", stored)
		}
		if stored.ApprovedCost == nil || *stored.ApprovedCost != 3000 {
			t.Fatalf("expected approved cost 3000, got %v", stored.ApprovedCost)
		}
		auto := events.ofType(entities.EventRequestAutoApproved)
		if len(auto) != 1 || auto[0].RecipientStaffID != "staff-1" {
			t.Fatalf("expected auto-approval event to assignee, got %+v", auto)
		}
	})

	t.Run("mandates quotes above the threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		pub, _ := recordingPublisher(ctrl)
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), fixedSettings(ctrl, cfg), pub)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending})

		out, err := uc.SubmitEstimate(ctx, "r1", EstimateInput{EstimatedCost: 12000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Path != policy.PathRequireFormalQuotes {
			t.Fatalf("expected formal quotes, got %s", out.Path)
		}
		stored := mustGet(t, store, "r1")
		if stored.Status != entities.RequestStatusEstimated || !stored.QuotesRequired || stored.ApprovedCost != nil {
			t.Fatalf("unexpected request: %+v", stored)
		}

		if _, err := uc.SubmitQuote(ctx, "r1", QuoteInput{VendorName: "Acme", Amount: 11500, SubmittedBy: "staff-1"}); err != nil {
			t.Fatalf("quote after mandated quotes should be accepted: %v", err)
		}
		if got := mustGet(t, store, "r1"); got.Status != entities.RequestStatusQuotesSubmitted || got.QuotesSubmitted != 1 {
			t.Fatalf("unexpected request after quote: %+v", got)
		}
	})

	t.Run("landlord review leaves request estimated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		pub, _ := recordingPublisher(ctrl)
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), fixedSettings(ctrl, cfg), pub)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending})

		out, err := uc.SubmitEstimate(ctx, "r1", EstimateInput{EstimatedCost: 7000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Path != policy.PathRequireLandlordReview || out.Request.Status != entities.RequestStatusEstimated {
			t.Fatalf("unexpected outcome: %+v", out)
		}

		_, err = uc.SubmitQuote(ctx, "r1", QuoteInput{VendorName: "Acme", Amount: 7000, SubmittedBy: "staff-1"})
		if !errors.Is(err, ErrTransition) {
			t.Fatalf("expected ErrTransition for an unrequested quote, got %v", err)
		}
	})

	t.Run("wrong source status writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), fixedSettings(ctrl, cfg), nil)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusInProgress})

		_, err := uc.SubmitEstimate(ctx, "r1", EstimateInput{EstimatedCost: 100})
		var tErr *TransitionError
		if !errors.As(err, &tErr) || tErr.Current != entities.RequestStatusInProgress {
			t.Fatalf("expected TransitionError from in-progress, got %v", err)
		}
		if got := mustGet(t, store, "r1"); got.EstimatedCost != nil {
			t.Fatalf("request must be unchanged: %+v", got)
		}
	})

	t.Run("invalid cost", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil)
		_, err := uc.SubmitEstimate(ctx, "r1", EstimateInput{EstimatedCost: 0})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("lost race reports the winning status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		pending := entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending}
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "r1").Return(pending, nil),
			repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.RequestStatusPending).Return(entities.MaintenanceRequest{}, interfaces.ErrStatusConflict),
			repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusInProgress}, nil),
		)
		uc := NewRequestUseCase(repo, nil, fixedSettings(ctrl, cfg), nil)

		_, err := uc.SubmitEstimate(ctx, "r1", EstimateInput{EstimatedCost: 7000})
		var tErr *TransitionError
		if !errors.As(err, &tErr) || tErr.Current != entities.RequestStatusInProgress {
			t.Fatalf("expected TransitionError against in-progress, got %v", err)
		}
	})

	t.Run("auto-approval is a single write on pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		pending := entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending}
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "r1").Return(pending, nil),
			repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.RequestStatusPending).DoAndReturn(
				func(_ context.Context, r entities.MaintenanceRequest, _ entities.RequestStatus) (entities.MaintenanceRequest, error) {
					if r.Status != entities.RequestStatusApproved || r.EstimatedCost == nil || r.ApprovedCost == nil {
						t.Errorf("estimate and approval must be written together: %+v", r)
					}
					return entities.MaintenanceRequest{}, interfaces.ErrStatusConflict
				},
			),
			repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusInProgress}, nil),
		)
		uc := NewRequestUseCase(repo, nil, fixedSettings(ctrl, cfg), nil)

		_, err := uc.SubmitEstimate(ctx, "r1", EstimateInput{EstimatedCost: 3000})
		var tErr *TransitionError
		if !errors.As(err, &tErr) || tErr.Current != entities.RequestStatusInProgress {
			t.Fatalf("expected TransitionError against in-progress, got %v", err)
		}
		if len(tErr.Allowed) != 1 || tErr.Allowed[0] != entities.RequestStatusPending {
			t.Fatalf("conflict should list pending as the only source, got %v", tErr.Allowed)
		}
	})
}

func TestRequestUseCase_SubmitQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil)
		cases := []QuoteInput{
			{Amount: 10, SubmittedBy: "s1"},
			{VendorName: "Acme", SubmittedBy: "s1"},
			{VendorName: "Acme", Amount: 10},
		}
		for _, in := range cases {
			if _, err := uc.SubmitQuote(ctx, "r1", in); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
			}
		}
	})

	t.Run("counts quotes on repeated submission", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, nil)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending})

		for _, amount := range []float64{5000, 7000} {
			q, err := uc.SubmitQuote(ctx, "r1", QuoteInput{VendorName: "Vendor", Amount: amount, SubmittedBy: "staff-1"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Status != entities.QuoteStatusPending || q.RequestID != "r1" {
				t.Fatalf("unexpected quote: %+v", q)
			}
		}
		got := mustGet(t, store, "r1")
		if got.Status != entities.RequestStatusQuotesSubmitted || got.QuotesSubmitted != 2 {
			t.Fatalf("unexpected request: %+v", got)
		}
	})

	t.Run("approved request refuses quotes", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, nil)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusApproved})

		_, err := uc.SubmitQuote(ctx, "r1", QuoteInput{VendorName: "Vendor", Amount: 10, SubmittedBy: "staff-1"})
		if !errors.Is(err, ErrTransition) {
			t.Fatalf("expected ErrTransition, got %v", err)
		}
		quotes, _ := store.Quotes().ListByRequestID(ctx, "r1")
		if len(quotes) != 0 {
			t.Fatalf("no quote should be written, got %d", len(quotes))
		}
	})
}

func TestRequestUseCase_CompareQuotes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, nil)
	seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending})

	past := time.Now().Add(-24 * time.Hour)
	for _, in := range []QuoteInput{
		{VendorName: "A", Amount: 5000, SubmittedBy: "s1"},
		{VendorName: "B", Amount: 7000, SubmittedBy: "s1", ValidUntil: &past},
		{VendorName: "C", Amount: 6000, SubmittedBy: "s1"},
	} {
		if _, err := uc.SubmitQuote(ctx, "r1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	cmp, err := uc.CompareQuotes(ctx, "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmp.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(cmp.Options))
	}
	if cmp.Options[0].Quote.VendorName != "A" || !cmp.Options[0].Best {
		t.Fatalf("cheapest quote should be first and best: %+v", cmp.Options[0])
	}
	if cmp.Options[2].Quote.VendorName != "B" || !cmp.Options[2].Expired || cmp.Options[2].DifferenceFromLowest != 2000 {
		t.Fatalf("unexpected last option: %+v", cmp.Options[2])
	}
	if cmp.LowestAmount != 5000 || cmp.HighestAmount != 7000 || cmp.Savings != 2000 {
		t.Fatalf("unexpected totals: %+v", cmp)
	}
}

func TestRequestUseCase_StartAndCompleteWork(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		status  entities.RequestStatus
		wantErr bool
	}{
		{name: "from pending", status: entities.RequestStatusPending},
		{name: "from approved", status: entities.RequestStatusApproved},
		{name: "from estimated", status: entities.RequestStatusEstimated, wantErr: true},
		{name: "from quotes submitted", status: entities.RequestStatusQuotesSubmitted, wantErr: true},
		{name: "from completed", status: entities.RequestStatusCompleted, wantErr: true},
	}
	for _, tc := range cases {
		t.Run("start "+tc.name, func(t *testing.T) {
			store := memory.NewStore()
			uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, nil)
			seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: tc.status})

			r, err := uc.StartWork(ctx, "r1")
			if tc.wantErr {
				if !errors.Is(err, ErrTransition) {
					t.Fatalf("expected ErrTransition, got %v", err)
				}
				if got := mustGet(t, store, "r1"); got.Status != tc.status {
					t.Fatalf("status must be unchanged, got %s", got.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Status != entities.RequestStatusInProgress || r.StartedAt == nil {
				t.Fatalf("unexpected request: %+v", r)
			}
		})
	}

	t.Run("complete records actual cost", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, nil)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusInProgress})

		r, err := uc.CompleteWork(ctx, "r1", CompleteWorkInput{ActualCost: entities.Float64Ptr(4200), Notes: "done"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RequestStatusCompleted || r.ActualCost == nil || *r.ActualCost != 4200 || r.CompletedAt == nil {
			t.Fatalf("unexpected request: %+v", r)
		}
	})

	t.Run("complete from approved", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, nil)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusApproved})

		_, err := uc.CompleteWork(ctx, "r1", CompleteWorkInput{})
		var tErr *TransitionError
		if !errors.As(err, &tErr) || len(tErr.Allowed) != 1 || tErr.Allowed[0] != entities.RequestStatusInProgress {
			t.Fatalf("expected TransitionError allowing in-progress only, got %v", err)
		}
	})

	t.Run("negative actual cost", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil)
		_, err := uc.CompleteWork(ctx, "r1", CompleteWorkInput{ActualCost: entities.Float64Ptr(-1)})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestRequestUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("completed requests are kept", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, nil)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusCompleted})

		if err := uc.Delete(ctx, "r1"); !errors.Is(err, ErrTransition) {
			t.Fatalf("expected ErrTransition, got %v", err)
		}
		mustGet(t, store, "r1")
	})

	t.Run("removes request and quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		pub, events := recordingPublisher(ctrl)
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, pub)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending})
		if _, err := uc.SubmitQuote(ctx, "r1", QuoteInput{VendorName: "A", Amount: 10, SubmittedBy: "s1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := uc.Delete(ctx, "r1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r, _ := store.Requests().GetByID(ctx, "r1"); r.ID != "" {
			t.Fatalf("request should be gone")
		}
		if quotes, _ := store.Quotes().ListByRequestID(ctx, "r1"); len(quotes) != 0 {
			t.Fatalf("quotes should be gone, got %d", len(quotes))
		}
		if len(events.ofType(entities.EventRequestDeleted)) != 1 {
			t.Fatalf("expected request.deleted event")
		}
	})

	t.Run("missing request", func(t *testing.T) {
		store := memory.NewStore()
		uc := NewRequestUseCase(store.Requests(), store.Quotes(), nil, nil)
		if err := uc.Delete(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
