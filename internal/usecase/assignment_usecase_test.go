package usecase

import (
	"context"
	"errors"
	"testing"

	"nyumbanii_maintenance/internal/adapter/persistence/memory"
	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"
	mock_interfaces "nyumbanii_maintenance/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssignmentUseCase_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("empty staff id", func(t *testing.T) {
		uc := NewAssignmentUseCase(nil, nil, nil)
		if _, err := uc.Assign(ctx, "r1", " "); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown staff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		staff := mock_interfaces.NewMockIStaffDirectory(ctrl)
		staff.EXPECT().Lookup(gomock.Any(), "ghost").Return(entities.Staff{}, nil)
		uc := NewAssignmentUseCase(nil, staff, nil)

		_, err := uc.Assign(ctx, "r1", "ghost")
		var nErr *NotFoundError
		if !errors.As(err, &nErr) || nErr.Kind != "staff" {
			t.Fatalf("expected staff NotFoundError, got %v", err)
		}
	})

	t.Run("directory failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		staff := mock_interfaces.NewMockIStaffDirectory(ctrl)
		staff.EXPECT().Lookup(gomock.Any(), "s1").Return(entities.Staff{}, errors.New("connection refused"))
		uc := NewAssignmentUseCase(nil, staff, nil)

		if _, err := uc.Assign(ctx, "r1", "s1"); !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})

	t.Run("completed request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		staff := mock_interfaces.NewMockIStaffDirectory(ctrl)
		staff.EXPECT().Lookup(gomock.Any(), "s1").Return(entities.Staff{ID: "s1", Name: "Wanjiru"}, nil)
		uc := NewAssignmentUseCase(store.Requests(), staff, nil)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusCompleted})

		if _, err := uc.Assign(ctx, "r1", "s1"); !errors.Is(err, ErrTransition) {
			t.Fatalf("expected ErrTransition, got %v", err)
		}
	})

	t.Run("assigns and keeps status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memory.NewStore()
		staff := mock_interfaces.NewMockIStaffDirectory(ctrl)
		staff.EXPECT().Lookup(gomock.Any(), "s1").Return(entities.Staff{ID: "s1", Name: "Wanjiru", UserID: "u1"}, nil)
		pub, events := recordingPublisher(ctrl)
		uc := NewAssignmentUseCase(store.Requests(), staff, pub)
		seedRequest(t, store, entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusApproved})

		r, err := uc.Assign(ctx, "r1", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RequestStatusApproved || r.AssignedTo != "s1" || r.AssignedToName != "Wanjiru" || r.AssignedAt == nil {
			t.Fatalf("unexpected request: %+v", r)
		}
		assigned := events.ofType(entities.EventRequestAssigned)
		if len(assigned) != 1 || assigned[0].RecipientStaffID != "s1" {
			t.Fatalf("unexpected events: %+v", assigned)
		}
	})

	t.Run("retries when the status moves underneath", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		staff := mock_interfaces.NewMockIStaffDirectory(ctrl)
		staff.EXPECT().Lookup(gomock.Any(), "s1").Return(entities.Staff{ID: "s1", Name: "Wanjiru"}, nil)
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusPending}, nil),
			repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.RequestStatusPending).Return(entities.MaintenanceRequest{}, interfaces.ErrStatusConflict),
			repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusInProgress}, nil),
			repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.RequestStatusInProgress).DoAndReturn(
				func(_ context.Context, r entities.MaintenanceRequest, _ entities.RequestStatus) (entities.MaintenanceRequest, error) {
					return r, nil
				},
			),
		)
		uc := NewAssignmentUseCase(repo, staff, nil)

		r, err := uc.Assign(ctx, "r1", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RequestStatusInProgress || r.AssignedTo != "s1" {
			t.Fatalf("unexpected request: %+v", r)
		}
	})
}
