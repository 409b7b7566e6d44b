package handlers

import (
	"errors"
	"net/http"
	"testing"

	"nyumbanii_maintenance/internal/adapter/http/handlers/mocks"
	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newApprovalRouter(h *ApprovalHandler) *gin.Engine {
	r := gin.New()
	r.PATCH("/v1/requests/:id/estimate/approve", h.ApproveEstimate)
	r.PATCH("/v1/requests/:id/estimate/reject", h.RejectEstimate)
	r.PATCH("/v1/requests/:id/quotes/:quote_id/approve", h.ApproveQuote)
	r.PATCH("/v1/requests/:id/quotes/:quote_id/reject", h.RejectQuote)
	return r
}

func TestApprovalHandler_Estimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve uses the caller identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		r := newApprovalRouter(NewApprovalHandler(uc))

		uc.EXPECT().ApproveEstimate(gomock.Any(), "r1", "landlord-9", "go ahead").
			Return(entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusApproved}, nil)

		w := serve(r, http.MethodPatch, "/v1/requests/r1/estimate/approve", `{"notes":"go ahead"}`, map[string]string{HeaderUserID: "landlord-9"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve without body defaults the actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		r := newApprovalRouter(NewApprovalHandler(uc))

		uc.EXPECT().ApproveEstimate(gomock.Any(), "r1", usecase.DefaultActor, "").
			Return(entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusApproved}, nil)

		w := serve(r, http.MethodPatch, "/v1/requests/r1/estimate/approve", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject with empty notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		r := newApprovalRouter(NewApprovalHandler(uc))

		uc.EXPECT().RejectEstimate(gomock.Any(), "r1", usecase.DefaultActor, "  ").
			Return(entities.MaintenanceRequest{}, &usecase.ValidationError{Field: "notes", Reason: "must not be empty"})

		w := serve(r, http.MethodPatch, "/v1/requests/r1/estimate/reject", `{"notes":"  "}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newApprovalRouter(NewApprovalHandler(mocks.NewMockIApprovalUseCase(ctrl)))

		w := serve(r, http.MethodPatch, "/v1/requests/r1/estimate/reject", `{"notes":`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestApprovalHandler_ApproveQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		r := newApprovalRouter(NewApprovalHandler(uc))

		uc.EXPECT().ApproveQuote(gomock.Any(), "r1", "q2", usecase.DefaultActor, "").Return(entities.MaintenanceRequest{}, &usecase.TransitionError{
			RequestID: "r1", Operation: "approve quote", Current: entities.RequestStatusApproved,
			Allowed: []entities.RequestStatus{entities.RequestStatusQuotesSubmitted},
		})

		w := serve(r, http.MethodPatch, "/v1/requests/r1/quotes/q2/approve", "", nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("partial failure is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		r := newApprovalRouter(NewApprovalHandler(uc))

		uc.EXPECT().ApproveQuote(gomock.Any(), "r1", "q2", usecase.DefaultActor, "").Return(
			entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusApproved, SelectedQuoteID: "q2"},
			&usecase.PartialFailureError{RequestID: "r1", Failed: map[string]error{"q3": errors.New("throttled"), "q1": errors.New("throttled")}},
		)

		w := serve(r, http.MethodPatch, "/v1/requests/r1/quotes/q2/approve", "", nil)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		body := decodeBody(t, w)
		pending, _ := body["pending_quote_ids"].([]any)
		if len(pending) != 2 || pending[0] != "q1" || pending[1] != "q3" {
			t.Fatalf("unexpected pending ids: %v", body)
		}
		req, _ := body["request"].(map[string]any)
		if req["status"] != "approved" {
			t.Fatalf("unexpected request: %v", req)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		r := newApprovalRouter(NewApprovalHandler(uc))

		uc.EXPECT().ApproveQuote(gomock.Any(), "r1", "q2", "landlord-1", "cheapest").
			Return(entities.MaintenanceRequest{ID: "r1", Status: entities.RequestStatusApproved, SelectedQuoteID: "q2"}, nil)

		w := serve(r, http.MethodPatch, "/v1/requests/r1/quotes/q2/approve", `{"notes":"cheapest"}`, map[string]string{HeaderUserID: "landlord-1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestApprovalHandler_RejectQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quote of another request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		r := newApprovalRouter(NewApprovalHandler(uc))

		uc.EXPECT().RejectQuote(gomock.Any(), "r1", "qX", usecase.DefaultActor, "too expensive").
			Return(entities.Quote{}, &usecase.NotFoundError{Kind: "quote", ID: "qX"})

		w := serve(r, http.MethodPatch, "/v1/requests/r1/quotes/qX/reject", `{"reason":"too expensive"}`, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApprovalUseCase(ctrl)
		r := newApprovalRouter(NewApprovalHandler(uc))

		uc.EXPECT().RejectQuote(gomock.Any(), "r1", "q1", usecase.DefaultActor, "too expensive").
			Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusRejected, RejectionReason: "too expensive"}, nil)

		w := serve(r, http.MethodPatch, "/v1/requests/r1/quotes/q1/reject", `{"reason":"too expensive"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "rejected" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
