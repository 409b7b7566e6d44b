package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"nyumbanii_maintenance/internal/adapter/http/handlers"
	"nyumbanii_maintenance/internal/adapter/persistence/memory"
	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/infrastructure/messaging"
	"nyumbanii_maintenance/internal/usecase"

	"github.com/gin-gonic/gin"
)

type staticStaff map[string]entities.Staff

func (s staticStaff) Lookup(_ context.Context, id string) (entities.Staff, error) {
	return s[id], nil
}

type settingsHolder struct {
	mu  sync.RWMutex
	cfg entities.AutomatedWorkflowConfig
}

func (h *settingsHolder) CurrentConfig() entities.AutomatedWorkflowConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}

func (h *settingsHolder) Save(cfg entities.AutomatedWorkflowConfig) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cfg = cfg
	return nil
}

type testServer struct {
	router *gin.Engine
	store  *memory.Store
	bus    *messaging.ChannelBus
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	requests, quotes := store.Requests(), store.Quotes()
	staff := staticStaff{
		"staff-1": {ID: "staff-1", Name: "Wanjiku", UserID: "user-1", Role: "plumber"},
	}
	cfg := &settingsHolder{cfg: entities.DefaultWorkflowConfig()}
	bus := messaging.NewChannelBus(64)

	reconciler := usecase.NewReconciler(requests, quotes, time.Minute)
	notifications := usecase.NewNotificationUseCase(staff, store.Notifications())
	if err := notifications.Start(bus); err != nil {
		t.Fatalf("start consumer: %v", err)
	}

	router := NewRouter(Handlers{
		Requests: handlers.NewRequestHandler(
			usecase.NewRequestUseCase(requests, quotes, cfg, bus),
			usecase.NewAssignmentUseCase(requests, staff, bus),
		),
		Approvals: handlers.NewApprovalHandler(usecase.NewApprovalUseCase(requests, quotes, nil, bus, reconciler)),
		Budget:    handlers.NewBudgetHandler(usecase.NewBudgetUseCase(requests, cfg)),
		Settings:  handlers.NewSettingsHandler(usecase.NewSettingsUseCase(cfg)),
	})
	return &testServer{router: router, store: store, bus: bus}
}

func (s *testServer) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(handlers.HeaderUserID, "staff-1")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: invalid json %q", method, path, w.Body.String())
		}
	}
	return w.Code, out
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(t, http.MethodGet, "/v1/ping", "")
	if code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("unexpected ping response %d %v", code, body)
	}
}

func TestQuoteWorkflowEndToEnd(t *testing.T) {
	s := newTestServer(t)

	code, created := s.do(t, http.MethodPost, "/v1/requests", `{"property_id":"p1","title":"Burst pipe","priority":"high"}`)
	if code != http.StatusCreated || created["status"] != "pending" {
		t.Fatalf("create: %d %v", code, created)
	}
	id := created["id"].(string)
	base := "/v1/requests/" + id

	code, outcome := s.do(t, http.MethodPost, base+"/estimate", `{"estimated_cost":15000,"estimated_duration":"2 days"}`)
	if code != http.StatusOK || outcome["approval_path"] != "require_formal_quotes" {
		t.Fatalf("estimate: %d %v", code, outcome)
	}
	if req := outcome["request"].(map[string]any); req["status"] != "estimated" || req["quotes_required"] != true {
		t.Fatalf("estimate request: %v", req)
	}

	code, _ = s.do(t, http.MethodPatch, base+"/estimate/approve", `{"notes":"ok"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("direct estimate approval must be refused when quotes are required, got %d", code)
	}

	code, cheap := s.do(t, http.MethodPost, base+"/quotes", `{"vendor_name":"Acme Plumbing","amount":12000}`)
	if code != http.StatusCreated {
		t.Fatalf("quote 1: %d %v", code, cheap)
	}
	code, pricey := s.do(t, http.MethodPost, base+"/quotes", `{"vendor_name":"Bolt Fixers","amount":14500}`)
	if code != http.StatusCreated {
		t.Fatalf("quote 2: %d %v", code, pricey)
	}

	code, cmp := s.do(t, http.MethodGet, base+"/quotes/compare", "")
	if code != http.StatusOK || cmp["lowest_amount"] != 12000.0 || cmp["savings"] != 2500.0 {
		t.Fatalf("compare: %d %v", code, cmp)
	}

	code, approved := s.do(t, http.MethodPatch, fmt.Sprintf("%s/quotes/%s/approve", base, cheap["id"]), `{"notes":"cheapest"}`)
	if code != http.StatusOK || approved["status"] != "approved" {
		t.Fatalf("approve quote: %d %v", code, approved)
	}

	quotes, err := s.store.Quotes().ListByRequestID(context.Background(), id)
	if err != nil {
		t.Fatalf("list quotes: %v", err)
	}
	for _, q := range quotes {
		want := entities.QuoteStatusRejected
		if q.ID == cheap["id"] {
			want = entities.QuoteStatusApproved
		}
		if q.Status != want {
			t.Fatalf("quote %s: expected %s, got %s", q.ID, want, q.Status)
		}
	}

	code, _ = s.do(t, http.MethodPatch, fmt.Sprintf("%s/quotes/%s/approve", base, pricey["id"]), `{"notes":"changed my mind"}`)
	if code != http.StatusConflict {
		t.Fatalf("second approval must conflict, got %d", code)
	}

	if code, body := s.do(t, http.MethodPatch, base+"/assign", `{"staff_id":"staff-1"}`); code != http.StatusOK || body["assigned_to"] != "staff-1" {
		t.Fatalf("assign: %d %v", code, body)
	}
	if code, body := s.do(t, http.MethodPatch, base+"/start", ""); code != http.StatusOK || body["status"] != "in-progress" {
		t.Fatalf("start: %d %v", code, body)
	}
	if code, body := s.do(t, http.MethodPatch, base+"/complete", `{"actual_cost":11800}`); code != http.StatusOK || body["status"] != "completed" {
		t.Fatalf("complete: %d %v", code, body)
	}

	now := time.Now().UTC()
	code, period := s.do(t, http.MethodGet, fmt.Sprintf("/v1/budget/%d/%d", now.Year(), int(now.Month())), "")
	if code != http.StatusOK || period["total"] != 11800.0 || period["request_count"] != 1.0 {
		t.Fatalf("budget: %d %v", code, period)
	}

	_ = s.bus.Close()
	select {
	case <-s.bus.Drained():
	case <-time.After(time.Second):
		t.Fatalf("event bus did not drain")
	}
	if got := s.store.Notifications().ByUser("user-1"); len(got) < 2 {
		t.Fatalf("expected quote and assignment notifications, got %+v", got)
	}
}

func TestEstimateRejectionEndToEnd(t *testing.T) {
	s := newTestServer(t)

	_, created := s.do(t, http.MethodPost, "/v1/requests", `{"property_id":"p1","title":"Broken window"}`)
	base := "/v1/requests/" + created["id"].(string)

	code, outcome := s.do(t, http.MethodPost, base+"/estimate", `{"estimated_cost":7000}`)
	if code != http.StatusOK || outcome["approval_path"] != "require_landlord_review" {
		t.Fatalf("estimate: %d %v", code, outcome)
	}

	code, _ = s.do(t, http.MethodPatch, base+"/estimate/reject", `{"notes":"   "}`)
	if code != http.StatusBadRequest {
		t.Fatalf("blank rejection notes must be refused, got %d", code)
	}

	code, rejected := s.do(t, http.MethodPatch, base+"/estimate/reject", `{"notes":"too expensive"}`)
	if code != http.StatusOK || rejected["status"] != "estimate_rejected" || rejected["rejection_notes"] != "too expensive" {
		t.Fatalf("reject: %d %v", code, rejected)
	}

	code, _ = s.do(t, http.MethodPatch, base+"/start", "")
	if code != http.StatusConflict {
		t.Fatalf("start after rejection must conflict, got %d", code)
	}

	if code, _ := s.do(t, http.MethodGet, "/v1/requests/does-not-exist", ""); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestAutoApprovalAfterSettingsUpdate(t *testing.T) {
	s := newTestServer(t)

	code, cfg := s.do(t, http.MethodPut, "/v1/settings/workflow", `{"auto_approve_maintenance":true,"maintenance_approval_limit":3000}`)
	if code != http.StatusOK || cfg["auto_approve_maintenance"] != true || cfg["quote_required_threshold"] != 10000.0 {
		t.Fatalf("settings: %d %v", code, cfg)
	}

	_, created := s.do(t, http.MethodPost, "/v1/requests", `{"property_id":"p1","title":"Loose hinge","priority":"low"}`)
	base := "/v1/requests/" + created["id"].(string)

	code, outcome := s.do(t, http.MethodPost, base+"/estimate", `{"estimated_cost":2500}`)
	if code != http.StatusOK || outcome["approval_path"] != "auto_approve" {
		t.Fatalf("estimate: %d %v", code, outcome)
	}
	req := outcome["request"].(map[string]any)
	if req["status"] != "approved" {
		t.Fatalf("expected auto approval, got %v", req)
	}
	if approval, ok := req["approval"].(map[string]any); !ok || approval["approved_by"] != entities.SystemApprover {
		t.Fatalf("expected approval section, got %v", req)
	}

	code, list := s.doList(t, "/v1/requests?status=approved")
	if code != http.StatusOK || len(list) != 1 {
		t.Fatalf("list approved: %d %v", code, list)
	}
}

func (s *testServer) doList(t *testing.T, path string) (int, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q", w.Body.String())
	}
	return w.Code, out
}
