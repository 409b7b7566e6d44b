package request

import (
	"errors"
	"testing"

	"nyumbanii_maintenance/internal/domain/entities"
)

func TestCreateMaintenanceRequest_ToInput(t *testing.T) {
	in := CreateMaintenanceRequest{PropertyID: "p1", Title: "Leaking tap", UnitID: " 4B ", Priority: " HIGH "}.ToInput()
	if in.UnitID != "4B" || in.Priority != entities.PriorityHigh {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestResolveCostItems(t *testing.T) {
	items, err := ResolveCostItems([]CostItemRequest{
		{Item: "pipe", Quantity: 2, UnitCost: 150},
		{Item: "labour", Quantity: 1, UnitCost: 500, Total: 450},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Total != 300 || items[1].Total != 450 {
		t.Fatalf("unexpected totals: %+v", items)
	}

	if _, err := ResolveCostItems([]CostItemRequest{{Item: " ", Quantity: 1}}); !errors.Is(err, ErrInvalidCostItem) {
		t.Fatalf("expected ErrInvalidCostItem for blank item, got %v", err)
	}
	if _, err := ResolveCostItems([]CostItemRequest{{Item: "x", UnitCost: -1}}); !errors.Is(err, ErrInvalidCostItem) {
		t.Fatalf("expected ErrInvalidCostItem for negative cost, got %v", err)
	}
	if got, err := ResolveCostItems(nil); err != nil || got != nil {
		t.Fatalf("expected nil items, got %v %v", got, err)
	}
}

func TestSubmitQuoteRequest_ToInput(t *testing.T) {
	in, err := SubmitQuoteRequest{VendorName: "Acme", Amount: 900, QuoteNumber: " Q-7 "}.ToInput("staff-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.SubmittedBy != "staff-1" || in.QuoteNumber != "Q-7" || in.Amount != 900 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestListRequestsQuery_ToFilter(t *testing.T) {
	f, ok := ListRequestsQuery{PropertyID: " p1 ", Status: "approved"}.ToFilter()
	if !ok || f.PropertyID != "p1" || f.Status != entities.RequestStatusApproved {
		t.Fatalf("unexpected filter: %+v ok=%v", f, ok)
	}
	if _, ok := (ListRequestsQuery{Status: "archived"}).ToFilter(); ok {
		t.Fatalf("unknown status must be rejected")
	}
}

func TestWorkflowSettingsRequest_ApplyTo(t *testing.T) {
	enabled := true
	limit := 8000.0
	cfg := WorkflowSettingsRequest{AutoApproveMaintenance: &enabled, MaintenanceApprovalLimit: &limit}.
		ApplyTo(entities.DefaultWorkflowConfig())
	if !cfg.AutoApproveMaintenance || cfg.MaintenanceApprovalLimit != 8000 {
		t.Fatalf("fields not applied: %+v", cfg)
	}
	if cfg.QuoteRequiredThreshold != 10000 || cfg.BudgetAlertThreshold != 0.8 {
		t.Fatalf("absent fields must keep current values: %+v", cfg)
	}
}
