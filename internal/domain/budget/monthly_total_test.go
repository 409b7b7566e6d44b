package budget

import (
	"math"
	"testing"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
)

func approvedOn(id string, cost float64, at time.Time) entities.MaintenanceRequest {
	return entities.MaintenanceRequest{
		ID:           id,
		Status:       entities.RequestStatusApproved,
		ApprovedCost: entities.Float64Ptr(cost),
		ApprovedAt:   entities.TimePtr(at),
	}
}

func alertConfig() entities.AutomatedWorkflowConfig {
	return entities.AutomatedWorkflowConfig{
		MonthlyMaintenanceBudget: 50000,
		BudgetAlertsEnabled:      true,
		BudgetAlertThreshold:     0.8,
	}
}

func TestMonthlyTotal_AlertThreshold(t *testing.T) {
	march := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("82 percent raises alert", func(t *testing.T) {
		reqs := []entities.MaintenanceRequest{
			approvedOn("r1", 30000, march),
			approvedOn("r2", 11000, march.Add(48*time.Hour)),
		}
		p := MonthlyTotal(reqs, 2026, time.March, alertConfig())
		if p.Total != 41000 {
			t.Fatalf("expected total 41000, got %v", p.Total)
		}
		if p.Alert == nil {
			t.Fatalf("expected alert")
		}
		if math.Abs(p.Alert.Percentage-82) > 1e-9 || p.Alert.Remaining != 9000 {
			t.Fatalf("unexpected alert: %+v", p.Alert)
		}
	})

	t.Run("78 percent stays quiet", func(t *testing.T) {
		reqs := []entities.MaintenanceRequest{
			approvedOn("r1", 30000, march),
			approvedOn("r2", 9000, march),
		}
		p := MonthlyTotal(reqs, 2026, time.March, alertConfig())
		if p.Total != 39000 {
			t.Fatalf("expected total 39000, got %v", p.Total)
		}
		if p.Alert != nil {
			t.Fatalf("expected no alert, got %+v", p.Alert)
		}
	})

	t.Run("alerts disabled", func(t *testing.T) {
		cfg := alertConfig()
		cfg.BudgetAlertsEnabled = false
		p := MonthlyTotal([]entities.MaintenanceRequest{approvedOn("r1", 49000, march)}, 2026, time.March, cfg)
		if p.Alert != nil {
			t.Fatalf("expected no alert when disabled")
		}
	})

	t.Run("zero budget never alerts", func(t *testing.T) {
		cfg := alertConfig()
		cfg.MonthlyMaintenanceBudget = 0
		p := MonthlyTotal([]entities.MaintenanceRequest{approvedOn("r1", 10, march)}, 2026, time.March, cfg)
		if p.Alert != nil || p.Percentage != 0 {
			t.Fatalf("unexpected period: %+v", p)
		}
	})
}

func TestMonthlyTotal_CostSelection(t *testing.T) {
	approvedAt := time.Date(2026, time.February, 25, 9, 0, 0, 0, time.UTC)
	completedAt := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	reqs := []entities.MaintenanceRequest{
		{
			ID:           "completed-actual",
			Status:       entities.RequestStatusCompleted,
			ApprovedCost: entities.Float64Ptr(1000),
			ApprovedAt:   entities.TimePtr(approvedAt),
			ActualCost:   entities.Float64Ptr(1200),
			CompletedAt:  entities.TimePtr(completedAt),
		},
		{
			ID:           "completed-no-actual",
			Status:       entities.RequestStatusCompleted,
			ApprovedCost: entities.Float64Ptr(300),
			ApprovedAt:   entities.TimePtr(approvedAt),
			CompletedAt:  entities.TimePtr(completedAt),
		},
		{
			ID:           "in-progress",
			Status:       entities.RequestStatusInProgress,
			ApprovedCost: entities.Float64Ptr(500),
			ApprovedAt:   entities.TimePtr(completedAt),
		},
		{
			ID:            "estimated-only",
			Status:        entities.RequestStatusEstimated,
			EstimatedCost: entities.Float64Ptr(999),
		},
	}

	march := MonthlyTotal(reqs, 2026, time.March, alertConfig())
	if march.Total != 2000 || march.RequestCount != 3 {
		t.Fatalf("unexpected march period: %+v", march)
	}
	feb := MonthlyTotal(reqs, 2026, time.February, alertConfig())
	if feb.Total != 0 || feb.RequestCount != 0 {
		t.Fatalf("completed work must count on the completion month: %+v", feb)
	}
}

func TestMonthlyTotal_IdempotentAndAdditive(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)

	janReqs := []entities.MaintenanceRequest{approvedOn("a", 100, jan), approvedOn("b", 250, jan)}
	febReqs := []entities.MaintenanceRequest{approvedOn("c", 400, feb)}
	all := append(append([]entities.MaintenanceRequest{}, janReqs...), febReqs...)

	first := MonthlyTotal(all, 2026, time.January, alertConfig())
	second := MonthlyTotal(all, 2026, time.January, alertConfig())
	if first.Total != second.Total || first.RequestCount != second.RequestCount {
		t.Fatalf("expected idempotent result, got %+v and %+v", first, second)
	}

	combined := MonthlyTotal(all, 2026, time.January, alertConfig()).Total + MonthlyTotal(all, 2026, time.February, alertConfig()).Total
	separate := MonthlyTotal(janReqs, 2026, time.January, alertConfig()).Total + MonthlyTotal(febReqs, 2026, time.February, alertConfig()).Total
	if combined != separate || combined != 750 {
		t.Fatalf("expected additive totals of 750, got combined=%v separate=%v", combined, separate)
	}
}
