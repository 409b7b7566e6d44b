package budget

import (
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
)

// Alert is raised when the month's spend crosses the configured fraction of the budget.
type Alert struct {
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
}

// Period is the spend of one calendar month against the monthly budget.
type Period struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	Total        float64  `json:"total"`
	Budget       float64  `json:"budget"`
	Percentage   float64  `json:"percentage"`
	Remaining    float64  `json:"remaining"`
	RequestCount int      `json:"request_count"`
	Alert        *Alert   `json:"alert,omitempty"`
	RequestIDs   []string `json:"request_ids,omitempty"`
}

// CostAndDate returns the amount a request contributes to spend and the date it counts on.
// Completed requests count their actual cost on the completion date, falling back to the
// approved cost. Approved and in-progress requests count their approved cost on the
// approval date. Everything else contributes nothing.
func CostAndDate(r entities.MaintenanceRequest) (float64, time.Time, bool) {
	switch r.Status {
	case entities.RequestStatusCompleted:
		if r.CompletedAt == nil {
			return 0, time.Time{}, false
		}
		if r.ActualCost != nil {
			return *r.ActualCost, *r.CompletedAt, true
		}
		if r.ApprovedCost != nil {
			return *r.ApprovedCost, *r.CompletedAt, true
		}
	case entities.RequestStatusApproved, entities.RequestStatusInProgress:
		if r.ApprovedCost != nil && r.ApprovedAt != nil {
			return *r.ApprovedCost, *r.ApprovedAt, true
		}
	}
	return 0, time.Time{}, false
}

// MonthlyTotal sums the spend of requests dated in (year, month) and evaluates the budget alert.
// It has no side effects; the same inputs always give the same Period.
func MonthlyTotal(requests []entities.MaintenanceRequest, year int, month time.Month, cfg entities.AutomatedWorkflowConfig) Period {
	p := Period{
		Year:   year,
		Month:  int(month),
		Budget: cfg.MonthlyMaintenanceBudget,
	}

	for _, r := range requests {
		cost, at, ok := CostAndDate(r)
		if !ok {
			continue
		}
		at = at.UTC()
		if at.Year() != year || at.Month() != month {
			continue
		}
		p.Total += cost
		p.RequestCount++
		p.RequestIDs = append(p.RequestIDs, r.ID)
	}

	p.Remaining = cfg.MonthlyMaintenanceBudget - p.Total
	if cfg.MonthlyMaintenanceBudget <= 0 {
		return p
	}

	ratio := p.Total / cfg.MonthlyMaintenanceBudget
	p.Percentage = ratio * 100
	if cfg.BudgetAlertsEnabled && ratio >= cfg.BudgetAlertThreshold {
		p.Alert = &Alert{Percentage: p.Percentage, Remaining: p.Remaining}
	}
	return p
}
