package response

import (
	"time"

	"nyumbanii_maintenance/internal/domain/budget"
	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase"
)

type EstimateSection struct {
	Cost          *float64            `json:"cost,omitempty"`
	Duration      string              `json:"duration,omitempty"`
	CostBreakdown []entities.CostItem `json:"cost_breakdown,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	EstimatedAt   *time.Time          `json:"estimated_at,omitempty"`
}

type ApprovalSection struct {
	Cost            *float64   `json:"cost,omitempty"`
	Vendor          string     `json:"vendor,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	SelectedQuoteID string     `json:"selected_quote_id,omitempty"`
}

type CompletionSection struct {
	ActualCost     *float64   `json:"actual_cost,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	ActualDuration string     `json:"actual_duration,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

type MaintenanceRequestResponse struct {
	ID             string             `json:"id"`
	PropertyID     string             `json:"property_id"`
	UnitID         string             `json:"unit_id,omitempty"`
	TenantID       string             `json:"tenant_id,omitempty"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	Priority       string             `json:"priority"`
	Status         string             `json:"status"`
	NextStatuses   []string           `json:"next_statuses"`
	AssignedTo     string             `json:"assigned_to,omitempty"`
	AssignedToName string             `json:"assigned_to_name,omitempty"`
	AssignedAt     *time.Time         `json:"assigned_at,omitempty"`
	QuotesRequired bool               `json:"quotes_required"`
	QuotesCount    int                `json:"quotes_submitted"`
	Estimate       *EstimateSection   `json:"estimate,omitempty"`
	Approval       *ApprovalSection   `json:"approval,omitempty"`
	RejectionNotes string             `json:"rejection_notes,omitempty"`
	RejectedAt     *time.Time         `json:"rejected_at,omitempty"`
	StartedAt      *time.Time         `json:"started_at,omitempty"`
	Completion     *CompletionSection `json:"completion,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromMaintenanceRequest(r entities.MaintenanceRequest) MaintenanceRequestResponse {
	res := MaintenanceRequestResponse{
		ID:             r.ID,
		PropertyID:     r.PropertyID,
		UnitID:         r.UnitID,
		TenantID:       r.TenantID,
		Title:          r.Title,
		Description:    r.Description,
		Priority:       string(r.Priority),
		Status:         string(r.Status),
		NextStatuses:   nextStatuses(r),
		AssignedTo:     r.AssignedTo,
		AssignedToName: r.AssignedToName,
		AssignedAt:     r.AssignedAt,
		QuotesRequired: r.QuotesRequired,
		QuotesCount:    r.QuotesSubmitted,
		RejectionNotes: r.RejectionNotes,
		RejectedAt:     r.RejectedAt,
		StartedAt:      r.StartedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.EstimatedAt != nil {
		res.Estimate = &EstimateSection{
			Cost:          r.EstimatedCost,
			Duration:      r.EstimatedDuration,
			CostBreakdown: r.CostBreakdown,
			Notes:         r.EstimateNotes,
			EstimatedAt:   r.EstimatedAt,
		}
	}
	if r.ApprovedAt != nil {
		res.Approval = &ApprovalSection{
			Cost:            r.ApprovedCost,
			Vendor:          r.ApprovedVendor,
			Notes:           r.ApprovalNotes,
			ApprovedBy:      r.ApprovedBy,
			ApprovedAt:      r.ApprovedAt,
			SelectedQuoteID: r.SelectedQuoteID,
		}
	}
	if r.CompletedAt != nil {
		res.Completion = &CompletionSection{
			ActualCost:     r.ActualCost,
			Notes:          r.CompletionNotes,
			ActualDuration: r.ActualDuration,
			CompletedAt:    r.CompletedAt,
		}
	}
	return res
}

func FromMaintenanceRequests(rs []entities.MaintenanceRequest) []MaintenanceRequestResponse {
	out := make([]MaintenanceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromMaintenanceRequest(r))
	}
	return out
}

func nextStatuses(r entities.MaintenanceRequest) []string {
	out := []string{}
	for _, s := range entities.AllRequestStatuses {
		if entities.CanTransition(r.Status, s, r.QuotesRequired) {
			out = append(out, string(s))
		}
	}
	return out
}

type EstimateOutcomeResponse struct {
	Request MaintenanceRequestResponse `json:"request"`
	Path    string                     `json:"approval_path"`
}

func FromEstimateOutcome(o usecase.EstimateOutcome) EstimateOutcomeResponse {
	return EstimateOutcomeResponse{Request: FromMaintenanceRequest(o.Request), Path: string(o.Path)}
}

// PartialApprovalResponse is returned with 202 when a quote approval committed but some
// quote writes are still being reconciled.
type PartialApprovalResponse struct {
	Request        MaintenanceRequestResponse `json:"request"`
	PendingQuotes  []string                   `json:"pending_quote_ids"`
	Reconciliation string                     `json:"reconciliation"`
}

func FromPartialApproval(r entities.MaintenanceRequest, failedQuoteIDs []string) PartialApprovalResponse {
	return PartialApprovalResponse{
		Request:        FromMaintenanceRequest(r),
		PendingQuotes:  failedQuoteIDs,
		Reconciliation: "scheduled",
	}
}

type BudgetAlertResponse struct {
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
}

type BudgetPeriodResponse struct {
	Year         int                  `json:"year"`
	Month        int                  `json:"month"`
	Total        float64              `json:"total"`
	Budget       float64              `json:"budget"`
	Percentage   float64              `json:"percentage"`
	Remaining    float64              `json:"remaining"`
	RequestCount int                  `json:"request_count"`
	RequestIDs   []string             `json:"request_ids"`
	Alert        *BudgetAlertResponse `json:"alert,omitempty"`
}

func FromBudgetPeriod(p budget.Period) BudgetPeriodResponse {
	res := BudgetPeriodResponse{
		Year:         p.Year,
		Month:        p.Month,
		Total:        p.Total,
		Budget:       p.Budget,
		Percentage:   p.Percentage,
		Remaining:    p.Remaining,
		RequestCount: p.RequestCount,
		RequestIDs:   p.RequestIDs,
	}
	if res.RequestIDs == nil {
		res.RequestIDs = []string{}
	}
	if p.Alert != nil {
		res.Alert = &BudgetAlertResponse{Percentage: p.Alert.Percentage, Remaining: p.Alert.Remaining}
	}
	return res
}

type WorkflowSettingsResponse struct {
	AutoApproveMaintenance   bool    `json:"auto_approve_maintenance"`
	MaintenanceApprovalLimit float64 `json:"maintenance_approval_limit"`
	QuoteRequiredThreshold   float64 `json:"quote_required_threshold"`
	MonthlyMaintenanceBudget float64 `json:"monthly_maintenance_budget"`
	BudgetAlertsEnabled      bool    `json:"budget_alerts_enabled"`
	BudgetAlertThreshold     float64 `json:"budget_alert_threshold"`
}

func FromWorkflowConfig(cfg entities.AutomatedWorkflowConfig) WorkflowSettingsResponse {
	return WorkflowSettingsResponse(cfg)
}
