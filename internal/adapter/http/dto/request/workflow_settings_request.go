package request

import "nyumbanii_maintenance/internal/domain/entities"

// WorkflowSettingsRequest is a partial update: absent fields keep their current value.
type WorkflowSettingsRequest struct {
	AutoApproveMaintenance   *bool    `json:"auto_approve_maintenance"`
	MaintenanceApprovalLimit *float64 `json:"maintenance_approval_limit"`
	QuoteRequiredThreshold   *float64 `json:"quote_required_threshold"`
	MonthlyMaintenanceBudget *float64 `json:"monthly_maintenance_budget"`
	BudgetAlertsEnabled      *bool    `json:"budget_alerts_enabled"`
	BudgetAlertThreshold     *float64 `json:"budget_alert_threshold"`
}

func (r WorkflowSettingsRequest) ApplyTo(cfg entities.AutomatedWorkflowConfig) entities.AutomatedWorkflowConfig {
	if r.AutoApproveMaintenance != nil {
		cfg.AutoApproveMaintenance = *r.AutoApproveMaintenance
	}
	if r.MaintenanceApprovalLimit != nil {
		cfg.MaintenanceApprovalLimit = *r.MaintenanceApprovalLimit
	}
	if r.QuoteRequiredThreshold != nil {
		cfg.QuoteRequiredThreshold = *r.QuoteRequiredThreshold
	}
	if r.MonthlyMaintenanceBudget != nil {
		cfg.MonthlyMaintenanceBudget = *r.MonthlyMaintenanceBudget
	}
	if r.BudgetAlertsEnabled != nil {
		cfg.BudgetAlertsEnabled = *r.BudgetAlertsEnabled
	}
	if r.BudgetAlertThreshold != nil {
		cfg.BudgetAlertThreshold = *r.BudgetAlertThreshold
	}
	return cfg
}
