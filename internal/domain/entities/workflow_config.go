package entities

// AutomatedWorkflowConfig is the landlord's automation policy. The engine only ever
// sees value copies; loading and saving belong to the settings service.
type AutomatedWorkflowConfig struct {
	AutoApproveMaintenance   bool    `json:"auto_approve_maintenance" mapstructure:"auto_approve_maintenance" yaml:"auto_approve_maintenance"`
	MaintenanceApprovalLimit float64 `json:"maintenance_approval_limit" mapstructure:"maintenance_approval_limit" yaml:"maintenance_approval_limit"`
	QuoteRequiredThreshold   float64 `json:"quote_required_threshold" mapstructure:"quote_required_threshold" yaml:"quote_required_threshold"`
	MonthlyMaintenanceBudget float64 `json:"monthly_maintenance_budget" mapstructure:"monthly_maintenance_budget" yaml:"monthly_maintenance_budget"`
	BudgetAlertsEnabled      bool    `json:"budget_alerts_enabled" mapstructure:"budget_alerts_enabled" yaml:"budget_alerts_enabled"`
	BudgetAlertThreshold     float64 `json:"budget_alert_threshold" mapstructure:"budget_alert_threshold" yaml:"budget_alert_threshold"`
}

// DefaultWorkflowConfig mirrors the dashboard's out-of-the-box settings.
func DefaultWorkflowConfig() AutomatedWorkflowConfig {
	return AutomatedWorkflowConfig{
		AutoApproveMaintenance:   false,
		MaintenanceApprovalLimit: 5000,
		QuoteRequiredThreshold:   10000,
		MonthlyMaintenanceBudget: 50000,
		BudgetAlertsEnabled:      true,
		BudgetAlertThreshold:     0.8,
	}
}
