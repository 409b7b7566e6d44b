package usecase

import (
	"context"
	"log"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"
)

type ISettingsUseCase interface {
	Get(ctx context.Context) entities.AutomatedWorkflowConfig
	Update(ctx context.Context, cfg entities.AutomatedWorkflowConfig) (entities.AutomatedWorkflowConfig, error)
}

type SettingsUseCase struct {
	store interfaces.ISettingsStore
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(store interfaces.ISettingsStore) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

func (u *SettingsUseCase) Get(_ context.Context) entities.AutomatedWorkflowConfig {
	return u.store.CurrentConfig()
}

// Update validates and persists a new automation config. Running operations keep the
// snapshot they already took.
func (u *SettingsUseCase) Update(_ context.Context, cfg entities.AutomatedWorkflowConfig) (entities.AutomatedWorkflowConfig, error) {
	if err := ValidateWorkflowConfig(cfg); err != nil {
		return entities.AutomatedWorkflowConfig{}, err
	}
	if err := u.store.Save(cfg); err != nil {
		log.Printf("[settings][usecase] save failed err=%v", err)
		return entities.AutomatedWorkflowConfig{}, storeError("save settings", err)
	}
	log.Printf("[settings][usecase] updated auto_approve=%t limit=%.2f quote_threshold=%.2f budget=%.2f",
		cfg.AutoApproveMaintenance, cfg.MaintenanceApprovalLimit, cfg.QuoteRequiredThreshold, cfg.MonthlyMaintenanceBudget)
	return u.store.CurrentConfig(), nil
}

func ValidateWorkflowConfig(cfg entities.AutomatedWorkflowConfig) error {
	switch {
	case cfg.MaintenanceApprovalLimit < 0:
		return newValidationError("maintenance_approval_limit", "must not be negative")
	case cfg.QuoteRequiredThreshold < 0:
		return newValidationError("quote_required_threshold", "must not be negative")
	case cfg.MonthlyMaintenanceBudget < 0:
		return newValidationError("monthly_maintenance_budget", "must not be negative")
	case cfg.BudgetAlertThreshold < 0 || cfg.BudgetAlertThreshold > 1:
		return newValidationError("budget_alert_threshold", "must be between 0 and 1")
	}
	return nil
}
