package usecase

import (
	"context"
	"log"
	"time"

	"nyumbanii_maintenance/internal/domain/budget"
	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"
)

type IBudgetUseCase interface {
	MonthlySummary(ctx context.Context, year, month int) (budget.Period, error)
}

type BudgetUseCase struct {
	requests interfaces.IRequestRepository
	settings interfaces.ISettingsProvider
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(requests interfaces.IRequestRepository, settings interfaces.ISettingsProvider) *BudgetUseCase {
	return &BudgetUseCase{requests: requests, settings: settings}
}

// MonthlySummary totals the month's maintenance spend against the current settings snapshot.
func (u *BudgetUseCase) MonthlySummary(ctx context.Context, year, month int) (budget.Period, error) {
	if year < 1 {
		return budget.Period{}, newValidationError("year", "must be positive")
	}
	if month < 1 || month > 12 {
		return budget.Period{}, newValidationError("month", "must be between 1 and 12")
	}

	requests, err := u.requests.List(ctx, entities.RequestFilter{})
	if err != nil {
		return budget.Period{}, storeError("list requests", err)
	}

	period := budget.MonthlyTotal(requests, year, time.Month(month), u.settings.CurrentConfig())
	if period.Alert != nil {
		log.Printf("[budget][usecase] alert year=%d month=%d total=%.2f percentage=%.1f remaining=%.2f",
			year, month, period.Total, period.Alert.Percentage, period.Alert.Remaining)
	}
	return period, nil
}
