package policy

import "nyumbanii_maintenance/internal/domain/entities"

// ApprovalPath is the approval route a proposed cost must take.
type ApprovalPath string

const (
	PathAutoApprove           ApprovalPath = "auto_approve"
	PathRequireFormalQuotes   ApprovalPath = "require_formal_quotes"
	PathRequireLandlordReview ApprovalPath = "require_landlord_review"
)

// DecidePath maps a proposed cost and the landlord's automation config to an approval path.
//
// Rules, first match wins:
//  1. cost above QuoteRequiredThreshold requires formal quotes, whatever the auto-approve flag says.
//  2. auto-approve enabled and cost within MaintenanceApprovalLimit approves automatically.
//  3. anything else goes to the landlord.
func DecidePath(estimatedCost float64, cfg entities.AutomatedWorkflowConfig) ApprovalPath {
	if estimatedCost > cfg.QuoteRequiredThreshold {
		return PathRequireFormalQuotes
	}
	if cfg.AutoApproveMaintenance && estimatedCost <= cfg.MaintenanceApprovalLimit {
		return PathAutoApprove
	}
	return PathRequireLandlordReview
}
