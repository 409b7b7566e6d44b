package entities

import "time"

// SystemApprover is recorded as approver when the policy auto-approves an estimate.
const SystemApprover = "system"

// CostItem is one line of an estimate breakdown or a quote itemization.
type CostItem struct {
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	Total    float64 `json:"total"`
}

// MaintenanceRequest is a repair task against a property unit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// ApprovedCost/ApprovedVendor are only set when the request reached approved through
// an approval edge (estimate approval, auto-approval or a winning quote).
type MaintenanceRequest struct {
	ID          string   `json:"id"`
	PropertyID  string   `json:"property_id"`
	UnitID      string   `json:"unit_id"`
	TenantID    string   `json:"tenant_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`

	Status RequestStatus `json:"status"`

	AssignedTo     string     `json:"assigned_to,omitempty"`
	AssignedToName string     `json:"assigned_to_name,omitempty"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`

	EstimatedCost     *float64   `json:"estimated_cost,omitempty"`
	EstimatedDuration string     `json:"estimated_duration,omitempty"`
	CostBreakdown     []CostItem `json:"cost_breakdown,omitempty"`
	EstimateNotes     string     `json:"estimate_notes,omitempty"`
	EstimatedAt       *time.Time `json:"estimated_at,omitempty"`
	QuotesRequired    bool       `json:"quotes_required"`

	ApprovedCost   *float64   `json:"approved_cost,omitempty"`
	ApprovedVendor string     `json:"approved_vendor,omitempty"`
	ApprovalNotes  string     `json:"approval_notes,omitempty"`
	ApprovedBy     string     `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`

	RejectionNotes string     `json:"rejection_notes,omitempty"`
	RejectedAt     *time.Time `json:"rejected_at,omitempty"`

	StartedAt *time.Time `json:"started_at,omitempty"`

	ActualCost      *float64   `json:"actual_cost,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
	ActualDuration  string     `json:"actual_duration,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`

	QuotesSubmitted int    `json:"quotes_submitted"`
	SelectedQuoteID string `json:"selected_quote_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RequestFilter narrows ListRequests. Empty fields match everything.
type RequestFilter struct {
	PropertyID string
	Status     RequestStatus
	AssignedTo string
}

func (f RequestFilter) Matches(r MaintenanceRequest) bool {
	if f.PropertyID != "" && r.PropertyID != f.PropertyID {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.AssignedTo != "" && r.AssignedTo != f.AssignedTo {
		return false
	}
	return true
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
