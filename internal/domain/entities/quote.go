package entities

import "time"

// QuoteStatus represents the lifecycle of a vendor quote.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// SiblingRejectionReason is recorded on quotes rejected because another quote won.
const SiblingRejectionReason = "Another quote was selected"

// Quote is a vendor-sourced cost proposal attached to a MaintenanceRequest.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
type Quote struct {
	ID            string      `json:"id"`
	RequestID     string      `json:"request_id"`
	VendorName    string      `json:"vendor_name"`
	VendorContact string      `json:"vendor_contact,omitempty"`
	VendorEmail   string      `json:"vendor_email,omitempty"`
	Amount        float64     `json:"amount"`
	ItemizedCosts []CostItem  `json:"itemized_costs,omitempty"`
	QuoteNumber   string      `json:"quote_number,omitempty"`
	ValidUntil    *time.Time  `json:"valid_until,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	SubmittedBy   string      `json:"submitted_by"`
	Status        QuoteStatus `json:"status"`

	ApprovedBy    string     `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ApprovalNotes string     `json:"approval_notes,omitempty"`

	RejectedBy      string     `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the quote's validity window closed before at.
func (q Quote) Expired(at time.Time) bool {
	return q.ValidUntil != nil && q.ValidUntil.Before(at)
}
