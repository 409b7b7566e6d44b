package response

import (
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase"
)

type QuoteResponse struct {
	ID              string              `json:"id"`
	RequestID       string              `json:"request_id"`
	VendorName      string              `json:"vendor_name"`
	VendorContact   string              `json:"vendor_contact,omitempty"`
	VendorEmail     string              `json:"vendor_email,omitempty"`
	Amount          float64             `json:"amount"`
	ItemizedCosts   []entities.CostItem `json:"itemized_costs,omitempty"`
	QuoteNumber     string              `json:"quote_number,omitempty"`
	ValidUntil      *time.Time          `json:"valid_until,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	SubmittedBy     string              `json:"submitted_by"`
	Status          string              `json:"status"`
	ApprovedBy      string              `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time          `json:"approved_at,omitempty"`
	ApprovalNotes   string              `json:"approval_notes,omitempty"`
	RejectedBy      string              `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time          `json:"rejected_at,omitempty"`
	RejectionReason string              `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		RequestID:       q.RequestID,
		VendorName:      q.VendorName,
		VendorContact:   q.VendorContact,
		VendorEmail:     q.VendorEmail,
		Amount:          q.Amount,
		ItemizedCosts:   q.ItemizedCosts,
		QuoteNumber:     q.QuoteNumber,
		ValidUntil:      q.ValidUntil,
		Notes:           q.Notes,
		SubmittedBy:     q.SubmittedBy,
		Status:          string(q.Status),
		ApprovedBy:      q.ApprovedBy,
		ApprovedAt:      q.ApprovedAt,
		ApprovalNotes:   q.ApprovalNotes,
		RejectedBy:      q.RejectedBy,
		RejectedAt:      q.RejectedAt,
		RejectionReason: q.RejectionReason,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteOptionResponse struct {
	QuoteResponse
	Best                 bool    `json:"best"`
	Expired              bool    `json:"expired"`
	DifferenceFromLowest float64 `json:"difference_from_lowest"`
}

type QuoteComparisonResponse struct {
	RequestID     string                `json:"request_id"`
	Options       []QuoteOptionResponse `json:"options"`
	LowestAmount  float64               `json:"lowest_amount"`
	HighestAmount float64               `json:"highest_amount"`
	Savings       float64               `json:"savings"`
}

func FromQuoteComparison(c usecase.QuoteComparison) QuoteComparisonResponse {
	res := QuoteComparisonResponse{
		RequestID:     c.RequestID,
		Options:       make([]QuoteOptionResponse, 0, len(c.Options)),
		LowestAmount:  c.LowestAmount,
		HighestAmount: c.HighestAmount,
		Savings:       c.Savings,
	}
	for _, o := range c.Options {
		res.Options = append(res.Options, QuoteOptionResponse{
			QuoteResponse:        FromQuote(o.Quote),
			Best:                 o.Best,
			Expired:              o.Expired,
			DifferenceFromLowest: o.DifferenceFromLowest,
		})
	}
	return res
}
