package request

import (
	"errors"
	"strings"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase"
)

var (
	ErrInvalidCostItem = errors.New("invalid cost item")
)

type CreateMaintenanceRequest struct {
	PropertyID  string `json:"property_id" binding:"required"`
	UnitID      string `json:"unit_id"`
	TenantID    string `json:"tenant_id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func (r CreateMaintenanceRequest) ToInput() usecase.CreateRequestInput {
	return usecase.CreateRequestInput{
		PropertyID:  r.PropertyID,
		UnitID:      strings.TrimSpace(r.UnitID),
		TenantID:    strings.TrimSpace(r.TenantID),
		Title:       r.Title,
		Description: strings.TrimSpace(r.Description),
		Priority:    entities.Priority(strings.ToLower(strings.TrimSpace(r.Priority))),
	}
}

type CostItemRequest struct {
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	Total    float64 `json:"total"`
}

// ResolveCostItems fills in missing line totals from quantity and unit cost.
func ResolveCostItems(items []CostItemRequest) ([]entities.CostItem, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]entities.CostItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Item) == "" || it.Quantity < 0 || it.UnitCost < 0 || it.Total < 0 {
			return nil, ErrInvalidCostItem
		}
		total := it.Total
		if total == 0 {
			total = it.Quantity * it.UnitCost
		}
		out = append(out, entities.CostItem{
			Item:     strings.TrimSpace(it.Item),
			Quantity: it.Quantity,
			UnitCost: it.UnitCost,
			Total:    total,
		})
	}
	return out, nil
}

type SubmitEstimateRequest struct {
	EstimatedCost     float64           `json:"estimated_cost"`
	EstimatedDuration string            `json:"estimated_duration"`
	CostBreakdown     []CostItemRequest `json:"cost_breakdown"`
	Notes             string            `json:"notes"`
}

func (r SubmitEstimateRequest) ToInput() (usecase.EstimateInput, error) {
	items, err := ResolveCostItems(r.CostBreakdown)
	if err != nil {
		return usecase.EstimateInput{}, err
	}
	return usecase.EstimateInput{
		EstimatedCost:     r.EstimatedCost,
		EstimatedDuration: strings.TrimSpace(r.EstimatedDuration),
		CostBreakdown:     items,
		Notes:             r.Notes,
	}, nil
}

type SubmitQuoteRequest struct {
	VendorName    string            `json:"vendor_name" binding:"required"`
	VendorContact string            `json:"vendor_contact"`
	VendorEmail   string            `json:"vendor_email"`
	Amount        float64           `json:"amount"`
	ItemizedCosts []CostItemRequest `json:"itemized_costs"`
	QuoteNumber   string            `json:"quote_number"`
	ValidUntil    *time.Time        `json:"valid_until"`
	Notes         string            `json:"notes"`
}

// ToInput records submittedBy as the staff member who entered the quote.
func (r SubmitQuoteRequest) ToInput(submittedBy string) (usecase.QuoteInput, error) {
	items, err := ResolveCostItems(r.ItemizedCosts)
	if err != nil {
		return usecase.QuoteInput{}, err
	}
	return usecase.QuoteInput{
		VendorName:    r.VendorName,
		VendorContact: strings.TrimSpace(r.VendorContact),
		VendorEmail:   strings.TrimSpace(r.VendorEmail),
		Amount:        r.Amount,
		ItemizedCosts: items,
		QuoteNumber:   strings.TrimSpace(r.QuoteNumber),
		ValidUntil:    r.ValidUntil,
		Notes:         r.Notes,
		SubmittedBy:   submittedBy,
	}, nil
}

type CompleteWorkRequest struct {
	ActualCost     *float64 `json:"actual_cost"`
	Notes          string   `json:"notes"`
	ActualDuration string   `json:"actual_duration"`
}

func (r CompleteWorkRequest) ToInput() usecase.CompleteWorkInput {
	return usecase.CompleteWorkInput{
		ActualCost:     r.ActualCost,
		Notes:          r.Notes,
		ActualDuration: strings.TrimSpace(r.ActualDuration),
	}
}

type AssignRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
}

// DecisionRequest carries the landlord's notes on an approve or reject.
type DecisionRequest struct {
	Notes string `json:"notes"`
}

type RejectQuoteRequest struct {
	Reason string `json:"reason"`
}

// ListRequestsQuery is bound from the query string of GET /requests.
type ListRequestsQuery struct {
	PropertyID string `form:"property_id"`
	Status     string `form:"status"`
	AssignedTo string `form:"assigned_to"`
}

func (q ListRequestsQuery) ToFilter() (entities.RequestFilter, bool) {
	status := entities.RequestStatus(strings.TrimSpace(q.Status))
	if status != "" && !status.Valid() {
		return entities.RequestFilter{}, false
	}
	return entities.RequestFilter{
		PropertyID: strings.TrimSpace(q.PropertyID),
		Status:     status,
		AssignedTo: strings.TrimSpace(q.AssignedTo),
	}, true
}
