package interfaces

import (
	"context"

	"nyumbanii_maintenance/internal/domain/entities"
)

// IQuoteRepository abstracts document-store persistence for Quote.
//
// Save follows the same compare-and-set contract as IRequestRepository.Save,
// keyed on the quote status.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error)
	Save(ctx context.Context, q entities.Quote, expected entities.QuoteStatus) (entities.Quote, error)
	DeleteByRequestID(ctx context.Context, requestID string) error
}

// QuoteApprovalCommit is every document write of a quote approval.
type QuoteApprovalCommit struct {
	Request         entities.MaintenanceRequest
	ExpectedStatus  entities.RequestStatus
	Winner          entities.Quote
	RejectedSibling []entities.Quote
}

// IApprovalTransactor commits a quote approval atomically when the store supports
// multi-document transactions. A failed precondition yields ErrStatusConflict.
type IApprovalTransactor interface {
	MaxItems() int
	CommitQuoteApproval(ctx context.Context, commit QuoteApprovalCommit) error
}
