package repository

import (
	"context"
	"sort"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const (
	defaultQuotesTableName = "maintenance_quotes"
	quotesRequestIDIndex   = "request_id-index"
)

type quoteItem struct {
	ID            string         `dynamodbav:"id"`
	RequestID     string         `dynamodbav:"request_id"`
	VendorName    string         `dynamodbav:"vendor_name"`
	VendorContact string         `dynamodbav:"vendor_contact,omitempty"`
	VendorEmail   string         `dynamodbav:"vendor_email,omitempty"`
	Amount        float64        `dynamodbav:"amount"`
	ItemizedCosts []costItemAttr `dynamodbav:"itemized_costs,omitempty"`
	QuoteNumber   string         `dynamodbav:"quote_number,omitempty"`
	ValidUntil    string         `dynamodbav:"valid_until,omitempty"`
	Notes         string         `dynamodbav:"notes,omitempty"`
	SubmittedBy   string         `dynamodbav:"submitted_by"`
	Status        string         `dynamodbav:"status"`

	ApprovedBy    string `dynamodbav:"approved_by,omitempty"`
	ApprovedAt    string `dynamodbav:"approved_at,omitempty"`
	ApprovalNotes string `dynamodbav:"approval_notes,omitempty"`

	RejectedBy      string `dynamodbav:"rejected_by,omitempty"`
	RejectedAt      string `dynamodbav:"rejected_at,omitempty"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)
type QuoteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoDBAPI) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, errors.Wrap(err, "marshal quote")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, errors.Wrapf(err, "put quote %s", q.ID)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, errors.Wrapf(err, "get quote %s", id)
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, errors.Wrap(err, "unmarshal quote")
	}
	return fromQuoteItem(it), nil
}

// ListByRequestID returns the quotes of a request, oldest first.
func (r *QuoteDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})

	out := make([]entities.Quote, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "query quotes of request %s", requestID)
		}
		for _, av := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, errors.Wrap(err, "unmarshal quote")
			}
			out = append(out, fromQuoteItem(it))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote, expected entities.QuoteStatus) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, errors.Wrap(err, "marshal quote")
	}
	cond, names, values := statusCondition(string(expected))

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                           aws.String(r.tableName),
		Item:                                av,
		ConditionExpression:                 aws.String(cond),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if failed, existed := conditionFailed(err); failed {
		if !existed {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, interfaces.ErrStatusConflict
	}
	if err != nil {
		return entities.Quote{}, errors.Wrapf(err, "save quote %s", q.ID)
	}
	return q, nil
}

// DeleteByRequestID removes every quote of a request. It is not atomic; a failure part
// way leaves the remaining quotes in place and a retry finishes the job.
func (r *QuoteDynamoRepository) DeleteByRequestID(ctx context.Context, requestID string) error {
	quotes, err := r.ListByRequestID(ctx, requestID)
	if err != nil {
		return err
	}
	for _, q := range quotes {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: q.ID},
			},
		})
		if err != nil {
			return errors.Wrapf(err, "delete quote %s", q.ID)
		}
	}
	return nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:              q.ID,
		RequestID:       q.RequestID,
		VendorName:      q.VendorName,
		VendorContact:   q.VendorContact,
		VendorEmail:     q.VendorEmail,
		Amount:          q.Amount,
		ItemizedCosts:   toCostItemAttrs(q.ItemizedCosts),
		QuoteNumber:     q.QuoteNumber,
		ValidUntil:      formatTimePtr(q.ValidUntil),
		Notes:           q.Notes,
		SubmittedBy:     q.SubmittedBy,
		Status:          string(q.Status),
		ApprovedBy:      q.ApprovedBy,
		ApprovedAt:      formatTimePtr(q.ApprovedAt),
		ApprovalNotes:   q.ApprovalNotes,
		RejectedBy:      q.RejectedBy,
		RejectedAt:      formatTimePtr(q.RejectedAt),
		RejectionReason: q.RejectionReason,
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:              it.ID,
		RequestID:       it.RequestID,
		VendorName:      it.VendorName,
		VendorContact:   it.VendorContact,
		VendorEmail:     it.VendorEmail,
		Amount:          it.Amount,
		ItemizedCosts:   fromCostItemAttrs(it.ItemizedCosts),
		QuoteNumber:     it.QuoteNumber,
		ValidUntil:      parseTimePtr(it.ValidUntil),
		Notes:           it.Notes,
		SubmittedBy:     it.SubmittedBy,
		Status:          entities.QuoteStatus(it.Status),
		ApprovedBy:      it.ApprovedBy,
		ApprovedAt:      parseTimePtr(it.ApprovedAt),
		ApprovalNotes:   it.ApprovalNotes,
		RejectedBy:      it.RejectedBy,
		RejectedAt:      parseTimePtr(it.RejectedAt),
		RejectionReason: it.RejectionReason,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
