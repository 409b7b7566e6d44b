package repository

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const (
	defaultRequestsTableName = "maintenance_requests"
	requestsStatusIndex      = "status-index"
	defaultPollInterval      = 5 * time.Second
)

type costItemAttr struct {
	Item     string  `dynamodbav:"item"`
	Quantity float64 `dynamodbav:"quantity"`
	UnitCost float64 `dynamodbav:"unit_cost"`
	Total    float64 `dynamodbav:"total"`
}

type requestItem struct {
	ID          string `dynamodbav:"id"`
	PropertyID  string `dynamodbav:"property_id"`
	UnitID      string `dynamodbav:"unit_id,omitempty"`
	TenantID    string `dynamodbav:"tenant_id,omitempty"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Priority    string `dynamodbav:"priority"`
	Status      string `dynamodbav:"status"`

	AssignedTo     string `dynamodbav:"assigned_to,omitempty"`
	AssignedToName string `dynamodbav:"assigned_to_name,omitempty"`
	AssignedAt     string `dynamodbav:"assigned_at,omitempty"`

	EstimatedCost     *float64       `dynamodbav:"estimated_cost,omitempty"`
	EstimatedDuration string         `dynamodbav:"estimated_duration,omitempty"`
	CostBreakdown     []costItemAttr `dynamodbav:"cost_breakdown,omitempty"`
	EstimateNotes     string         `dynamodbav:"estimate_notes,omitempty"`
	EstimatedAt       string         `dynamodbav:"estimated_at,omitempty"`
	QuotesRequired    bool           `dynamodbav:"quotes_required"`

	ApprovedCost   *float64 `dynamodbav:"approved_cost,omitempty"`
	ApprovedVendor string   `dynamodbav:"approved_vendor,omitempty"`
	ApprovalNotes  string   `dynamodbav:"approval_notes,omitempty"`
	ApprovedBy     string   `dynamodbav:"approved_by,omitempty"`
	ApprovedAt     string   `dynamodbav:"approved_at,omitempty"`

	RejectionNotes string `dynamodbav:"rejection_notes,omitempty"`
	RejectedAt     string `dynamodbav:"rejected_at,omitempty"`

	StartedAt string `dynamodbav:"started_at,omitempty"`

	ActualCost      *float64 `dynamodbav:"actual_cost,omitempty"`
	CompletionNotes string   `dynamodbav:"completion_notes,omitempty"`
	ActualDuration  string   `dynamodbav:"actual_duration,omitempty"`
	CompletedAt     string   `dynamodbav:"completed_at,omitempty"`

	QuotesSubmitted int    `dynamodbav:"quotes_submitted"`
	SelectedQuoteID string `dynamodbav:"selected_quote_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists MaintenanceRequest documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Every status change is a conditional put on the stored status, so two writers racing
// on the same edge cannot both land.
type RequestDynamoRepository struct {
	ddb          DynamoDBAPI
	tableName    string
	pollInterval time.Duration
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb DynamoDBAPI) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
		pollInterval: getenvDuration("SUBSCRIPTION_POLL_INTERVAL", defaultPollInterval),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.MaintenanceRequest{}, errors.Wrap(err, "marshal request")
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
		return entities.MaintenanceRequest{}, errors.Wrapf(err, "put request %s", req.ID)
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaintenanceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaintenanceRequest{}, errors.Wrapf(err, "get request %s", id)
	}
	if len(out.Item) == 0 {
		return entities.MaintenanceRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaintenanceRequest{}, errors.Wrap(err, "unmarshal request")
	}
	return fromRequestItem(it), nil
}

// List queries the status index when the filter names a status and scans otherwise.
// Results are newest first.
func (r *RequestDynamoRepository) List(ctx context.Context, filter entities.RequestFilter) ([]entities.MaintenanceRequest, error) {
	var items []map[string]types.AttributeValue
	if filter.Status != "" {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(requestsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
			},
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "query requests by status")
			}
			items = append(items, page.Items...)
		}
	} else {
		p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
			TableName: aws.String(r.tableName),
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "scan requests")
			}
			items = append(items, page.Items...)
		}
	}

	out := make([]entities.MaintenanceRequest, 0, len(items))
	for _, av := range items {
		var it requestItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshal request")
		}
		req := fromRequestItem(it)
		if filter.Matches(req) {
			out = append(out, req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *RequestDynamoRepository) Save(ctx context.Context, req entities.MaintenanceRequest, expected entities.RequestStatus) (entities.MaintenanceRequest, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.MaintenanceRequest{}, errors.Wrap(err, "marshal request")
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
			return entities.MaintenanceRequest{}, nil
		}
		return entities.MaintenanceRequest{}, interfaces.ErrStatusConflict
	}
	if err != nil {
		return entities.MaintenanceRequest{}, errors.Wrapf(err, "save request %s", req.ID)
	}
	return req, nil
}

func (r *RequestDynamoRepository) Delete(ctx context.Context, id string, expected entities.RequestStatus) error {
	cond, names, values := statusCondition(string(expected))
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(cond),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if failed, existed := conditionFailed(err); failed {
		if !existed {
			return nil
		}
		return interfaces.ErrStatusConflict
	}
	return errors.Wrapf(err, "delete request %s", id)
}

// Subscribe polls List and calls onChange whenever the matching set changes. The first
// snapshot is always delivered.
func (r *RequestDynamoRepository) Subscribe(ctx context.Context, filter entities.RequestFilter, onChange func([]entities.MaintenanceRequest), onError func(error)) func() {
	ctx, cancel := context.WithCancel(ctx)
	var once sync.Once
	unsubscribe := func() { once.Do(cancel) }

	go func() {
		ticker := time.NewTicker(r.pollInterval)
		defer ticker.Stop()

		last := ""
		first := true
		for {
			requests, err := r.List(ctx, filter)
			switch {
			case err != nil && ctx.Err() == nil:
				log.Printf("[request][repository] subscription poll failed status=%s err=%v", filter.Status, err)
				if onError != nil {
					onError(err)
				}
			case err == nil:
				if fp := fingerprint(requests); first || fp != last {
					first = false
					last = fp
					onChange(requests)
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return unsubscribe
}

func fingerprint(requests []entities.MaintenanceRequest) string {
	var b strings.Builder
	for _, req := range requests {
		b.WriteString(req.ID)
		b.WriteByte('|')
		b.WriteString(string(req.Status))
		b.WriteByte('|')
		b.WriteString(strconv.FormatInt(req.UpdatedAt.UnixNano(), 10))
		b.WriteByte(';')
	}
	return b.String()
}

func toCostItemAttrs(items []entities.CostItem) []costItemAttr {
	if len(items) == 0 {
		return nil
	}
	out := make([]costItemAttr, 0, len(items))
	for _, it := range items {
		out = append(out, costItemAttr(it))
	}
	return out
}

func fromCostItemAttrs(items []costItemAttr) []entities.CostItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.CostItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.CostItem(it))
	}
	return out
}

func toRequestItem(r entities.MaintenanceRequest) requestItem {
	return requestItem{
		ID:                r.ID,
		PropertyID:        r.PropertyID,
		UnitID:            r.UnitID,
		TenantID:          r.TenantID,
		Title:             r.Title,
		Description:       r.Description,
		Priority:          string(r.Priority),
		Status:            string(r.Status),
		AssignedTo:        r.AssignedTo,
		AssignedToName:    r.AssignedToName,
		AssignedAt:        formatTimePtr(r.AssignedAt),
		EstimatedCost:     r.EstimatedCost,
		EstimatedDuration: r.EstimatedDuration,
		CostBreakdown:     toCostItemAttrs(r.CostBreakdown),
		EstimateNotes:     r.EstimateNotes,
		EstimatedAt:       formatTimePtr(r.EstimatedAt),
		QuotesRequired:    r.QuotesRequired,
		ApprovedCost:      r.ApprovedCost,
		ApprovedVendor:    r.ApprovedVendor,
		ApprovalNotes:     r.ApprovalNotes,
		ApprovedBy:        r.ApprovedBy,
		ApprovedAt:        formatTimePtr(r.ApprovedAt),
		RejectionNotes:    r.RejectionNotes,
		RejectedAt:        formatTimePtr(r.RejectedAt),
		StartedAt:         formatTimePtr(r.StartedAt),
		ActualCost:        r.ActualCost,
		CompletionNotes:   r.CompletionNotes,
		ActualDuration:    r.ActualDuration,
		CompletedAt:       formatTimePtr(r.CompletedAt),
		QuotesSubmitted:   r.QuotesSubmitted,
		SelectedQuoteID:   r.SelectedQuoteID,
		CreatedAt:         formatTime(r.CreatedAt),
		UpdatedAt:         formatTime(r.UpdatedAt),
	}
}

func fromRequestItem(it requestItem) entities.MaintenanceRequest {
	return entities.MaintenanceRequest{
		ID:                it.ID,
		PropertyID:        it.PropertyID,
		UnitID:            it.UnitID,
		TenantID:          it.TenantID,
		Title:             it.Title,
		Description:       it.Description,
		Priority:          entities.Priority(it.Priority),
		Status:            entities.RequestStatus(it.Status),
		AssignedTo:        it.AssignedTo,
		AssignedToName:    it.AssignedToName,
		AssignedAt:        parseTimePtr(it.AssignedAt),
		EstimatedCost:     it.EstimatedCost,
		EstimatedDuration: it.EstimatedDuration,
		CostBreakdown:     fromCostItemAttrs(it.CostBreakdown),
		EstimateNotes:     it.EstimateNotes,
		EstimatedAt:       parseTimePtr(it.EstimatedAt),
		QuotesRequired:    it.QuotesRequired,
		ApprovedCost:      it.ApprovedCost,
		ApprovedVendor:    it.ApprovedVendor,
		ApprovalNotes:     it.ApprovalNotes,
		ApprovedBy:        it.ApprovedBy,
		ApprovedAt:        parseTimePtr(it.ApprovedAt),
		RejectionNotes:    it.RejectionNotes,
		RejectedAt:        parseTimePtr(it.RejectedAt),
		StartedAt:         parseTimePtr(it.StartedAt),
		ActualCost:        it.ActualCost,
		CompletionNotes:   it.CompletionNotes,
		ActualDuration:    it.ActualDuration,
		CompletedAt:       parseTimePtr(it.CompletedAt),
		QuotesSubmitted:   it.QuotesSubmitted,
		SelectedQuoteID:   it.SelectedQuoteID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
