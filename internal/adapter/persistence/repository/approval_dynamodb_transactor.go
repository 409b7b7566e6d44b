package repository

import (
	"context"
	"log"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// maxTransactItems is the DynamoDB TransactWriteItems limit.
const maxTransactItems = 100

const conditionalCheckFailed = "ConditionalCheckFailed"

// ErrQuoteChanged means a quote moved out of pending while its approval was being
// committed. Nothing was written; the caller may retry.
var ErrQuoteChanged = errors.New("quote changed during approval")

// ApprovalDynamoTransactor writes a quote approval (request, winner, rejected siblings)
// in a single TransactWriteItems call. Each write is conditioned on the status it was
// read with.
type ApprovalDynamoTransactor struct {
	ddb           DynamoDBAPI
	requestsTable string
	quotesTable   string
}

var _ interfaces.IApprovalTransactor = (*ApprovalDynamoTransactor)(nil)

func NewApprovalDynamoTransactor(ddb DynamoDBAPI) *ApprovalDynamoTransactor {
	return &ApprovalDynamoTransactor{
		ddb:           ddb,
		requestsTable: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
		quotesTable:   getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

// QuoteTransactionsEnabled reads QUOTE_APPROVAL_TRANSACTIONS (default true).
func QuoteTransactionsEnabled() bool {
	return getenvBool("QUOTE_APPROVAL_TRANSACTIONS", true)
}

func (t *ApprovalDynamoTransactor) MaxItems() int {
	return maxTransactItems
}

func (t *ApprovalDynamoTransactor) CommitQuoteApproval(ctx context.Context, commit interfaces.QuoteApprovalCommit) error {
	requestAV, err := attributevalue.MarshalMap(toRequestItem(commit.Request))
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}

	items := make([]types.TransactWriteItem, 0, 2+len(commit.RejectedSibling))
	items = append(items, conditionalPut(t.requestsTable, requestAV, string(commit.ExpectedStatus)))

	quotes := append([]entities.Quote{commit.Winner}, commit.RejectedSibling...)
	for _, q := range quotes {
		av, err := attributevalue.MarshalMap(toQuoteItem(q))
		if err != nil {
			return errors.Wrap(err, "marshal quote")
		}
		items = append(items, conditionalPut(t.quotesTable, av, string(entities.QuoteStatusPending)))
	}
	if len(items) > maxTransactItems {
		return errors.Errorf("approval needs %d writes, transaction limit is %d", len(items), maxTransactItems)
	}

	_, err = t.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err == nil {
		return nil
	}

	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for i, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) != conditionalCheckFailed {
				continue
			}
			if i == 0 {
				return interfaces.ErrStatusConflict
			}
			log.Printf("[approval][repository] quote condition failed request_id=%s quote_id=%s", commit.Request.ID, quotes[i-1].ID)
			return errors.Wrapf(ErrQuoteChanged, "quote %s", quotes[i-1].ID)
		}
	}
	return errors.Wrapf(err, "commit approval of request %s", commit.Request.ID)
}

func conditionalPut(table string, item map[string]types.AttributeValue, expected string) types.TransactWriteItem {
	cond, names, values := statusCondition(expected)
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                           aws.String(table),
			Item:                                item,
			ConditionExpression:                 aws.String(cond),
			ExpressionAttributeNames:            names,
			ExpressionAttributeValues:           values,
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		},
	}
}
