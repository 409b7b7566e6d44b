package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"nyumbanii_maintenance/internal/adapter/persistence/repository/mocks"
	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/mock/gomock"
)

func sampleCommit() interfaces.QuoteApprovalCommit {
	now := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	req := sampleRequest(entities.RequestStatusApproved)
	return interfaces.QuoteApprovalCommit{
		Request:        req,
		ExpectedStatus: entities.RequestStatusQuotesSubmitted,
		Winner:         entities.Quote{ID: "q1", RequestID: req.ID, VendorName: "Acme", Amount: 11000, Status: entities.QuoteStatusApproved, CreatedAt: now, UpdatedAt: now},
		RejectedSibling: []entities.Quote{
			{ID: "q2", RequestID: req.ID, VendorName: "Bolt", Amount: 13000, Status: entities.QuoteStatusRejected, CreatedAt: now, UpdatedAt: now},
		},
	}
}

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestApprovalDynamoTransactor_CommitQuoteApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("writes request and quotes in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
				if len(in.TransactItems) != 3 {
					t.Fatalf("expected 3 writes, got %d", len(in.TransactItems))
				}
				want := []string{"quotes_submitted", "pending", "pending"}
				for i, item := range in.TransactItems {
					expected, _ := item.Put.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS)
					if expected == nil || expected.Value != want[i] {
						t.Errorf("write %d: unexpected condition value %+v", i, item.Put.ExpressionAttributeValues)
					}
				}
				if aws.ToString(in.TransactItems[0].Put.TableName) != defaultRequestsTableName {
					t.Errorf("first write must target the requests table")
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		)
		tx := NewApprovalDynamoTransactor(ddb)

		if err := tx.CommitQuoteApproval(ctx, sampleCommit()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("request moved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, cancelled(conditionalCheckFailed, "None", "None"))
		tx := NewApprovalDynamoTransactor(ddb)

		if err := tx.CommitQuoteApproval(ctx, sampleCommit()); !errors.Is(err, interfaces.ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("sibling moved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, cancelled("None", "None", conditionalCheckFailed))
		tx := NewApprovalDynamoTransactor(ddb)

		err := tx.CommitQuoteApproval(ctx, sampleCommit())
		if !errors.Is(err, ErrQuoteChanged) || errors.Is(err, interfaces.ErrStatusConflict) {
			t.Fatalf("expected ErrQuoteChanged, got %v", err)
		}
	})

	t.Run("too many siblings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		tx := NewApprovalDynamoTransactor(ddb)

		commit := sampleCommit()
		commit.RejectedSibling = make([]entities.Quote, maxTransactItems)
		if err := tx.CommitQuoteApproval(ctx, commit); err == nil {
			t.Fatalf("expected an error above the transaction limit")
		}
	})
}

func TestQuoteDynamoRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

	t.Run("lists quotes oldest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		late := toQuoteItem(entities.Quote{ID: "q2", RequestID: "r1", Status: entities.QuoteStatusPending, CreatedAt: now.Add(time.Minute)})
		early := toQuoteItem(entities.Quote{ID: "q1", RequestID: "r1", Status: entities.QuoteStatusPending, CreatedAt: now})
		ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
				if aws.ToString(in.IndexName) != quotesRequestIDIndex {
					t.Errorf("unexpected index %s", aws.ToString(in.IndexName))
				}
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
					mustMarshal(t, late), mustMarshal(t, early),
				}}, nil
			},
		)
		repo := NewQuoteDynamoRepository(ddb)

		got, err := repo.ListByRequestID(ctx, "r1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "q1" || got[1].ID != "q2" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("save conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, &types.ConditionalCheckFailedException{
			Item: mustMarshal(t, toQuoteItem(entities.Quote{ID: "q1", Status: entities.QuoteStatusRejected, CreatedAt: now})),
		})
		repo := NewQuoteDynamoRepository(ddb)

		_, err := repo.Save(ctx, entities.Quote{ID: "q1", Status: entities.QuoteStatusApproved}, entities.QuoteStatusPending)
		if !errors.Is(err, interfaces.ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("delete by request removes every quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ddb := mocks.NewMockDynamoDBAPI(ctrl)
		ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
			mustMarshal(t, toQuoteItem(entities.Quote{ID: "q1", RequestID: "r1", CreatedAt: now})),
			mustMarshal(t, toQuoteItem(entities.Quote{ID: "q2", RequestID: "r1", CreatedAt: now})),
		}}, nil)
		ddb.EXPECT().DeleteItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.DeleteItemOutput{}, nil).Times(2)
		repo := NewQuoteDynamoRepository(ddb)

		if err := repo.DeleteByRequestID(ctx, "r1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
