package repository

import (
	"context"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
)

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Title     string `dynamodbav:"title"`
	Message   string `dynamodbav:"message"`
	Type      string `dynamodbav:"type"`
	RelatedID string `dynamodbav:"related_id"`
	Read      bool   `dynamodbav:"read"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoDispatcher writes notifications to the table the tenant and staff
// portals read from.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type NotificationDynamoDispatcher struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.INotificationDispatcher = (*NotificationDynamoDispatcher)(nil)

func NewNotificationDynamoDispatcher(ddb DynamoDBAPI) *NotificationDynamoDispatcher {
	return &NotificationDynamoDispatcher{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (d *NotificationDynamoDispatcher) Enqueue(ctx context.Context, n entities.Notification) error {
	av, err := attributevalue.MarshalMap(notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		RelatedID: n.RelatedID,
		Read:      n.Read,
		CreatedAt: formatTime(n.CreatedAt),
	})
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}

	_, err = d.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      av,
	})
	if err != nil {
		return errors.Wrapf(err, "put notification %s", n.ID)
	}
	return nil
}
