package repository

import (
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

// conditionFailed reports whether err is a failed ConditionExpression, and whether the
// item existed at the time (ReturnValuesOnConditionCheckFailure=ALL_OLD).
func conditionFailed(err error) (failed bool, itemExisted bool) {
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return false, false
	}
	return true, len(cfe.Item) > 0
}

func statusCondition(expected string) (string, map[string]string, map[string]types.AttributeValue) {
	return "#status = :expected",
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{":expected": &types.AttributeValueMemberS{Value: expected}}
}
