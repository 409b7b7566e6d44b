package entities

import "time"

// Notification is a user-facing message delivered to a portal account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	RelatedID string    `json:"related_id"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
