package entities

// Staff is a member of the landlord's maintenance team. UserID is the linked portal
// account; staff without one cannot receive notifications.
type Staff struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
}

func (s Staff) HasPortalAccount() bool {
	return s.UserID != ""
}
