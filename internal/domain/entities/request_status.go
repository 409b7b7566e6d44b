package entities

// RequestStatus is the closed set of lifecycle states of a maintenance request.
//
// Edges:
//   - pending -> in-progress -> completed
//   - pending -> estimated -> approved | estimate_rejected
//   - pending -> quotes_submitted -> approved
//   - approved -> in-progress
//   - estimated -> quotes_submitted (only when the policy mandated formal quotes)
type RequestStatus string

const (
	RequestStatusPending          RequestStatus = "pending"
	RequestStatusEstimated        RequestStatus = "estimated"
	RequestStatusEstimateRejected RequestStatus = "estimate_rejected"
	RequestStatusQuotesSubmitted  RequestStatus = "quotes_submitted"
	RequestStatusApproved         RequestStatus = "approved"
	RequestStatusInProgress       RequestStatus = "in-progress"
	RequestStatusCompleted        RequestStatus = "completed"
)

// AllRequestStatuses lists every status in lifecycle order.
var AllRequestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusEstimated,
	RequestStatusEstimateRejected,
	RequestStatusQuotesSubmitted,
	RequestStatusApproved,
	RequestStatusInProgress,
	RequestStatusCompleted,
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusEstimated, RequestStatusEstimateRejected,
		RequestStatusQuotesSubmitted, RequestStatusApproved, RequestStatusInProgress, RequestStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further edge leaves the status.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted
}

// CarriesApproval reports whether a request in this status holds an approved cost
// when it got there through an approval edge.
func (s RequestStatus) CarriesApproval() bool {
	switch s {
	case RequestStatusApproved, RequestStatusInProgress, RequestStatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is a lifecycle edge. quotesRequired is the
// request flag set when the policy refused a single estimate.
func CanTransition(from, to RequestStatus, quotesRequired bool) bool {
	switch from {
	case RequestStatusPending:
		switch to {
		case RequestStatusInProgress, RequestStatusEstimated, RequestStatusQuotesSubmitted:
			return true
		}
	case RequestStatusEstimated:
		switch to {
		case RequestStatusApproved, RequestStatusEstimateRejected:
			return true
		case RequestStatusQuotesSubmitted:
			return quotesRequired
		}
	case RequestStatusQuotesSubmitted:
		return to == RequestStatusApproved
	case RequestStatusApproved:
		return to == RequestStatusInProgress
	case RequestStatusInProgress:
		return to == RequestStatusCompleted
	case RequestStatusEstimateRejected, RequestStatusCompleted:
		return false
	}
	return false
}

// Priority of a maintenance request.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
