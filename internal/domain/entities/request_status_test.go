package entities

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := map[RequestStatus][]RequestStatus{
		RequestStatusPending:         {RequestStatusInProgress, RequestStatusEstimated, RequestStatusQuotesSubmitted},
		RequestStatusEstimated:       {RequestStatusApproved, RequestStatusEstimateRejected},
		RequestStatusQuotesSubmitted: {RequestStatusApproved},
		RequestStatusApproved:        {RequestStatusInProgress},
		RequestStatusInProgress:      {RequestStatusCompleted},
	}

	for _, from := range AllRequestStatuses {
		for _, to := range AllRequestStatuses {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			if got := CanTransition(from, to, false); got != want {
				t.Fatalf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}
}

func TestCanTransition_QuotesRequiredOpensQuoteEdge(t *testing.T) {
	if CanTransition(RequestStatusEstimated, RequestStatusQuotesSubmitted, false) {
		t.Fatalf("estimated -> quotes_submitted must be closed without quotes required")
	}
	if !CanTransition(RequestStatusEstimated, RequestStatusQuotesSubmitted, true) {
		t.Fatalf("estimated -> quotes_submitted must open when quotes are required")
	}
}

func TestRequestStatusHelpers(t *testing.T) {
	if !RequestStatusCompleted.Terminal() || RequestStatusApproved.Terminal() {
		t.Fatalf("only completed is terminal")
	}
	if RequestStatus("cancelled").Valid() {
		t.Fatalf("unknown status must be invalid")
	}
	for _, s := range AllRequestStatuses {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if !RequestStatusInProgress.CarriesApproval() || RequestStatusEstimated.CarriesApproval() {
		t.Fatalf("unexpected CarriesApproval result")
	}
}
