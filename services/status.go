// Package services implements the quotation lifecycle engine: workflow
// status rules, financial aggregation, shipment splitting and document
// export for the freight back office.
package services

import "fmt"

// Status is a quotation workflow state.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusEngineeringReview Status = "engineering_review"
	StatusReady             Status = "ready"
	StatusSubmitted         Status = "submitted"
	StatusWon               Status = "won"
	StatusLost              Status = "lost"
	StatusCancelled         Status = "cancelled"
)

// AllStatuses lists every workflow state in pipeline order.
var AllStatuses = []Status{
	StatusDraft,
	StatusEngineeringReview,
	StatusReady,
	StatusSubmitted,
	StatusWon,
	StatusLost,
	StatusCancelled,
}

// statusTransitions is the legal-transition table. Terminal states map to
// an empty target set. Cancellation is allowed from every non-terminal
// state.
var statusTransitions = map[Status][]Status{
	StatusDraft:             {StatusReady, StatusCancelled},
	StatusEngineeringReview: {StatusDraft, StatusReady, StatusCancelled},
	StatusReady:             {StatusDraft, StatusSubmitted, StatusCancelled},
	StatusSubmitted:         {StatusWon, StatusLost, StatusCancelled},
	StatusWon:               {},
	StatusLost:              {},
	StatusCancelled:         {},
}

// ParseStatus converts a raw string into a Status. Unknown values are
// rejected so that bad input is caught at the boundary instead of leaking
// into the workflow as an "unknown status" branch.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if _, ok := statusTransitions[status]; !ok {
		return "", fmt.Errorf("unknown quotation status %q", s)
	}
	return status, nil
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(s Status) bool {
	return len(statusTransitions[s]) == 0
}

// LegalTargets returns the statuses reachable from the given state.
// Terminal states return an empty slice. The result is a copy; callers may
// modify it freely.
func LegalTargets(from Status) []Status {
	targets := statusTransitions[from]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransition reports whether moving from one status to another is legal
// per the transition table.
func CanTransition(from, to Status) bool {
	for _, t := range statusTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
