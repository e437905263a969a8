package services

import "fmt"

// EngineeringStatus tracks the engineering review sub-workflow on a
// quotation.
type EngineeringStatus string

const (
	EngineeringNotRequired EngineeringStatus = "not_required"
	EngineeringPending     EngineeringStatus = "pending"
	EngineeringInProgress  EngineeringStatus = "in_progress"
	EngineeringCompleted   EngineeringStatus = "completed"
	EngineeringWaived      EngineeringStatus = "waived"
)

var engineeringStatuses = map[EngineeringStatus]bool{
	EngineeringNotRequired: true,
	EngineeringPending:     true,
	EngineeringInProgress:  true,
	EngineeringCompleted:   true,
	EngineeringWaived:      true,
}

// ParseEngineeringStatus converts a raw string into an EngineeringStatus,
// rejecting values outside the closed set.
func ParseEngineeringStatus(s string) (EngineeringStatus, error) {
	status := EngineeringStatus(s)
	if !engineeringStatuses[status] {
		return "", fmt.Errorf("unknown engineering status %q", s)
	}
	return status, nil
}

// Submission gate failure reasons, for caller-facing messages.
const (
	ReasonNotReady              = "quotation is not ready for submission"
	ReasonEngineeringIncomplete = "engineering review is not complete"
)

// CanSubmit reports whether a quotation may be submitted. Submission
// requires the quotation to be in ready status. When the quotation
// requires engineering, it additionally needs an engineering review
// that is completed or waived. The returned reason identifies which
// condition failed; it is empty when submission is allowed.
//
// This gate is checked in addition to CanTransition: advancing to
// submitted needs a legal transition and a passing gate.
func CanSubmit(status Status, requiresEngineering bool, engineeringStatus EngineeringStatus) (bool, string) {
	if status != StatusReady {
		return false, ReasonNotReady
	}
	if requiresEngineering &&
		engineeringStatus != EngineeringCompleted &&
		engineeringStatus != EngineeringWaived {
		return false, ReasonEngineeringIncomplete
	}
	return true, ""
}
