package services

// MarketClassification is the external classifier's verdict on a new
// quotation. The engine consumes RequiresEngineering verbatim; the
// complexity score that produced it is the classifier's own business.
type MarketClassification struct {
	MarketType          string
	ComplexityScore     float64
	ComplexityFactors   []string
	RequiresEngineering bool
}

// InitialStatus picks the workflow entry state for a freshly created
// quotation: engineering review when the classification demands it,
// draft otherwise.
func InitialStatus(c MarketClassification) Status {
	if c.RequiresEngineering {
		return StatusEngineeringReview
	}
	return StatusDraft
}

// InitialEngineeringStatus returns the engineering sub-state matching the
// classification: pending when review is required, not_required otherwise.
func InitialEngineeringStatus(c MarketClassification) EngineeringStatus {
	if c.RequiresEngineering {
		return EngineeringPending
	}
	return EngineeringNotRequired
}
