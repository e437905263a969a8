package services

import "testing"

func TestInitialStatus(t *testing.T) {
	tests := []struct {
		name           string
		classification MarketClassification
		expect         Status
	}{
		{
			name: "engineering required",
			classification: MarketClassification{
				MarketType:          "project_cargo",
				ComplexityScore:     35,
				ComplexityFactors:   []string{"oversize", "multi-leg"},
				RequiresEngineering: true,
			},
			expect: StatusEngineeringReview,
		},
		{
			name: "no engineering",
			classification: MarketClassification{
				MarketType:      "general_cargo",
				ComplexityScore: 5,
			},
			expect: StatusDraft,
		},
		{
			// The resolver trusts the flag verbatim; the score that
			// produced it is the classifier's concern.
			name: "high score but flag unset",
			classification: MarketClassification{
				MarketType:      "general_cargo",
				ComplexityScore: 80,
			},
			expect: StatusDraft,
		},
		{
			name: "low score but flag set",
			classification: MarketClassification{
				MarketType:          "coastal",
				ComplexityScore:     3,
				RequiresEngineering: true,
			},
			expect: StatusEngineeringReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InitialStatus(tt.classification); got != tt.expect {
				t.Errorf("InitialStatus() = %s, want %s", got, tt.expect)
			}
		})
	}
}

func TestInitialEngineeringStatus(t *testing.T) {
	withEng := MarketClassification{RequiresEngineering: true}
	if got := InitialEngineeringStatus(withEng); got != EngineeringPending {
		t.Errorf("InitialEngineeringStatus(requires) = %s, want pending", got)
	}
	if got := InitialEngineeringStatus(MarketClassification{}); got != EngineeringNotRequired {
		t.Errorf("InitialEngineeringStatus(plain) = %s, want not_required", got)
	}
}
