package services

import (
	"testing"
)

// expectedTransitions mirrors the workflow rules independently of the
// implementation's table so every (from, to) pair gets checked.
var expectedTransitions = map[Status]map[Status]bool{
	StatusDraft:             {StatusReady: true, StatusCancelled: true},
	StatusEngineeringReview: {StatusDraft: true, StatusReady: true, StatusCancelled: true},
	StatusReady:             {StatusDraft: true, StatusSubmitted: true, StatusCancelled: true},
	StatusSubmitted:         {StatusWon: true, StatusLost: true, StatusCancelled: true},
	StatusWon:               {},
	StatusLost:              {},
	StatusCancelled:         {},
}

func TestCanTransition_AllPairs(t *testing.T) {
	if len(AllStatuses) != 7 {
		t.Fatalf("expected 7 workflow states, got %d", len(AllStatuses))
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := expectedTransitions[from][to]
			got := CanTransition(from, to)
			if got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	terminals := []Status{StatusWon, StatusLost, StatusCancelled}
	for _, from := range terminals {
		for _, to := range AllStatuses {
			if CanTransition(from, to) {
				t.Errorf("CanTransition(%s, %s) = true, terminal states must have no outgoing transitions", from, to)
			}
		}
		if !IsTerminal(from) {
			t.Errorf("IsTerminal(%s) = false, want true", from)
		}
		if targets := LegalTargets(from); len(targets) != 0 {
			t.Errorf("LegalTargets(%s) = %v, want empty", from, targets)
		}
	}
}

func TestCanTransition_CancelAlwaysLegalFromNonTerminal(t *testing.T) {
	for _, from := range AllStatuses {
		if IsTerminal(from) {
			continue
		}
		if !CanTransition(from, StatusCancelled) {
			t.Errorf("CanTransition(%s, cancelled) = false, cancellation must be legal from every non-terminal state", from)
		}
	}
}

func TestLegalTargets_ReturnsCopy(t *testing.T) {
	targets := LegalTargets(StatusDraft)
	if len(targets) == 0 {
		t.Fatal("LegalTargets(draft) returned no targets")
	}
	targets[0] = StatusWon

	if CanTransition(StatusDraft, StatusWon) {
		t.Error("mutating LegalTargets result changed the transition table")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{"draft", "draft", StatusDraft, false},
		{"engineering_review", "engineering_review", StatusEngineeringReview, false},
		{"ready", "ready", StatusReady, false},
		{"submitted", "submitted", StatusSubmitted, false},
		{"won", "won", StatusWon, false},
		{"lost", "lost", StatusLost, false},
		{"cancelled", "cancelled", StatusCancelled, false},
		{"empty", "", "", true},
		{"unknown", "pending", "", true},
		{"case_sensitive", "Draft", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseStatus(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
