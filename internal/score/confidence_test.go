package score

import (
	"testing"

	"github.com/claimlens/claimlens/internal/model"
)

func TestConfidence_Empty(t *testing.T) {
	if got := Confidence(nil); got != 0 {
		t.Errorf("Confidence(nil) = %d, want 0", got)
	}
	if got := Confidence([]model.EvidenceItem{}); got != 0 {
		t.Errorf("Confidence(empty) = %d, want 0", got)
	}
}

func TestConfidence_ZeroTotalCredibility(t *testing.T) {
	evidence := []model.EvidenceItem{
		{SourceName: "a", CredibilityScore: 0, SupportsVerdict: true},
		{SourceName: "b", CredibilityScore: 0, SupportsVerdict: false},
	}

	if got := Confidence(evidence); got != 0 {
		t.Errorf("Confidence with zero total = %d, want 0", got)
	}
}

func TestConfidence_AllSupporting(t *testing.T) {
	// total == supporting regardless of the credibility distribution.
	evidence := []model.EvidenceItem{
		{SourceName: "reuters.com", CredibilityScore: 10, SupportsVerdict: true},
		{SourceName: "npr.org", CredibilityScore: 9, SupportsVerdict: true},
		{SourceName: "randomblog.example", CredibilityScore: 3, SupportsVerdict: true},
	}

	if got := Confidence(evidence); got != 100 {
		t.Errorf("Confidence all-supporting = %d, want 100", got)
	}
}

func TestConfidence_WeightedFraction(t *testing.T) {
	tests := []struct {
		desc     string
		evidence []model.EvidenceItem
		want     int
	}{
		{
			desc: "Half by weight",
			evidence: []model.EvidenceItem{
				{CredibilityScore: 5, SupportsVerdict: true},
				{CredibilityScore: 5, SupportsVerdict: false},
			},
			want: 50,
		},
		{
			desc: "High-credibility support dominates",
			evidence: []model.EvidenceItem{
				{CredibilityScore: 10, SupportsVerdict: true},
				{CredibilityScore: 2, SupportsVerdict: false},
			},
			want: 83, // round(100 * 10/12) = round(83.33)
		},
		{
			desc: "Rounds half away from zero",
			evidence: []model.EvidenceItem{
				{CredibilityScore: 1, SupportsVerdict: true},
				{CredibilityScore: 7, SupportsVerdict: false},
			},
			want: 13, // round(100 * 1/8) = round(12.5)
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := Confidence(tt.evidence); got != tt.want {
				t.Errorf("Confidence = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfidence_Monotonicity(t *testing.T) {
	base := []model.EvidenceItem{
		{CredibilityScore: 5, SupportsVerdict: true},
		{CredibilityScore: 5, SupportsVerdict: false},
	}
	baseline := Confidence(base)

	// Raising the credibility of supporting evidence never lowers
	// confidence.
	raisedSupport := []model.EvidenceItem{
		{CredibilityScore: 9, SupportsVerdict: true},
		{CredibilityScore: 5, SupportsVerdict: false},
	}
	if got := Confidence(raisedSupport); got < baseline {
		t.Errorf("confidence decreased when supporting credibility rose: %d < %d", got, baseline)
	}

	// Raising the credibility of non-supporting evidence never raises it.
	raisedOpposition := []model.EvidenceItem{
		{CredibilityScore: 5, SupportsVerdict: true},
		{CredibilityScore: 9, SupportsVerdict: false},
	}
	if got := Confidence(raisedOpposition); got > baseline {
		t.Errorf("confidence increased when non-supporting credibility rose: %d > %d", got, baseline)
	}
}
