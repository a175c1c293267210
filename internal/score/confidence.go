// Package score derives a confidence percentage from weighted evidence.
package score

import (
	"math"

	"github.com/claimlens/claimlens/internal/model"
)

// Confidence computes a 0-100 percentage: the credibility-weighted
// fraction of evidence agreeing with the chosen verdict. The ratio is
// rounded half away from zero (math.Round). Zero total credibility
// yields 0. Never fails; output is always in [0,100] for non-negative
// credibility scores.
func Confidence(evidence []model.EvidenceItem) int {
	total := 0
	supporting := 0

	for _, item := range evidence {
		total += item.CredibilityScore
		if item.SupportsVerdict {
			supporting += item.CredibilityScore
		}
	}

	if total == 0 {
		return 0
	}

	return int(math.Round(100 * float64(supporting) / float64(total)))
}
