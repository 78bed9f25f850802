package metrics

import (
	"strings"

	"github.com/samber/lo"
)

// SimpleAccuracy is a placeholder exact-match metric for VQA-style answers:
// the fraction of prediction/reference pairs whose case-folded,
// whitespace-trimmed values are equal. Pairs beyond the shorter sequence
// are ignored. Returns 0.0 for an empty predictions sequence.
func SimpleAccuracy(predictions, references []string) float64 {
	if len(predictions) == 0 {
		return 0.0
	}

	// lo.Zip2 pads unequal slices with zero values; zip semantics here
	// must truncate instead.
	n := min(len(predictions), len(references))
	pairs := lo.Zip2(predictions[:n], references[:n])
	correct := lo.CountBy(pairs, func(pair lo.Tuple2[string, string]) bool {
		return strings.EqualFold(strings.TrimSpace(pair.A), strings.TrimSpace(pair.B))
	})

	return float64(correct) / float64(len(predictions))
}
