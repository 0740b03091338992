package match

import (
	"context"
	"math"
	"sort"

	"skillfit-backend/internal/shared/telemetry"
)

// DefaultThreshold is the minimum oracle similarity for a required skill to
// count as matched.
const DefaultThreshold = 0.7

// Result classifies every required skill as matched or missing. Matched and
// missing always partition the required set; Score is |matched|/|required|
// as a percentage rounded to 2 decimals.
type Result struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Matcher classifies required skills against candidate skills using an
// injected Oracle. A nil Oracle means exact-match mode.
type Matcher struct {
	Oracle    Oracle
	Threshold float64
}

// New constructs a Matcher with the default threshold.
func New(oracle Oracle) *Matcher {
	return &Matcher{Oracle: oracle, Threshold: DefaultThreshold}
}

// Match scores required against candidates. A required skill is matched when
// its best similarity against any candidate reaches the threshold. Oracle
// failures degrade to exact-match mode for this call; they are never surfaced.
func (m *Matcher) Match(ctx context.Context, required, candidates []string) Result {
	if len(required) == 0 {
		return Result{Score: 0, Matched: []string{}, Missing: []string{}}
	}
	if len(candidates) == 0 {
		missing := append([]string(nil), required...)
		sort.Strings(missing)
		return Result{Score: 0, Matched: []string{}, Missing: missing}
	}

	oracle := m.Oracle
	if oracle == nil {
		oracle = ExactOracle{}
	}
	sims, err := oracle.Similarities(ctx, required, candidates)
	if err != nil || len(sims) != len(required) {
		if err != nil {
			telemetry.Error("match.oracle_unavailable", map[string]any{"error": err.Error()})
		} else {
			telemetry.Error("match.oracle_shape_mismatch", map[string]any{
				"rows": len(sims), "required": len(required),
			})
		}
		sims, _ = ExactOracle{}.Similarities(ctx, required, candidates)
	}

	threshold := m.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for i, skill := range required {
		best := math.Inf(-1)
		for _, sim := range sims[i] {
			if sim > best {
				best = sim
			}
		}
		if best >= threshold {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	score := roundScore(float64(len(matched)) / float64(len(required)) * 100)
	return Result{Score: score, Matched: matched, Missing: missing}
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
