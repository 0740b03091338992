package match

import (
	"context"

	"skillfit-backend/internal/skills"
)

// Oracle scores semantic similarity between two term lists. Implementations
// must answer with a single batched call: sims[i][j] is the similarity of
// required[i] to candidates[j] in a bounded cosine-style range.
type Oracle interface {
	Similarities(ctx context.Context, required, candidates []string) ([][]float64, error)
}

// ExactOracle is the degenerate in-memory oracle: two terms are similar only
// when their normalized forms are equal. It is the default when no embedding
// backend is configured and the fallback when one misbehaves.
type ExactOracle struct{}

// Similarities implements Oracle.
func (ExactOracle) Similarities(_ context.Context, required, candidates []string) ([][]float64, error) {
	sims := make([][]float64, len(required))
	for i, req := range required {
		row := make([]float64, len(candidates))
		for j, cand := range candidates {
			if skills.Normalize(req) == skills.Normalize(cand) {
				row[j] = 1
			}
		}
		sims[i] = row
	}
	return sims, nil
}
