package gemini

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-embedding-001"

type embedder interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Oracle scores term similarity from Gemini embeddings. Required and
// candidate terms are embedded together in one EmbedContent call; cosine
// similarity is computed locally.
type Oracle struct {
	models embedder
	model  string
}

// New creates an Oracle backed by the Gemini API.
func New(ctx context.Context, apiKey, model string) (*Oracle, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Oracle{models: client.Models, model: model}, nil
}

// Similarities implements match.Oracle.
func (o *Oracle) Similarities(ctx context.Context, required, candidates []string) ([][]float64, error) {
	if o == nil || o.models == nil {
		return nil, errors.New("gemini oracle is not initialized")
	}

	terms := make([]string, 0, len(required)+len(candidates))
	terms = append(terms, required...)
	terms = append(terms, candidates...)

	vectors, err := o.embed(ctx, terms)
	if err != nil {
		return nil, err
	}
	reqVecs := vectors[:len(required)]
	candVecs := vectors[len(required):]

	sims := make([][]float64, len(required))
	for i := range reqVecs {
		row := make([]float64, len(candVecs))
		for j := range candVecs {
			row[j] = cosine(reqVecs[i], candVecs[j])
		}
		sims[i] = row
	}
	return sims, nil
}

func (o *Oracle) embed(ctx context.Context, terms []string) ([][]float64, error) {
	contents := make([]*genai.Content, len(terms))
	for i, term := range terms {
		contents[i] = genai.NewContentFromText(term, genai.RoleUser)
	}

	resp, err := o.models.EmbedContent(ctx, o.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("embed terms: %w", err)
	}
	if resp == nil || len(resp.Embeddings) != len(terms) {
		return nil, fmt.Errorf("embed terms: got %d embeddings for %d terms", embeddingCount(resp), len(terms))
	}

	vectors := make([][]float64, len(terms))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("embed terms: empty embedding for %q", terms[i])
		}
		vec := make([]float64, len(emb.Values))
		for j, v := range emb.Values {
			vec[j] = float64(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func embeddingCount(resp *genai.EmbedContentResponse) int {
	if resp == nil {
		return 0
	}
	return len(resp.Embeddings)
}

func cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
