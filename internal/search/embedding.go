package search

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	logx "github.com/storefront-support/server/pkg/logger"
)

// Embedder turns text into a fixed-length vector. Every implementation must
// use a single embedding model so vector dimensions stay uniform across the
// catalog and queries.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ErrKind classifies embedding provider failures. Only transient kinds are
// eligible for retry.
type ErrKind int

const (
	KindOther ErrKind = iota
	KindRateLimited
	KindUnavailable
	KindTimeout
	KindInternal
)

// ProviderError wraps a provider failure with its classification.
type ProviderError struct {
	Kind ErrKind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedding provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is transient.
func (e *ProviderError) Retryable() bool {
	switch e.Kind {
	case KindRateLimited, KindUnavailable, KindTimeout, KindInternal:
		return true
	default:
		return false
	}
}

// IsRetryable is the retry predicate for embedding calls: transient provider
// errors only. Context cancellation is never retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable()
	}
	return false
}

func classifyStatus(code int) ErrKind {
	switch code {
	case 429:
		return KindRateLimited
	case 503:
		return KindUnavailable
	case 504:
		return KindTimeout
	case 500:
		return KindInternal
	default:
		return KindOther
	}
}

// GeminiEmbedder generates embeddings through the Gemini API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// DefaultEmbeddingModel matches the model used by the offline catalog
// embedding job; query and catalog vectors must come from the same model.
const DefaultEmbeddingModel = "text-embedding-004"

func NewGeminiEmbedder(client *genai.Client, model string) *GeminiEmbedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &GeminiEmbedder{client: client, model: model}
}

func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), nil)
	if err != nil {
		return nil, wrapGenaiError(err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, &ProviderError{Kind: KindInternal, Err: fmt.Errorf("empty embedding response")}
	}

	values := resp.Embeddings[0].Values
	vec := make([]float64, len(values))
	for i, v := range values {
		vec[i] = float64(v)
	}
	return vec, nil
}

func wrapGenaiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Kind: classifyStatus(apiErr.Code), Err: err}
	}
	return &ProviderError{Kind: KindOther, Err: err}
}

var _ Embedder = (*GeminiEmbedder)(nil)

// RetryingEmbedder applies a RetryPolicy around another embedder. On retry
// exhaustion the last provider error is returned so callers can degrade to an
// empty result instead of failing the search.
type RetryingEmbedder struct {
	Provider Embedder
	Policy   RetryPolicy
}

func (r *RetryingEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	var vec []float64
	err := r.Policy.Do(ctx, func(ctx context.Context) error {
		var err error
		vec, err = r.Provider.Embed(ctx, text)
		return err
	})
	if err != nil {
		logx.Warn().Err(err).Msg("embedding generation failed after retries")
		return nil, err
	}
	return vec, nil
}

var _ Embedder = (*RetryingEmbedder)(nil)
