package sentiment

import "context"

// Provider scores free text for sentiment valence. Implementations return a
// polarity in [-1, 1]; anything else a caller should treat as a bug in the
// provider, not clamp silently.
type Provider interface {
	Score(ctx context.Context, text string) (float64, error)
}
