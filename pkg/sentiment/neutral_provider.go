package sentiment

import "context"

// NeutralProvider always returns polarity 0. Used as the degraded fallback
// when the real provider is unavailable, and in tests that need a fixed
// polarity without stubbing.
type NeutralProvider struct{}

func NewNeutralProvider() *NeutralProvider {
	return &NeutralProvider{}
}

func (p *NeutralProvider) Score(ctx context.Context, text string) (float64, error) {
	return 0, nil
}
