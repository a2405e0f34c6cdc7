package sentiment

import (
	"context"

	"github.com/jonreiter/govader"
)

// VaderProvider scores text locally with the VADER lexicon. No network,
// no API key; the compound score is already normalized to [-1, 1].
type VaderProvider struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderProvider() *VaderProvider {
	return &VaderProvider{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (p *VaderProvider) Score(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return p.analyzer.PolarityScores(text).Compound, nil
}
