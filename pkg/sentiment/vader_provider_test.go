package sentiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaderProviderPolarity(t *testing.T) {
	p := NewVaderProvider()
	ctx := context.Background()

	positive, err := p.Score(ctx, "I had a wonderful, happy and peaceful day outside!")
	require.NoError(t, err)
	assert.Greater(t, positive, 0.0)

	negative, err := p.Score(ctx, "Everything is terrible, I feel awful and hopeless.")
	require.NoError(t, err)
	assert.Less(t, negative, 0.0)

	assert.LessOrEqual(t, positive, 1.0)
	assert.GreaterOrEqual(t, negative, -1.0)
}

func TestNeutralProviderAlwaysZero(t *testing.T) {
	p := NewNeutralProvider()

	score, err := p.Score(context.Background(), "anything at all")
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestNewProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"vader", false},
		{"", false},
		{"neutral", false},
		{"afinn", true},
	}

	for _, tt := range tests {
		p, err := NewProvider(tt.name)
		if tt.wantErr {
			assert.Error(t, err, "provider %q", tt.name)
		} else {
			assert.NoError(t, err)
			assert.NotNil(t, p)
		}
	}
}
