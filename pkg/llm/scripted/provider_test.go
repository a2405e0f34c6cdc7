package scripted

import (
	"context"
	"math/rand"
	"testing"

	"mindgarden-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func newTestProvider() *Provider {
	return NewProvider(rand.New(rand.NewSource(42)))
}

func TestChatMatchesKeywordBucket(t *testing.T) {
	p := newTestProvider()

	tests := []struct {
		name    string
		message string
		bucket  int
	}{
		{"greeting", "Hello there!", 0},
		{"stress", "I feel completely overwhelmed by work", 1},
		{"sleep", "I'm so tired lately", 2},
		{"gratitude", "thank you, that helped", 3},
		{"nature", "I took a walk in the garden", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := p.Chat(context.Background(), []llm.Message{
				{Role: "user", Content: tt.message},
			})
			assert.NoError(t, err)
			assert.Contains(t, buckets[tt.bucket].replies, reply)
		})
	}
}

func TestChatFallsBackOnUnmatchedMessage(t *testing.T) {
	p := newTestProvider()

	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "zxqv flrm"},
	})
	assert.NoError(t, err)
	assert.Contains(t, fallbackReplies, reply)
}

func TestChatUsesNewestUserMessage(t *testing.T) {
	p := newTestProvider()

	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "You are a wellness coach."},
		{Role: "user", Content: "I feel stressed"},
		{Role: "assistant", Content: "Tell me more."},
		{Role: "user", Content: "Actually I just want to say thank you"},
	})
	assert.NoError(t, err)
	assert.Contains(t, buckets[3].replies, reply)
}

func TestChatNeverFails(t *testing.T) {
	p := newTestProvider()

	reply, err := p.Chat(context.Background(), nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, reply)
}

func TestGenerate(t *testing.T) {
	p := newTestProvider()

	reply, err := p.Generate(context.Background(), "how do I handle pressure at work")
	assert.NoError(t, err)
	assert.Contains(t, buckets[1].replies, reply)
}

func TestKeywordMatchingIsCaseInsensitive(t *testing.T) {
	p := newTestProvider()

	reply, err := p.Generate(context.Background(), "STRESSED beyond belief")
	assert.NoError(t, err)
	assert.Contains(t, buckets[1].replies, reply)
}
