package scripted

import (
	"context"
	"math/rand"
	"strings"

	"mindgarden-be/pkg/llm"
)

// Provider is the deterministic-infrastructure chat companion: it matches
// the newest user message against fixed keyword buckets and returns a
// randomly picked templated reply from the matched bucket. It needs no
// network or API key and never fails, which also makes it the degradation
// target when a real backend is down.
type Provider struct {
	rng *rand.Rand
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(rng *rand.Rand) *Provider {
	return &Provider{rng: rng}
}

type bucket struct {
	keywords []string
	replies  []string
}

// Bucket order matters: the first match wins.
var buckets = []bucket{
	{
		keywords: []string{"hello", "hi", "hey", "good morning", "good evening"},
		replies: []string{
			"Hi there! How has your day been treating you?",
			"Hey! Glad you stopped by. What's on your mind?",
			"Hello! I'm here whenever you want to talk something through.",
		},
	},
	{
		keywords: []string{"stress", "stressed", "overwhelmed", "anxious", "pressure", "burnout"},
		replies: []string{
			"That sounds heavy. Naming what's weighing on you is already a solid first step.",
			"When everything piles up, try writing down just the next single task. Small steps count.",
			"Stress shrinks when it's shared - want to tell me what part feels biggest right now?",
		},
	},
	{
		keywords: []string{"sleep", "tired", "insomnia", "exhausted", "awake"},
		replies: []string{
			"Rest is the foundation everything else stands on. Could you wind down 30 minutes earlier tonight?",
			"Screens off an hour before bed makes a bigger difference than it sounds.",
			"A short walk in daylight today often buys deeper sleep tonight.",
		},
	},
	{
		keywords: []string{"thank", "grateful", "gratitude", "appreciate"},
		replies: []string{
			"Noticing the good things is a skill - and you're practicing it right now.",
			"That's lovely to hear. What's one more thing that went right today?",
		},
	},
	{
		keywords: []string{"nature", "outside", "walk", "garden", "trees", "fresh air"},
		replies: []string{
			"Even ten minutes among trees can reset a frazzled mind. Worth a try today?",
			"Nature doesn't rush, and yet everything gets done. A walk might lend you some of that calm.",
		},
	},
}

var fallbackReplies = []string{
	"I'm listening. Tell me more about that.",
	"Thanks for sharing that with me. How did it make you feel?",
	"I hear you. What would make today a little lighter?",
}

// Chat replies to the newest user message in the history. Older turns are
// ignored - the scripted table has no memory by design of its contract.
func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	message := ""
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			message = history[i].Content
			break
		}
	}
	return p.reply(message), nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.reply(prompt), nil
}

func (p *Provider) reply(message string) string {
	lowered := strings.ToLower(message)
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lowered, kw) {
				return p.pick(b.replies)
			}
		}
	}
	return p.pick(fallbackReplies)
}

func (p *Provider) pick(replies []string) string {
	if p.rng != nil {
		return replies[p.rng.Intn(len(replies))]
	}
	return replies[rand.Intn(len(replies))]
}
