package factory

import (
	"fmt"

	"mindgarden-be/pkg/llm"
	"mindgarden-be/pkg/llm/ollama"
	"mindgarden-be/pkg/llm/openai"
	"mindgarden-be/pkg/llm/scripted"
)

// NewLLMProvider selects the chat companion backend. "scripted" is the
// default so the service runs with no key and no local model.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "scripted", "":
		return scripted.NewProvider(nil), nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
