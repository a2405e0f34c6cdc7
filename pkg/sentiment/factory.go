package sentiment

import "fmt"

// NewProvider selects a sentiment backend by name.
func NewProvider(providerType string) (Provider, error) {
	switch providerType {
	case "vader", "":
		return NewVaderProvider(), nil
	case "neutral":
		return NewNeutralProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported sentiment provider: %s", providerType)
	}
}
