package factory

import (
	"fmt"
	"time"

	"legalbridge-be/pkg/assistant"
	"legalbridge-be/pkg/assistant/ollama"
	"legalbridge-be/pkg/assistant/remote"
	"legalbridge-be/pkg/assistant/rules"
)

// NewProvider builds an assistant backend by name. The rules provider needs
// no external services and is the fallback for local development.
func NewProvider(providerType, modelName, baseURL, apiKey string) (assistant.Provider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.New(baseURL, modelName), nil
	case "remote":
		return remote.New(apiKey, baseURL, modelName), nil
	case "rules", "":
		return rules.New(1500*time.Millisecond, 2*time.Second), nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s", providerType)
	}
}
