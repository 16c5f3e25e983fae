package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"legalbridge-be/pkg/assistant"
	"legalbridge-be/pkg/assistant/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the local model provider against a running Ollama instance.
// Needs OLLAMA_BASE_URL set, e.g. http://localhost:11434.
func TestOllamaProvider(t *testing.T) {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		t.Skip("Skipping integration test: OLLAMA_BASE_URL not set")
	}

	model := os.Getenv("OLLAMA_MODEL")
	if model == "" {
		model = "llama3"
	}

	provider := ollama.New(baseURL, model)

	t.Run("Generate", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		reply, err := provider.Generate(ctx, "What is a non-disclosure agreement?", nil)
		require.NoError(t, err)
		require.NotNil(t, reply)
		assert.NotEmpty(t, reply.Text)
		t.Logf("Reply: %.200s", reply.Text)
	})

	t.Run("Generate With History", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		history := []assistant.Message{
			{Role: "user", Content: "My landlord is refusing to return my deposit."},
			{Role: "assistant", Content: "You may be entitled to recover it. Which state is the property in?"},
		}

		reply, err := provider.Generate(ctx, "Maharashtra. What can I do?", history)
		require.NoError(t, err)
		require.NotNil(t, reply)
		assert.NotEmpty(t, reply.Text)
	})

	t.Run("Analyze", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		document := "This agreement is made between Party A and Party B. " +
			"Party B shall pay Party A a monthly fee of Rs. 50,000. " +
			"Either party may terminate with 30 days written notice."

		result, err := provider.Analyze(ctx, document)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.Text)
	})
}
