package assistant

import "context"

// Message represents a chat turn in a provider-agnostic format.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Response is the typed output of a generation call.
type Response struct {
	Text       string
	Confidence float64
	Sources    []string
}

// Option allows optional parameters like Temperature or MaxTokens.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract any legal-assistant backend must satisfy:
// free-text in, free-text out, asynchronous, bounded latency. Swapping in a
// real inference backend must not touch the calling service.
type Provider interface {
	// Generate answers a legal question given optional prior conversation
	// history (ordered, oldest first).
	Generate(ctx context.Context, prompt string, history []Message, options ...Option) (*Response, error)

	// Analyze produces a summary of a legal document's text.
	Analyze(ctx context.Context, document string) (*Response, error)
}
