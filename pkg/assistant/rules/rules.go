// Package rules is the rule-based fallback assistant: it pattern-matches
// substrings of the prompt and returns canned guidance after a fixed
// artificial delay. It stands in for a real inference backend and honors the
// same Provider contract, including context cancellation during the delay.
package rules

import (
	"context"
	"fmt"
	"strings"
	"time"

	"legalbridge-be/pkg/assistant"
)

const (
	replyContract   = "Based on contract law principles, you should review the terms for clarity, consideration, and legal capacity of all parties. Key areas to examine include termination clauses, liability limitations, and dispute resolution mechanisms."
	replyEmployment = "Employment law varies by jurisdiction, but generally covers wrongful termination, discrimination, wage and hour laws, and workplace safety. I recommend consulting with an employment attorney for your specific situation."
	replyTenant     = "Tenant rights typically include the right to a habitable dwelling, privacy, and protection from unlawful eviction. Check your local tenant protection laws and lease agreement for specific rights and obligations."
	replyDefault    = "This is a complex legal matter that requires careful analysis. I recommend gathering all relevant documents and consulting with a qualified attorney who specializes in this area of law."
)

type Provider struct {
	generateDelay time.Duration
	analyzeDelay  time.Duration
}

var _ assistant.Provider = (*Provider)(nil)

// New creates the rule-based provider. Delays simulate inference latency;
// zero delays are valid (used in tests).
func New(generateDelay, analyzeDelay time.Duration) *Provider {
	return &Provider{
		generateDelay: generateDelay,
		analyzeDelay:  analyzeDelay,
	}
}

func (p *Provider) Generate(ctx context.Context, prompt string, history []assistant.Message, options ...assistant.Option) (*assistant.Response, error) {
	if err := sleep(ctx, p.generateDelay); err != nil {
		return nil, err
	}

	return &assistant.Response{
		Text:       Reply(prompt),
		Confidence: 0.85,
		Sources:    []string{"Legal Database", "Case Law"},
	}, nil
}

func (p *Provider) Analyze(ctx context.Context, document string) (*assistant.Response, error) {
	if err := sleep(ctx, p.analyzeDelay); err != nil {
		return nil, err
	}

	return &assistant.Response{
		Text:       AnalysisSummary(document),
		Confidence: 0.90,
		Sources:    []string{"Contract Analysis Engine"},
	}, nil
}

// Reply selects the canned answer by substring match, case-insensitive.
func Reply(prompt string) string {
	q := strings.ToLower(prompt)
	switch {
	case strings.Contains(q, "contract"):
		return replyContract
	case strings.Contains(q, "employment"), strings.Contains(q, "job"):
		return replyEmployment
	case strings.Contains(q, "tenant"), strings.Contains(q, "rent"):
		return replyTenant
	default:
		return replyDefault
	}
}

// AnalysisSummary derives the canned document summary: document type by
// length, clause count as length/100.
func AnalysisSummary(document string) string {
	docType := "Simple Agreement"
	if len(document) > 1000 {
		docType = "Complex Contract"
	}

	return fmt.Sprintf(`Document Analysis Summary:

1. Document Type: %s
2. Key Clauses Identified: %d major provisions
3. Potential Issues: Review recommended for clarity and enforceability
4. Compliance: Generally follows standard legal formatting

Recommendations:
- Have a legal professional review complex clauses
- Ensure all parties understand their obligations
- Consider adding dispute resolution mechanisms`, docType, len(document)/100)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
