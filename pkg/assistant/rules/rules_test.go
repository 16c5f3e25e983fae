package rules

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplySelection(t *testing.T) {
	assert.Contains(t, Reply("Help me review a contract"), "contract law principles")
	assert.Contains(t, Reply("I lost my JOB last week"), "Employment law varies")
	assert.Contains(t, Reply("What are my tenant rights?"), "Tenant rights typically include")
	assert.Contains(t, Reply("my landlord raised the rent"), "Tenant rights typically include")
	assert.Contains(t, Reply("How to file a small claims case?"), "complex legal matter")
}

func TestGenerateResponseShape(t *testing.T) {
	p := New(0, 0)

	res, err := p.Generate(context.Background(), "contract question", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.85, res.Confidence)
	assert.Equal(t, []string{"Legal Database", "Case Law"}, res.Sources)
	assert.NotEmpty(t, res.Text)
}

func TestGenerateHonorsCancellation(t *testing.T) {
	p := New(time.Minute, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, "anything", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalysisSummary(t *testing.T) {
	short := AnalysisSummary(strings.Repeat("a", 250))
	assert.Contains(t, short, "Simple Agreement")
	assert.Contains(t, short, "2 major provisions")

	long := AnalysisSummary(strings.Repeat("a", 1500))
	assert.Contains(t, long, "Complex Contract")
	assert.Contains(t, long, "15 major provisions")
}
