package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAssistantPendingGuard(t *testing.T) {
	svc := &assistantService{pending: make(map[uuid.UUID]struct{})}
	sessionID := uuid.New()
	other := uuid.New()

	// First sender wins, the second is refused until the reply lands.
	assert.True(t, svc.tryAcquire(sessionID))
	assert.False(t, svc.tryAcquire(sessionID))

	// A different conversation is unaffected.
	assert.True(t, svc.tryAcquire(other))

	svc.release(sessionID)
	assert.True(t, svc.tryAcquire(sessionID))
}

func TestSessionTitleFromFirstPrompt(t *testing.T) {
	assert.Equal(t, "What is an NDA?", sessionTitle("What is an NDA?"))

	long := "I need help reviewing a commercial lease agreement for my new office space in the city center"
	title := sessionTitle(long)
	assert.LessOrEqual(t, utf8.RuneCountInString(title), 63)
	assert.Contains(t, title, "...")

	// Multi-byte prompts must be cut on a rune boundary.
	hindi := strings.Repeat("किराया ", 20)
	title = sessionTitle(hindi)
	assert.True(t, utf8.ValidString(title))
	assert.Contains(t, title, "...")
}
