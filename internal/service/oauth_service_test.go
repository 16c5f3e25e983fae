package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthLoginURLCarriesState(t *testing.T) {
	svc := NewOAuthService(nil, nil, noopLogger{})

	url, err := svc.GetLoginURL("google")
	require.NoError(t, err)
	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "state=")
}

func TestOAuthLoginURLRejectsUnknownProvider(t *testing.T) {
	svc := NewOAuthService(nil, nil, noopLogger{})

	_, err := svc.GetLoginURL("github")
	assert.Error(t, err)
}
