package constant_test

import (
	"testing"

	"legalbridge-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestPageRoutesMatchClientRouteTable(t *testing.T) {
	expected := []string{
		"/",
		"/auth",
		"/user-type-selection",
		"/profile",
		"/profile/lawyer",
		"/profile/client",
		"/legal-dashboard",
		"/contract-templates",
		"/ai-assistance",
		"/lawyer-marketplace",
		"/payment",
	}

	paths := make([]string, 0, len(constant.PageRoutes))
	for _, route := range constant.PageRoutes {
		paths = append(paths, route.Path)
	}

	assert.ElementsMatch(t, expected, paths)
	assert.Equal(t, "*", constant.NotFoundRoute)
}

func TestPageRoutesAuthFlags(t *testing.T) {
	protected := map[string]bool{}
	for _, route := range constant.PageRoutes {
		protected[route.Path] = route.Protected
	}

	assert.False(t, protected["/"])
	assert.False(t, protected["/auth"])
	assert.True(t, protected["/legal-dashboard"])
	assert.True(t, protected["/ai-assistance"])
}
