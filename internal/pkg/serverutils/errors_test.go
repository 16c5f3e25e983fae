package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsAppError(t *testing.T) {
	appErr := NewNotFoundError("Profile not found")

	wrapped := errors.Join(errors.New("outer"), appErr)
	found, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, found.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorHandlerEnvelope(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(noopLogger{}))
	app.Get("/auth-error", func(ctx *fiber.Ctx) error {
		return NewAuthError("Invalid email or password")
	})
	app.Get("/conflict", func(ctx *fiber.Ctx) error {
		return NewConflictError("A reply is already being generated for this conversation")
	})
	app.Get("/assistant", func(ctx *fiber.Ctx) error {
		return NewAssistantError("The assistant timed out", nil)
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("database exploded")
	})

	cases := []struct {
		path     string
		code     int
		redirect string
	}{
		{"/auth-error", fiber.StatusUnauthorized, "/auth"},
		{"/conflict", fiber.StatusConflict, ""},
		{"/assistant", fiber.StatusBadGateway, ""},
		{"/boom", fiber.StatusInternalServerError, ""},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.code, resp.StatusCode, tc.path)

		var body ErrorBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, tc.code, body.Code)
		assert.Equal(t, tc.redirect, body.Redirect, tc.path)
	}

	// Internal detail never leaks to the client.
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	var body ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Message)
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Email    string `json:"email" validate:"required,email"`
		UserType string `json:"user_type" validate:"required,oneof=lawyer client"`
	}

	err := ValidateRequest(&payload{Email: "user@example.com", UserType: "lawyer"})
	assert.NoError(t, err)

	err = ValidateRequest(&payload{Email: "not-an-email", UserType: "admin"})
	require.Error(t, err)
	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, KindValidation, appErr.Kind)
}
