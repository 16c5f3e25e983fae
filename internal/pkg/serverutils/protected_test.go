package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"legalbridge-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

const testSecret = "test-secret"

func newTestApp(sessions *memory.SessionCache) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(noopLogger{}))
	app.Get("/private", Protected(testSecret, sessions), func(ctx *fiber.Ctx) error {
		userID := ctx.Locals(LocalUserID).(uuid.UUID)
		return ctx.JSON(SuccessResponse("ok", userID.String()))
	})
	return app
}

func decodeErrorBody(t *testing.T, body io.Reader) ErrorBody {
	t.Helper()
	var parsed ErrorBody
	require.NoError(t, json.NewDecoder(body).Decode(&parsed))
	return parsed
}

func TestProtectedNoToken(t *testing.T) {
	app := newTestApp(memory.NewSessionCache())

	req := httptest.NewRequest("GET", "/private", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeErrorBody(t, resp.Body)
	assert.False(t, body.Success)
	assert.Equal(t, "/auth", body.Redirect)
}

func TestProtectedTokenNotInCache(t *testing.T) {
	// A validly signed token whose session was never published to the cache
	// must still be turned away.
	app := newTestApp(memory.NewSessionCache())

	token, _, err := IssueAccessToken(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeErrorBody(t, resp.Body)
	assert.Equal(t, "/auth", body.Redirect)
}

func TestProtectedCachedSession(t *testing.T) {
	sessions := memory.NewSessionCache()
	app := newTestApp(sessions)

	userID := uuid.New()
	token, claims, err := IssueAccessToken(testSecret, userID, time.Hour)
	require.NoError(t, err)

	sessions.Put(&memory.Session{
		TokenID:   claims.TokenID,
		UserID:    userID,
		Email:     "user@example.com",
		ExpiresAt: claims.Expires,
	})

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRevokedSession(t *testing.T) {
	sessions := memory.NewSessionCache()
	app := newTestApp(sessions)

	userID := uuid.New()
	token, claims, err := IssueAccessToken(testSecret, userID, time.Hour)
	require.NoError(t, err)

	sessions.Put(&memory.Session{
		TokenID:   claims.TokenID,
		UserID:    userID,
		ExpiresAt: claims.Expires,
	})
	sessions.RevokeUser(userID)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeErrorBody(t, resp.Body)
	assert.Equal(t, "/auth", body.Redirect)
}

func TestProtectedBadSignature(t *testing.T) {
	app := newTestApp(memory.NewSessionCache())

	token, _, err := IssueAccessToken("some-other-secret", uuid.New(), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
