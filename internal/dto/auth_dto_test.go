package dto_test

import (
	"encoding/json"
	"testing"

	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestCarriesUserType(t *testing.T) {
	// The sign-up form submits the selected role alongside the credentials.
	payload := `{
		"email": "priya.sharma@example.com",
		"password": "secret-password",
		"full_name": "Priya Sharma",
		"user_type": "lawyer"
	}`

	var req dto.RegisterRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.NoError(t, serverutils.ValidateRequest(&req))

	assert.Equal(t, "lawyer", req.UserType)

	user := entity.User{UserType: entity.UserType(req.UserType)}
	assert.Equal(t, "/profile/lawyer", user.HomeRoute())
}

func TestRegisterRequestUserTypeOptional(t *testing.T) {
	var req dto.RegisterRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"email": "arjun.mehta@example.com",
		"password": "secret-password",
		"full_name": "Arjun Mehta"
	}`), &req))
	require.NoError(t, serverutils.ValidateRequest(&req))

	user := entity.User{UserType: entity.UserType(req.UserType)}
	assert.Equal(t, "/user-type-selection", user.HomeRoute())
}

func TestRegisterRequestRejectsUnknownUserType(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "secret-password",
		FullName: "Admin User",
		UserType: "admin",
	}
	assert.Error(t, serverutils.ValidateRequest(&req))
}
