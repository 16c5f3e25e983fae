package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeRoute(t *testing.T) {
	cases := []struct {
		userType UserType
		want     string
	}{
		{UserTypeLawyer, "/profile/lawyer"},
		{UserTypeClient, "/profile/client"},
		{UserTypeUnset, "/user-type-selection"},
	}

	for _, tc := range cases {
		user := &User{UserType: tc.userType}
		assert.Equal(t, tc.want, user.HomeRoute(), string(tc.userType))
	}
}
