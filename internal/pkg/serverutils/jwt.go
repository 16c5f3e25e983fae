package serverutils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AccessClaims struct {
	UserID  uuid.UUID
	TokenID string
	Expires time.Time
}

// IssueAccessToken signs a JWT whose jti doubles as the session cache key.
func IssueAccessToken(secret string, userID uuid.UUID, ttl time.Duration) (token string, claims *AccessClaims, err error) {
	tokenID := uuid.NewString()
	expires := time.Now().Add(ttl)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"jti":     tokenID,
		"exp":     expires.Unix(),
		"iat":     time.Now().Unix(),
	})

	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}

	return signed, &AccessClaims{
		UserID:  userID,
		TokenID: tokenID,
		Expires: expires,
	}, nil
}

func ParseAccessToken(secret, tokenStr string) (*AccessClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, NewAuthError("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, NewAuthError("Invalid claims")
	}

	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, NewAuthError("Invalid claims")
	}

	tokenID, _ := claims["jti"].(string)
	if tokenID == "" {
		return nil, NewAuthError("Invalid claims")
	}

	var expires time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expires = exp.Time
	}

	return &AccessClaims{
		UserID:  userID,
		TokenID: tokenID,
		Expires: expires,
	}, nil
}
