package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set the console reads from a credential. Only the
// role claim matters here; everything else is opaque to the client.
type Claims struct {
	UserID string `json:"userID,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeRole extracts the role claim from a credential without
// verifying the signature. The console never holds the signing key;
// trust in the token is the backend's job, the client only needs the
// claim to pick which views to paint.
//
// Any decode failure (wrong segment count, bad encoding, missing or
// unknown role claim) yields RoleNone. It never returns an error: a
// bad credential degrades to the unauthenticated view set.
func DecodeRole(credential string) Role {
	if credential == "" {
		return RoleNone
	}

	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return RoleNone
	}
	return ParseRole(claims.Role)
}
