package session

import "github.com/golang-jwt/jwt/v5"

// Username extracts the subject claim from a bearer token for display
// purposes (the status prompt). The token is deliberately NOT verified here:
// the client never has the signing key, and validation happens server-side on
// every request. Returns "" for an empty or non-JWT credential.
func Username(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
