package entity

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	redactKeep     = 6
	redactedMarker = "***"
)

// Identity is the per-request credential set read from cookies. Empty
// fields are absent; callers decide whether that matters.
type Identity struct {
	Token  string
	UserID string
	UUID   string
	EtabID string
	Dias   string
}

// HasToken -.
func (i Identity) HasToken() bool {
	return i.Token != ""
}

// RedactedToken returns a log-safe prefix of the token.
func (i Identity) RedactedToken() string {
	return RedactToken(i.Token)
}

// Role reads the role claim from the token without verifying it. Tokens
// that are opaque, unparsable or carry an unknown role map to RoleStudent.
func (i Identity) Role() Role {
	raw := strings.TrimSpace(i.Token)
	if raw == "" {
		return RoleStudent
	}

	if scheme, rest, found := strings.Cut(raw, " "); found && strings.EqualFold(scheme, "bearer") {
		raw = strings.TrimSpace(rest)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return RoleStudent
	}

	value, ok := claims["role"].(string)
	if !ok {
		return RoleStudent
	}

	role, err := ParseRole(value)
	if err != nil {
		return RoleStudent
	}

	return role
}

// RedactToken keeps a short prefix so log lines can be correlated without
// leaking the credential.
func RedactToken(token string) string {
	if token == "" {
		return ""
	}

	if len(token) <= 2*redactKeep {
		return redactedMarker
	}

	return token[:redactKeep] + redactedMarker
}
