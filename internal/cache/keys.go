package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Cache key prefixes.
const (
	PrefixNotes        = "notes:"
	PrefixGroups       = "groups:"
	PrefixProfileImage = "profile-image:"
	PrefixLogo         = "logo:"
)

// fingerprintBytes is how much of the token digest goes into a key.
const fingerprintBytes = 16

// TokenFingerprint returns a short hex digest of token. Per-user keys carry
// it so a cached entry is only served back to the token that loaded it.
func TokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:fingerprintBytes])
}

// MakeNotesKey creates a cache key for a user's exam notes in one enrollment.
func MakeNotesKey(userID, diaID, fingerprint string) string {
	return fmt.Sprintf("%s%s:%s:%s", PrefixNotes, userID, diaID, fingerprint)
}

// MakeGroupsKey creates a cache key for a user's groups in one enrollment.
func MakeGroupsKey(userID, diaID, fingerprint string) string {
	return fmt.Sprintf("%s%s:%s:%s", PrefixGroups, userID, diaID, fingerprint)
}

// MakeProfileImageKey creates a cache key for a profile image resource.
func MakeProfileImageKey(uuid, fingerprint string) string {
	return fmt.Sprintf("%s%s:%s", PrefixProfileImage, uuid, fingerprint)
}

// MakeLogoKey creates a cache key for an institution logo.
func MakeLogoKey(etabID string) string {
	return fmt.Sprintf("%s%s", PrefixLogo, etabID)
}

// InvalidateUserCache removes the per-user aggregates a token loaded for
// one enrollment.
func InvalidateUserCache(c *Cache, userID, diaID, fingerprint string) {
	c.Delete(MakeNotesKey(userID, diaID, fingerprint))
	c.Delete(MakeGroupsKey(userID, diaID, fingerprint))
}

// kindOf returns the key prefix without its separator, for metric labels.
func kindOf(key string) string {
	kind, _, found := strings.Cut(key, ":")
	if !found {
		return "other"
	}

	return kind
}
