package upstream

import (
	"fmt"
	"net/url"
	"time"
)

// Endpoint is the logical name of an upstream resource, used for retry
// profiles, logs and metrics.
type Endpoint string

const (
	EndpointNotes        Endpoint = "notes"
	EndpointGroups       Endpoint = "groups"
	EndpointProfileImage Endpoint = "profile-image"
	EndpointLogo         Endpoint = "logo"
)

// Policy bounds one logical call: each attempt gets Timeout, transient
// failures are retried MaxRetries times with exponential backoff between
// WaitMin and WaitMax.
type Policy struct {
	Timeout    time.Duration
	MaxRetries int
	WaitMin    time.Duration
	WaitMax    time.Duration
}

// Ceiling is the longest a call under this policy may take, attempts and
// backoff included.
func (p Policy) Ceiling() time.Duration {
	retries := time.Duration(max(p.MaxRetries, 0))

	return p.Timeout*(1+retries) + p.WaitMax*retries
}

// NotesPath -.
func NotesPath(diaID int) string {
	return fmt.Sprintf("/notes/dia/%d", diaID)
}

// GroupsPath -.
func GroupsPath(diaID int) string {
	return fmt.Sprintf("/groupes/dia/%d", diaID)
}

// ProfileImagePath -.
func ProfileImagePath(uuid string) string {
	return "/etudiants/photo/" + url.PathEscape(uuid)
}

// LogoPath -.
func LogoPath(etabID string) string {
	return "/etablissements/" + url.PathEscape(etabID) + "/logo"
}
