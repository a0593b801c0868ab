package entity

import (
	"errors"
	"strings"
)

// Role is the portal audience a token belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")

// AllRoles lists every role; LandingRoutes must cover each of them.
func AllRoles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleAdmin}
}

// ParseRole accepts the English names and the upstream's French labels.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student", "etudiant":
		return RoleStudent, nil
	case "teacher", "enseignant":
		return RoleTeacher, nil
	case "admin", "administrateur":
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

// LandingRoutes maps each role to the page an authenticated visitor of the
// entry root is sent to.
type LandingRoutes struct {
	Student string
	Teacher string
	Admin   string
}

// For -.
func (l LandingRoutes) For(r Role) string {
	switch r {
	case RoleStudent:
		return l.Student
	case RoleTeacher:
		return l.Teacher
	case RoleAdmin:
		return l.Admin
	}

	return l.Student
}
