// Package session provides the active user profile that gates the studio
// workflows.
//
// There is no real authentication: any well-formed display name and email
// establish a profile, and signing out destroys it. The studio only reads
// the resulting profile; persistence is handled by the store.
package session

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyName indicates the display name is empty or whitespace.
	ErrEmptyName = errors.New("display name is required")

	// ErrInvalidEmail indicates the email address is not well-formed.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Profile identifies the signed-in user. A nil *Profile means anonymous.
type Profile struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// NewProfile validates the submitted credentials and returns a profile.
// Validation is shape-only: a non-empty name and a plausibly-formed email.
func NewProfile(displayName, email string) (*Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyName
	}

	email = strings.TrimSpace(email)
	if !wellFormedEmail(email) {
		return nil, ErrInvalidEmail
	}

	return &Profile{DisplayName: displayName, Email: email}, nil
}

// wellFormedEmail checks the minimal local@domain shape. Deliberately
// loose: this mirrors a mock sign-in form, not an address verifier.
func wellFormedEmail(email string) bool {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
