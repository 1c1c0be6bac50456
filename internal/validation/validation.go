// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"strings"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 128
	maxNameLen     = 100
	maxEmailLen    = 254
)

// ValidateSignupEmail checks the relaxed email rule used at signup.
func ValidateSignupEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > maxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", maxEmailLen)
	}
	return nil
}

// ValidateInviteEmail checks the stricter local@domain.tld shape required for
// workspace invites: exactly one "@" and at least one "." in the domain.
func ValidateInviteEmail(email string) error {
	if len(email) > maxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", maxEmailLen)
	}
	at := strings.Count(email, "@")
	if at != 1 {
		return fmt.Errorf("invalid email format")
	}
	parts := strings.SplitN(email, "@", 2)
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return fmt.Errorf("invalid email format")
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword checks minimum password requirements.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLen)
	}
	return nil
}

// ValidateName checks a display name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("name must not exceed %d characters", maxNameLen)
	}
	return nil
}

// LocalPart returns the part of an email before the "@". Used as the display
// name for invited members without a registered account.
func LocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
