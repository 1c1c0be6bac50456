package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignupEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateSignupEmail("ada@example.com"))
	// Signup accepts anything with an "@"; the strict shape is invite-only.
	assert.NoError(t, ValidateSignupEmail("ada@localhost"))

	assert.Error(t, ValidateSignupEmail("ada.example.com"))
	assert.Error(t, ValidateSignupEmail(strings.Repeat("a", 250)+"@x.io"))
}

func TestValidateInviteEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"ada@example.com",
		"a.b+c@sub.domain.org",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateInviteEmail(email), email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"a@b@c.com",
		"@example.com",
		"user@",
		"user@nodot",
		"user@.com",
		"user@domain.",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateInviteEmail(email), email)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateName("Ada Lovelace"))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("x", 101)))
}

func TestLocalPart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ada", LocalPart("ada@example.com"))
	assert.Equal(t, "no-at", LocalPart("no-at"))
}
