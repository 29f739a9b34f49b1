package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "first.last@sub.domain.org", "a+tag@x.co"}
	invalid := []string{"", "ax.com", "a@", "@x.com", "a@x", "a @x.com", "a@@x.com"}

	for _, e := range valid {
		assert.True(t, ValidEmail(e), "expected valid: %q", e)
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), "expected invalid: %q", e)
	}
}

func TestValidatePassword(t *testing.T) {
	ok, reason := ValidatePassword("secret1")
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason = ValidatePassword("12345")
	assert.False(t, ok)
	assert.NotEmpty(t, reason)
}

func TestValidatePasswordCountsCharacters(t *testing.T) {
	// Five characters, ten bytes: still too short.
	ok, _ := ValidatePassword("ñññññ")
	assert.False(t, ok)

	ok, _ = ValidatePassword("ñññññ1")
	assert.True(t, ok)
}
