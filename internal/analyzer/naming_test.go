package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameRegistryClaim(t *testing.T) {
	reg := NewNameRegistry()

	assert.Equal(t, "email_address", reg.Claim("Email Address"))
	assert.Equal(t, "email", reg.Claim("email"))
	assert.Equal(t, "email_1", reg.Claim("Email"))
	assert.Equal(t, "email_2", reg.Claim("EMAIL"))
}

func TestNameRegistrySanitization(t *testing.T) {
	reg := NewNameRegistry()

	assert.Equal(t, "first_name", reg.Claim("  First --- Name  "))
	assert.Equal(t, "field_2fa_code", reg.Claim("2FA code"))
	assert.Equal(t, "field", reg.Claim("!!!"))
	assert.Equal(t, "field_1", reg.Claim(""))
}

func TestNameRegistryFreshInstanceResets(t *testing.T) {
	first := NewNameRegistry()
	assert.Equal(t, "email", first.Claim("Email"))
	assert.Equal(t, "email_1", first.Claim("Email"))

	second := NewNameRegistry()
	assert.Equal(t, "email", second.Claim("Email"))
}
