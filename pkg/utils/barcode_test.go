package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBarcode(t *testing.T) {
	valid := []string{"0123456789", "ABC-123", "a", strings.Repeat("9", 64)}
	for _, s := range valid {
		assert.True(t, IsValidBarcode(s), "expected %q to be valid", s)
	}

	invalid := []string{"", " ", "has space", "semi;colon", "uniécode", strings.Repeat("9", 65)}
	for _, s := range invalid {
		assert.False(t, IsValidBarcode(s), "expected %q to be invalid", s)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("supersecret")
	assert.NoError(t, err)
	assert.NotEqual(t, "supersecret", hash)

	assert.True(t, CheckPasswordHash("supersecret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
