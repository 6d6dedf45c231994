package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("PROPKIT_TEST_ENV", "set")

	assert.Equal(t, "set", GetEnvOrDefault("PROPKIT_TEST_ENV", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefault("PROPKIT_TEST_ENV_MISSING", "fallback"))
}

func TestFirstEnv(t *testing.T) {
	t.Setenv("PROPKIT_TEST_A", "")
	t.Setenv("PROPKIT_TEST_B", "  ")
	t.Setenv("PROPKIT_TEST_C", "value-c")

	assert.Equal(t, "value-c", FirstEnv("fallback", "PROPKIT_TEST_A", "PROPKIT_TEST_B", "PROPKIT_TEST_C"))
	assert.Equal(t, "fallback", FirstEnv("fallback", "PROPKIT_TEST_A", "PROPKIT_TEST_B"))
	assert.Equal(t, "fallback", FirstEnv("fallback"))
}
