// Package utils provides small shared helpers.
package utils

import (
	"os"
	"strings"
)

// GetEnvOrDefault returns the value of the environment variable or a default value.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FirstEnv returns the value of the first environment variable in keys that is
// set to a non-empty value, or the default value when none is.
func FirstEnv(defaultValue string, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return defaultValue
}
