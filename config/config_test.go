package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("Default When Unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnv("CONFIG_TEST_UNSET", "fallback"))
	})

	t.Run("Value When Set", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_SET", "value")
		assert.Equal(t, "value", getEnv("CONFIG_TEST_SET", "fallback"))
	})
}

func TestGetEnvBool(t *testing.T) {
	cases := map[string]bool{
		"true": true, "1": true, "yes": true, "on": true, "TRUE": true,
		"false": false, "0": false, "no": false, "off": false,
	}
	for value, expected := range cases {
		t.Setenv("CONFIG_TEST_BOOL", value)
		assert.Equal(t, expected, getEnvBool("CONFIG_TEST_BOOL", !expected), "value %q", value)
	}

	t.Run("Default When Unset", func(t *testing.T) {
		assert.True(t, getEnvBool("CONFIG_TEST_BOOL_UNSET", true))
	})

	t.Run("Default When Garbage", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_BOOL", "maybe")
		assert.True(t, getEnvBool("CONFIG_TEST_BOOL", true))
	})
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("Parsed When Valid", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_DUR", "30s")
		assert.Equal(t, 30*time.Second, getEnvDuration("CONFIG_TEST_DUR", time.Minute))
	})

	t.Run("Default When Invalid", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_DUR", "soon")
		assert.Equal(t, time.Minute, getEnvDuration("CONFIG_TEST_DUR", time.Minute))
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.EmailTestMode, "test mode defaults on for safety")
	assert.NotEmpty(t, cfg.ContactEmail)
	assert.NotEmpty(t, cfg.AppURL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://www.example-law.co.il,https://example-law.co.il")

	cfg := Load()
	assert.Equal(t, []string{"https://www.example-law.co.il", "https://example-law.co.il"}, cfg.AllowedOrigins)
}
