package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	utils "github.com/nightable/gamenight/internal"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)

		assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
		assert.Equal(t, "http://0.0.0.0:8000", cfg.BaseURL())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GAMENIGHT_HOST", "10.0.0.5")
		t.Setenv("GAMENIGHT_PORT", "9999")
		t.Setenv("GAMENIGHT_PUBLIC_URL", "https://games.example.com")

		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)

		assert.Equal(t, "10.0.0.5:9999", cfg.Addr())
		assert.Equal(t, "https://games.example.com", cfg.BaseURL())
	})
}
