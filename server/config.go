package server

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds the server's runtime settings, decoded from the
// environment. Flags in cmd/web may override individual fields.
type Config struct {
	Host string `env:"GAMENIGHT_HOST,default=0.0.0.0"`
	Port int    `env:"GAMENIGHT_PORT,default=8000"`

	// PublicURL is the externally reachable base URL, used for QR share
	// links. Defaults to the listen address.
	PublicURL string `env:"GAMENIGHT_PUBLIC_URL"`
}

// ConfigFromEnv decodes a Config from environment variables.
func ConfigFromEnv() (Config, error) {
	var c Config
	if err := envdecode.Decode(&c); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, err
	}
	return c, nil
}

// Addr returns the host:port to listen on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BaseURL returns the address games are shared under.
func (c Config) BaseURL() string {
	if c.PublicURL != "" {
		return c.PublicURL
	}
	return "http://" + c.Addr()
}
