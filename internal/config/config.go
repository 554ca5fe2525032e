// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LPSITE_SERVER_HTTP_PORT
const EnvPrefix = "LPSITE"

// Content sources accepted by content.source
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourceDatabase = "database"
)

var v *viper.Viper

// DefaultPath returns the config file location: $LPSITE_CONFIG, else ~/.lpsite/config.yaml
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lpsite", "config.yaml")
	}
	return filepath.Join(home, ".lpsite", "config.yaml")
}

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	setDefaults()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.https_port", "443")
	v.SetDefault("server.base_domain", "localhost")
	v.SetDefault("server.tls_enabled", false)
	v.SetDefault("server.rate_limit", 0) // requests per minute per IP, 0 disables
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.ip_blocklist", []string{})
	v.SetDefault("server.trusted_proxies", []string{}) // proxies whose X-Forwarded-For is honored

	// Site defaults
	v.SetDefault("site.default_theme", "light")
	v.SetDefault("site.default_page", "example-lp")
	v.SetDefault("site.base_url", "")

	// Content defaults
	v.SetDefault("content.source", SourceEmbedded)
	v.SetDefault("content.dir", "")

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "/var/lib/lpsite/lpsite.db")

	// Backup defaults
	v.SetDefault("backups.path", "/var/lib/lpsite/backups")

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// TLS defaults
	v.SetDefault("tls.email", "")
	v.SetDefault("tls.cert_dir", "/var/lib/lpsite/certs")
	v.SetDefault("tls.staging", false)
	v.SetDefault("tls.domains", []string{})
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// GetStringSlice returns a config value as a list. A comma separated
// string, as `config set` writes it, is split.
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
