package config

import (
	"crypto/tls"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	Port            int  `toml:"port"`
	UsernameIsEmail bool `toml:"username_is_email"`
}

// APIConfig tunes the facade's simulated latency. Zero values disable
// the delays, which tests rely on.
type APIConfig struct {
	ListDelayMs   int `toml:"list_delay_ms"`
	LookupDelayMs int `toml:"lookup_delay_ms"`
	ActionDelayMs int `toml:"action_delay_ms"`
}

// IMAPConfig configures the optional live mailbox backend. When
// Enabled is false the workspace serves the bundled fixtures.
type IMAPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Server   string `toml:"server"`
	Port     int    `toml:"port"`
	Email    string `toml:"email"`
	Password string `toml:"password"`
}

type JWTConfig struct {
	Secret string `toml:"secret"` // For JWT signing
}

type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

type CacheConfig struct {
	Folder string `toml:"folder"`
}

type SSLConfig struct {
	Enabled      bool   `toml:"enabled"`
	CertFile     string `toml:"cert_file"`     // Path to fullchain.pem
	KeyFile      string `toml:"key_file"`      // Path to privkey.pem
	Port         int    `toml:"port"`          // HTTPS port (default 443)
	HTTPPort     int    `toml:"http_port"`     // HTTP port for redirect (default 80)
	AutoRedirect bool   `toml:"auto_redirect"` // Redirect HTTP to HTTPS
	Domain       string `toml:"domain"`        // Domain name for HSTS
	HSTSMaxAge   int    `toml:"hsts_max_age"`  // Max age for HSTS in seconds
}

type Config struct {
	Server  ServerConfig  `toml:"server"`
	API     APIConfig     `toml:"api"`
	IMAP    IMAPConfig    `toml:"imap"`
	JWT     JWTConfig     `toml:"jwt"`
	Storage StorageConfig `toml:"storage"`
	Cache   CacheConfig   `toml:"cache"`
	SSL     SSLConfig     `toml:"ssl"`
}

func LoadConfig(filepath string) (*Config, error) {
	var config Config

	// Set default values
	config.Server.Port = 3000
	config.Server.UsernameIsEmail = true

	config.API.ListDelayMs = 100
	config.API.LookupDelayMs = 50
	config.API.ActionDelayMs = 300

	config.Storage.DataDir = "./data"
	config.Cache.Folder = "./cache"

	config.SSL.Port = 443
	config.SSL.HTTPPort = 80
	config.SSL.HSTSMaxAge = 31536000 // 1 year
	config.SSL.AutoRedirect = true

	// Load config file
	_, err := toml.DecodeFile(filepath, &config)
	if err != nil {
		return nil, err
	}

	if config.IMAP.Enabled && config.IMAP.Server == "" {
		return nil, fmt.Errorf("imap backend enabled but no server configured")
	}

	// Validate SSL configuration if enabled
	if config.SSL.Enabled {
		if err := config.ValidateSSL(); err != nil {
			return nil, fmt.Errorf("SSL configuration error: %w", err)
		}
	}

	return &config, nil
}

// ListDelay returns the list latency as a duration
func (c *APIConfig) ListDelay() time.Duration {
	return time.Duration(c.ListDelayMs) * time.Millisecond
}

// LookupDelay returns the lookup latency as a duration
func (c *APIConfig) LookupDelay() time.Duration {
	return time.Duration(c.LookupDelayMs) * time.Millisecond
}

// ActionDelay returns the action latency as a duration
func (c *APIConfig) ActionDelay() time.Duration {
	return time.Duration(c.ActionDelayMs) * time.Millisecond
}

// ValidateSSL checks if the SSL configuration is valid
func (c *Config) ValidateSSL() error {
	if !c.SSL.Enabled {
		return nil
	}

	if c.SSL.CertFile == "" {
		return fmt.Errorf("SSL certificate file path is required")
	}

	if c.SSL.KeyFile == "" {
		return fmt.Errorf("SSL key file path is required")
	}

	// Try loading the certificates to verify they're valid
	_, err := tls.LoadX509KeyPair(c.SSL.CertFile, c.SSL.KeyFile)
	if err != nil {
		return fmt.Errorf("failed to load SSL certificates: %w", err)
	}

	return nil
}

// GetSecurityHeaders returns a map of security headers based on the configuration
func (c *Config) GetSecurityHeaders() map[string]string {
	headers := make(map[string]string)

	if c.SSL.Enabled {
		if c.SSL.Domain != "" {
			headers["Strict-Transport-Security"] = fmt.Sprintf("max-age=%d; includeSubDomains", c.SSL.HSTSMaxAge)
		}

		headers["X-Content-Type-Options"] = "nosniff"
		headers["X-Frame-Options"] = "SAMEORIGIN"
		headers["X-XSS-Protection"] = "1; mode=block"
		headers["Referrer-Policy"] = "strict-origin-when-cross-origin"
	}

	return headers
}
