// Package config handles configuration for the dashboard server: defaults,
// an optional JSON overlay, the process environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/studentboard/internal/common"
)

// Config holds runtime settings for the dashboard server.
//
// Fields:
//   - ListenAddr: bind address for the HTTP listener.
//   - SecretKey: key material for signing session tokens.
//   - LoginUser / LoginPass: the single accepted credential pair.
//   - StudentData: the raw JSON array served by the dashboard.
//   - SessionTTL: lifetime of an issued session token.
//   - DifficultyField / PsychField / PsychMarker: record fields and marker
//     used by the summary counters.
//   - CookieSecure: sets the Secure attribute on the session cookie.
type Config struct {
	ListenAddr      string
	SecretKey       string
	LoginUser       string
	LoginPass       string
	StudentData     string
	SessionTTL      time.Duration
	DifficultyField string
	PsychField      string
	PsychMarker     string
	CookieSecure    bool
}

// LoadDefaults populates Config with the values used when nothing overrides them.
func (c *Config) LoadDefaults() {
	c.ListenAddr = listenAddr(defaultPort)
	c.SessionTTL = 12 * time.Hour
	c.DifficultyField = common.DefaultDifficultyField
	c.PsychField = common.DefaultPsychField
	c.PsychMarker = common.DefaultPsychMarker
	c.CookieSecure = false
}

// LoadConfig builds a Config from the real process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.LookupEnv)
}

// Load applies defaults, then the JSON file selected by -c/-config, then the
// environment, then flags, and finally validates the result. Later sources
// take precedence over earlier ones.
func Load(args []string, lookup LookupFunc) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	// A malformed optional variable must not hide the missing required ones,
	// so the environment error is reported together with Validate's.
	var envErr error
	if err := parseEnv(cfg, lookup); err != nil {
		envErr = fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, errors.Join(fmt.Errorf("flags: %w", err), envErr)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(err, envErr)
	}
	if envErr != nil {
		return nil, envErr
	}

	return cfg, nil
}

// Validate reports every missing required value at once, then checks the
// remaining fields.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{EnvSecretKey, c.SecretKey},
		{EnvLoginUser, c.LoginUser},
		{EnvLoginPass, c.LoginPass},
		{EnvStudentData, c.StudentData},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return &MissingEnvError{Names: missing}
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.SessionTTL)
	}
	if c.DifficultyField == "" || c.PsychField == "" {
		return fmt.Errorf("summary field names must not be empty")
	}

	return nil
}
