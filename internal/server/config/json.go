package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/studentboard/internal/flagx"
	"github.com/dmitrijs2005/studentboard/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Secrets and
// the dataset are not read from it; they come from the environment only.
//
// Pointer fields distinguish "not set" from a zero value, so a file that
// only names listen_addr leaves every other default in place.
type JsonConfig struct {
	ListenAddr      *string         `json:"listen_addr"`
	SessionTTL      *timex.Duration `json:"session_ttl"`
	DifficultyField *string         `json:"difficulty_field"`
	PsychField      *string         `json:"psych_field"`
	PsychMarker     *string         `json:"psych_marker"`
	CookieSecure    *bool           `json:"cookie_secure"`
}

// parseJson loads the file named by -c / -config, if any, and copies the
// fields it sets into config.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if c.ListenAddr != nil {
		config.ListenAddr = *c.ListenAddr
	}
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.DifficultyField != nil {
		config.DifficultyField = *c.DifficultyField
	}
	if c.PsychField != nil {
		config.PsychField = *c.PsychField
	}
	if c.PsychMarker != nil {
		config.PsychMarker = *c.PsychMarker
	}
	if c.CookieSecure != nil {
		config.CookieSecure = *c.CookieSecure
	}

	return nil
}
