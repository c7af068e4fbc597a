package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvSecretKey       = "SECRET_KEY"
	EnvLegacySecretKey = "FLASK_SECRET_KEY"
	EnvLoginUser       = "LOGIN_USER"
	EnvLoginPass       = "LOGIN_PASS"
	EnvStudentData     = "STUDENT_DATA"
	EnvPort            = "PORT"
	EnvDifficultyField = "DIFFICULTY_FIELD"
	EnvPsychField      = "PSYCH_FIELD"
	EnvPsychMarker     = "PSYCH_MARKER"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8000"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// parseEnv overlays values from the environment. Empty values count as unset.
// SECRET_KEY falls back to FLASK_SECRET_KEY.
func parseEnv(cfg *Config, lookup LookupFunc) error {
	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			return ""
		}
		return v
	}

	cfg.SecretKey = get(EnvSecretKey)
	if cfg.SecretKey == "" {
		cfg.SecretKey = get(EnvLegacySecretKey)
	}
	cfg.LoginUser = get(EnvLoginUser)
	cfg.LoginPass = get(EnvLoginPass)
	cfg.StudentData = get(EnvStudentData)

	if port := strings.TrimSpace(get(EnvPort)); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return fmt.Errorf("%s must be a port number between 1 and 65535, got %q", EnvPort, port)
		}
		cfg.ListenAddr = listenAddr(port)
	}

	if v := get(EnvDifficultyField); v != "" {
		cfg.DifficultyField = v
	}
	if v := get(EnvPsychField); v != "" {
		cfg.PsychField = v
	}
	if v := get(EnvPsychMarker); v != "" {
		cfg.PsychMarker = v
	}

	return nil
}

func listenAddr(port string) string {
	return net.JoinHostPort(defaultHost, port)
}
