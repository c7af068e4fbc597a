package config

import "strings"

// MissingEnvError lists every required environment variable that was unset
// or empty, in declaration order.
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Names, ", ")
}
