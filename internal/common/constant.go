// Package common contains shared constants and sentinel errors used across
// the dashboard server and the terminal client.
package common

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "session"

// PageSize is the fixed number of records returned per dashboard page.
const PageSize = 30

// Default field names and marker used by the summary counters.
const (
	DefaultDifficultyField = "difficulty level"
	DefaultPsychField      = "psychological concern"
	DefaultPsychMarker     = "yes"
)
