package auth

import "crypto/subtle"

// Credentials is the single username/password pair accepted by the gate.
type Credentials struct {
	Username string
	Password string
}

// Match reports whether username and password both equal the configured
// pair exactly. Both comparisons always run.
func (c Credentials) Match(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	return u&p == 1
}
