package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studentboard/internal/common"
)

// GateConfig carries everything the gate needs; nothing is read from globals.
type GateConfig struct {
	Credentials  Credentials
	SecretKey    string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

// Gate binds the logged-in flag to a signed cookie.
type Gate struct {
	creds      Credentials
	signingKey []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	revoked    *Revocations
}

func NewGate(c GateConfig) (*Gate, error) {
	key, err := DeriveSigningKey(c.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("deriving signing key: %w", err)
	}
	if c.TTL <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	name := c.CookieName
	if name == "" {
		name = common.SessionCookieName
	}

	return &Gate{
		creds:      c.Credentials,
		signingKey: key,
		ttl:        c.TTL,
		cookieName: name,
		secure:     c.CookieSecure,
		revoked:    NewRevocations(),
	}, nil
}

// Login checks the submitted pair. It does not touch the response; call
// Issue on success.
func (g *Gate) Login(username, password string) bool {
	return g.creds.Match(username, password)
}

// Issue writes a fresh session cookie to w.
func (g *Gate) Issue(w http.ResponseWriter) error {
	token, claims, err := GenerateToken(g.signingKey, g.ttl)
	if err != nil {
		return fmt.Errorf("signing session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     g.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  claims.ExpiresAt.Time,
		MaxAge:   int(g.ttl.Seconds()),
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Session returns the claims of the request's session cookie. Missing,
// tampered, expired and revoked cookies all yield an error wrapping one of
// the common token errors or common.ErrorUnauthorized.
func (g *Gate) Session(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(g.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, common.ErrorUnauthorized
	}

	claims, err := ParseToken(cookie.Value, g.signingKey)
	if err != nil {
		return nil, err
	}

	if g.revoked.IsRevoked(claims.ID) {
		return nil, common.ErrRevokedToken
	}

	return claims, nil
}

// RequireAuth reports whether r carries a usable session.
func (g *Gate) RequireAuth(r *http.Request) bool {
	_, err := g.Session(r)
	return err == nil
}

// Logout clears the cookie unconditionally and revokes the presented token
// if it was still valid.
func (g *Gate) Logout(w http.ResponseWriter, r *http.Request) {
	if claims, err := g.Session(r); err == nil {
		g.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     g.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
