package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/studentboard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	g, err := NewGate(GateConfig{
		Credentials: Credentials{Username: "admin", Password: "secret"},
		SecretKey:   "signing-secret",
		TTL:         time.Hour,
	})
	require.NoError(t, err)
	return g
}

func issueCookie(t *testing.T, g *Gate) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, g.Issue(rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func requestWith(c *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if c != nil {
		r.AddCookie(c)
	}
	return r
}

func TestNewGate_Validation(t *testing.T) {
	_, err := NewGate(GateConfig{SecretKey: "", TTL: time.Hour})
	require.Error(t, err)

	_, err = NewGate(GateConfig{SecretKey: "k", TTL: 0})
	require.Error(t, err)
}

func TestGate_Login(t *testing.T) {
	g := newTestGate(t)
	assert.True(t, g.Login("admin", "secret"))
	assert.False(t, g.Login("admin", "Secret"))
	assert.False(t, g.Login("", ""))
}

func TestGate_IssueSetsHardenedCookie(t *testing.T) {
	g := newTestGate(t)
	c := issueCookie(t, g)

	assert.Equal(t, common.SessionCookieName, c.Name)
	assert.NotEmpty(t, c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 3600, c.MaxAge)
}

func TestGate_RequireAuth(t *testing.T) {
	g := newTestGate(t)
	valid := issueCookie(t, g)

	other, err := NewGate(GateConfig{SecretKey: "different", TTL: time.Hour})
	require.NoError(t, err)
	foreign := issueCookie(t, other)

	tests := []struct {
		name    string
		cookie  *http.Cookie
		want    bool
		wantErr error
	}{
		{name: "no cookie", cookie: nil, want: false, wantErr: common.ErrorUnauthorized},
		{name: "empty cookie", cookie: &http.Cookie{Name: common.SessionCookieName, Value: ""}, want: false, wantErr: common.ErrorUnauthorized},
		{name: "garbage", cookie: &http.Cookie{Name: common.SessionCookieName, Value: "abc"}, want: false, wantErr: common.ErrInvalidToken},
		{name: "signed with other key", cookie: foreign, want: false, wantErr: common.ErrInvalidToken},
		{name: "valid", cookie: valid, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := requestWith(tt.cookie)
			assert.Equal(t, tt.want, g.RequireAuth(r))

			_, err := g.Session(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGate_ExpiredSession(t *testing.T) {
	g := newTestGate(t)
	g.ttl = -time.Minute
	c := issueCookie(t, g)

	_, err := g.Session(requestWith(c))
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGate_LogoutClearsAndRevokes(t *testing.T) {
	g := newTestGate(t)
	c := issueCookie(t, g)
	require.True(t, g.RequireAuth(requestWith(c)))

	rec := httptest.NewRecorder()
	g.Logout(rec, requestWith(c))

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, common.SessionCookieName, cleared[0].Name)
	assert.Empty(t, cleared[0].Value)
	assert.Less(t, cleared[0].MaxAge, 0)

	_, err := g.Session(requestWith(c))
	assert.ErrorIs(t, err, common.ErrRevokedToken, "replayed cookie must be rejected after logout")

	fresh := issueCookie(t, g)
	assert.True(t, g.RequireAuth(requestWith(fresh)), "logging in again works")
}

func TestGate_LogoutWithoutSession(t *testing.T) {
	g := newTestGate(t)

	rec := httptest.NewRecorder()
	g.Logout(rec, requestWith(nil))

	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, 0, g.revoked.size())
}
