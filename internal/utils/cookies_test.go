package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordedCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSetSessionCookieAttributes(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "token-value", 3*24*time.Hour, false)

	ck := recordedCookie(t, rec)
	assert.Equal(t, SessionCookieName, ck.Name)
	assert.Equal(t, "token-value", ck.Value)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, int((3 * 24 * time.Hour).Seconds()), ck.MaxAge)
	assert.True(t, ck.HttpOnly)
	assert.False(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
}

func TestSetSessionCookieSecureInProduction(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "token-value", time.Hour, true)

	assert.True(t, recordedCookie(t, rec).Secure)
}

func TestSetSessionCookieSkipsEmptyToken(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "", time.Hour, false)

	assert.Empty(t, rec.Result().Cookies())
}

// Clearing must mirror the set-path attributes or browsers keep the stale
// cookie.
func TestClearSessionCookieMirrorsAttributes(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSessionCookie(rec, true)

	ck := recordedCookie(t, rec)
	assert.Equal(t, SessionCookieName, ck.Name)
	assert.Empty(t, ck.Value)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, -1, ck.MaxAge)
	assert.True(t, ck.Expires.Before(time.Now()))
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
}

func TestSessionCookieResponsesCarrySecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "token-value", time.Hour, false)

	headers := rec.Header()
	assert.Equal(t, "no-store", headers.Get("Cache-Control"))
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.NotEmpty(t, headers.Get("Strict-Transport-Security"))
	assert.NotEmpty(t, headers.Get("Content-Security-Policy"))
}
