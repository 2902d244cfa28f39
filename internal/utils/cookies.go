// Helpers for issuing and clearing the session cookie, plus the response
// headers every cookie-bearing response should carry.

package utils

import (
	"net/http"
	"time"
)

const SessionCookieName = "jwt"

// SetSessionCookie writes the session token cookie. The clear path must
// mirror these attributes exactly or browsers keep the stale cookie.
func SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	if token == "" {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge).UTC(),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	addSecurityHeaders(w)
}

// ClearSessionCookie deletes the session cookie on logout.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour).UTC(),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	addSecurityHeaders(w)
}

// addSecurityHeaders applies the transport, CSP and privacy headers used on
// token-bearing responses.
func addSecurityHeaders(w http.ResponseWriter) {
	// transport / caching
	w.Header().Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")

	// content isolation & click-jacking
	w.Header().Set("Content-Security-Policy", "default-src 'self'; object-src 'none'; base-uri 'none'; frame-ancestors 'none'")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")

	// cross-origin isolation
	w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
	w.Header().Set("Cross-Origin-Resource-Policy", "same-site")

	// referrer scoping
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
}
