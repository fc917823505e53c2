package http

import "net/http"

const (
	// accessTokenCookieName is the cookie carrying the short-lived access
	// token. The request guard reads this cookie.
	accessTokenCookieName = "token"

	// refreshTokenCookieName is the cookie carrying the long-lived refresh
	// token. Only the refresh endpoint reads this cookie.
	refreshTokenCookieName = "refreshToken"

	// sessionCookieMaxAge is the lifetime of both session cookies in seconds.
	// It matches the refresh-token lifetime, not the access-token one: the
	// access token inside its cookie goes stale long before the cookie does,
	// and the guard relies on JWT expiry rather than cookie expiry.
	sessionCookieMaxAge = 3600
)

// sessionCookie builds a session cookie with the shared transport
// attributes: HttpOnly keeps scripts away from the tokens, Secure plus
// SameSite=None allows cross-site frontends over HTTPS.
func sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// setAccessTokenCookie writes the access-token cookie on the response.
func setAccessTokenCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, sessionCookie(accessTokenCookieName, accessToken, sessionCookieMaxAge))
}

// setRefreshTokenCookie writes the refresh-token cookie on the response.
func setRefreshTokenCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, sessionCookie(refreshTokenCookieName, refreshToken, sessionCookieMaxAge))
}

// clearSessionCookies expires both session cookies on the client. The
// stored refresh token is left untouched; it dies by expiry or by the next
// login overwriting it.
func clearSessionCookies(w http.ResponseWriter) {
	http.SetCookie(w, sessionCookie(accessTokenCookieName, "", -1))
	http.SetCookie(w, sessionCookie(refreshTokenCookieName, "", -1))
}
