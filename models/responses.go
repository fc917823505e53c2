package models

// MessageResponse is the generic acknowledgment payload returned by
// operations that have no data to report beyond success or failure
// (registration, logout, error responses).
type MessageResponse struct {
	// Message is a human-readable status line. It is deliberately
	// generic: internal error detail is logged server-side only.
	Message string `json:"message"`
}

// LoginResponse is the payload returned by a successful login.
// The same access token is also set as the "token" cookie; it is duplicated
// in the body for clients that prefer header-based transport.
type LoginResponse struct {
	// Token is the compact serialized access token (120 s lifetime).
	Token string `json:"token"`

	// UserDetail is the public projection of the authenticated user.
	// Never contains the password digest or the stored refresh token.
	UserDetail PublicUser `json:"userDetail"`

	// Message is a human-readable status line.
	Message string `json:"message"`
}

// RefreshResponse is the payload returned by a successful access-token
// refresh. The new token is also set as the "token" cookie.
type RefreshResponse struct {
	// AccessToken is the newly issued compact serialized access token.
	AccessToken string `json:"accessToken"`
}
