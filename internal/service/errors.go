package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable to the
	// caller so that login responses carry no user-enumeration signal.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoRefreshTokenProvided is returned when the refresh path is called
	// without a refresh-token cookie.
	ErrNoRefreshTokenProvided = errors.New("no refresh token provided")

	// ErrRefreshTokenNotRecognized is returned when the presented refresh
	// token does not match any stored value (rotated away or never issued),
	// fails signature/expiry verification, or carries a mismatching email
	// claim. The client must re-authenticate.
	ErrRefreshTokenNotRecognized = errors.New("refresh token not recognized")
)
