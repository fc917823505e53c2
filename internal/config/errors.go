package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingAccessTokenSignKey indicates that no access-token signing
	// secret was supplied by any configuration source.
	ErrMissingAccessTokenSignKey = errors.New("missing access token sign key")
	// ErrMissingRefreshTokenSignKey indicates that no refresh-token signing
	// secret was supplied by any configuration source.
	ErrMissingRefreshTokenSignKey = errors.New("missing refresh token sign key")
	// ErrIdenticalTokenSignKeys indicates that the access and refresh
	// signing secrets are the same value; they must be distinct so that one
	// token kind cannot be replayed as the other.
	ErrIdenticalTokenSignKeys = errors.New("access and refresh token sign keys must be distinct")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
