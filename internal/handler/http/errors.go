// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the request guard and the refresh endpoint when
// reading session cookies. Callers can match against them with [errors.Is].
var (
	// ErrNoAccessTokenCookie is returned by the request guard when the
	// incoming request does not carry a "token" cookie at all.
	ErrNoAccessTokenCookie = errors.New("no `token` cookie")

	// ErrEmptyToken is returned when the "token" cookie is present but its
	// value is an empty string.
	ErrEmptyToken = errors.New("empty token in `token` cookie")

	// ErrNoRefreshTokenCookie is returned by the refresh endpoint when the
	// incoming request does not carry a "refreshToken" cookie.
	ErrNoRefreshTokenCookie = errors.New("no `refreshToken` cookie")
)
