// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHTTPServerConfigured is returned by NewServer when the config
	// carries an empty HTTP listen address.
	errNoHTTPServerConfigured = errors.New("no http server configured: empty address")
)
