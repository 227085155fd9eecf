// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no listen
	// address is configured.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errEmptyTokenSignKey = errors.New("token sign key is not set")
)
