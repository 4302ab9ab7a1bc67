// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrParsingForm is returned when a request body cannot be read as
	// an urlencoded form.
	ErrParsingForm = errors.New("invalid form body")

	// ErrUnknownAction is logged when the session transition rejects an
	// action the router never registers.
	ErrUnknownAction = errors.New("unknown workflow action")
)
