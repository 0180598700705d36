// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "github.com/pkg/errors"

// These sentinel errors classify every failure this package can produce.
// They are wrapped with context at the point of failure; match them with
// errors.Is.
var (
	// ErrOversized indicates the input exceeds the maximum allowed size
	// for its message type. It is returned before any parsing takes
	// place.
	ErrOversized = errors.New("serialized message exceeds maximum size")

	// ErrMalformed indicates the input does not parse as the wire
	// encoding: a truncated field, an invalid tag, or trailing garbage.
	ErrMalformed = errors.New("malformed wire encoding")

	// ErrIncomplete indicates the input parsed but lacks a field the
	// message schema requires.
	ErrIncomplete = errors.New("incomplete message")
)
