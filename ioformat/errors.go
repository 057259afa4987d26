// SPDX-License-Identifier: MIT
package ioformat

import "errors"

// ErrMalformedInput is returned when the token stream does not contain a
// valid M N header, or fewer than M*N numeric tokens follow it.
var ErrMalformedInput = errors.New("ioformat: malformed matrix input")
