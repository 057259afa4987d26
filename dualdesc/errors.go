// SPDX-License-Identifier: MIT
package dualdesc

import "errors"

// ErrEmptyInput is returned when the input inequality matrix has no rows.
var ErrEmptyInput = errors.New("dualdesc: input matrix has no rows")
