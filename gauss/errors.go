// SPDX-License-Identifier: MIT
package gauss

import "errors"

// ErrMaxBasOutOfRange is returned when maxBas exceeds the number of columns
// of the transposed working matrix (i.e. the row count of a).
var ErrMaxBasOutOfRange = errors.New("gauss: maxBas out of range")
