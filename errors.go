// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nextdate

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an argument is outside of its
// documented range, such as a month outside of 1-12 or a day that does not
// exist in the requested month. Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

// invalidArgumentError returns an error naming the offending argument and
// the violated constraint, which unwraps to ErrInvalidArgument.
func invalidArgumentError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
