// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagstack

import "errors"

// ErrInvalidArgument reports a required argument that is absent: a nil
// item value, or a nil container handed to [New]. It is returned
// synchronously and never after a partial mutation.
var ErrInvalidArgument = errors.New("tagstack: invalid argument")

// IsInvalidArgument reports whether err wraps [ErrInvalidArgument].
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
