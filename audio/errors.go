// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoSource = errors.New("no source attached")
)
