// SPDX-License-Identifier: EPL-2.0

package aac

import "errors"

var (
	ErrNotAACStream = errors.New("not an AAC (ADTS) stream")
)
