// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNoChannels = errors.New("FLAC stream declares no channels")
)
