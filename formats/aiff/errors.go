// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrSeekerRequired indicates the stream cannot be parsed without seeking
	ErrSeekerRequired = errors.New("AIFF decoding requires a seekable stream")
)
