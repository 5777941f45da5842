// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var (
	// ErrTrackOutOfRange indicates a playlist index outside [0, len).
	ErrTrackOutOfRange = errors.New("track index out of range")

	// ErrUnsupportedFormat indicates a format tag with no registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrEmptyPlaylist indicates a selection operation on an empty playlist.
	ErrEmptyPlaylist = errors.New("playlist is empty")
)
