// SPDX-License-Identifier: EPL-2.0

package player

import (
	"io"

	"github.com/ik5/playdeck/audio"
)

// session bundles the per-track playback resources. Exactly one exists
// while the controller is not Stopped; teardown releases everything in
// reverse acquisition order.
type session struct {
	index  int
	format Format
	stream io.ReadSeekCloser
	pump   *audio.Pump

	// offset is the stream position recorded on pause; Resume seeks here
	// before re-attaching a decoder.
	offset int64
}
