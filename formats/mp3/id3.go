// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
)

const id3HeaderLen = 10

// SkipID3v2 advances rs past a leading ID3v2 tag and returns the number of
// bytes skipped. Streams without a tag are rewound to where they started.
//
// The playback controller strips the tag before handing the stream to the
// decoder so that recorded pause offsets always land inside audio data.
func SkipID3v2(rs io.ReadSeeker) (int64, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	header := make([]byte, id3HeaderLen)
	if _, err := io.ReadFull(rs, header); err != nil {
		// Too short for a tag; treat as untagged.
		if _, serr := rs.Seek(start, io.SeekStart); serr != nil {
			return 0, fmt.Errorf("%w", serr)
		}
		return 0, nil
	}

	if header[0] != 'I' || header[1] != 'D' || header[2] != '3' {
		if _, err := rs.Seek(start, io.SeekStart); err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, nil
	}

	// Tag size is a 28-bit synchsafe integer, excluding the header itself.
	size := int64(header[6]&0x7f)<<21 |
		int64(header[7]&0x7f)<<14 |
		int64(header[8]&0x7f)<<7 |
		int64(header[9]&0x7f)

	skip := int64(id3HeaderLen) + size
	if header[5]&0x10 != 0 {
		// Footer present flag adds another 10 bytes.
		skip += id3HeaderLen
	}

	if _, err := rs.Seek(start+skip, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	return skip, nil
}
