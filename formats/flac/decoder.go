// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/playdeck/audio"
)

// flacStream is an interface for flac.Stream to allow testing
type flacStream interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     flacStream
	sampleRate int
	channels   int
	scale      float32 // 1 / 2^(bits-1)

	cur *frame.Frame // current frame, nil when a new one must be parsed
	pos int          // next sample index within cur's subframes
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

// Close drops the parser state. The underlying stream reader is owned by
// the caller and stays open.
func (s *source) Close() error {
	s.cur = nil
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) < s.channels {
		return 0, nil
	}

	written := 0
	maxFrames := len(dst) / s.channels

	for written < maxFrames {
		if s.cur == nil {
			fr, err := s.stream.ParseNext()
			if err != nil {
				if written > 0 {
					if err == io.EOF {
						return written * s.channels, io.EOF
					}
					return written * s.channels, fmt.Errorf("%w", err)
				}
				if err == io.EOF {
					return 0, io.EOF
				}
				return 0, fmt.Errorf("%w", err)
			}
			s.cur = fr
			s.pos = 0
		}

		avail := len(s.cur.Subframes[0].Samples) - s.pos
		take := maxFrames - written
		if take > avail {
			take = avail
		}

		// Interleave one channel at a time
		for c := range s.channels {
			samples := s.cur.Subframes[c].Samples[s.pos : s.pos+take]
			for i, v := range samples {
				dst[(written+i)*s.channels+c] = float32(v) * s.scale
			}
		}

		s.pos += take
		written += take
		if s.pos >= len(s.cur.Subframes[0].Samples) {
			s.cur = nil
		}
	}

	return written * s.channels, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info.NChannels == 0 {
		return nil, ErrNoChannels
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      1 / float32(int32(1)<<(info.BitsPerSample-1)),
	}, nil
}
