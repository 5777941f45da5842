// SPDX-License-Identifier: EPL-2.0

package aac

import (
	"fmt"
	"io"

	goaac "github.com/llehouerou/go-aac"

	"github.com/ik5/playdeck/audio"
)

// refillSize keeps at least a few ADTS frames buffered so the frame parser
// never starves mid-header.
const refillSize = 16 * 1024

// aacDecoder is an interface for goaac.Decoder to allow testing
type aacDecoder interface {
	Decode(buffer []byte) (interface{}, *goaac.FrameInfo, error)
}

type source struct {
	r          io.Reader
	dec        aacDecoder
	sampleRate int
	channels   int

	window []byte  // buffered encoded bytes, frame-aligned at the front
	pcm    []int16 // decoded samples not yet handed out
	eof    bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	for len(s.pcm) == 0 {
		if err := s.decodeFrame(); err != nil {
			return 0, err
		}
	}

	n := len(dst)
	if n > len(s.pcm) {
		n = len(s.pcm)
	}
	for i := range n {
		dst[i] = float32(s.pcm[i]) / 32768.0
	}
	s.pcm = s.pcm[n:]

	return n, nil
}

// decodeFrame pulls one access unit out of the window, refilling from the
// stream as needed.
func (s *source) decodeFrame() error {
	if err := s.refill(); err != nil {
		return err
	}
	if len(s.window) == 0 {
		return io.EOF
	}

	out, info, err := s.dec.Decode(s.window)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if info.BytesConsumed <= 0 {
		// Parser made no progress; trailing garbage ends the stream.
		s.window = nil
		return io.EOF
	}
	s.window = s.window[info.BytesConsumed:]

	// The first access unit yields no samples (overlap-add delay).
	if samples, ok := out.([]int16); ok && len(samples) > 0 {
		s.pcm = append(s.pcm[:0], samples...)
	}
	return nil
}

func (s *source) refill() error {
	if s.eof || len(s.window) >= refillSize {
		return nil
	}

	chunk := make([]byte, refillSize)
	n, err := io.ReadFull(s.r, chunk)
	if n > 0 {
		s.window = append(s.window, chunk[:n]...)
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		s.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

type Decoder struct{}

// Decode initializes an AAC decoder from the leading ADTS headers of r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	head := make([]byte, 4096)
	n, err := io.ReadFull(r, head)
	if n == 0 {
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return nil, ErrNotAACStream
	}
	head = head[:n]

	dec := goaac.NewDecoder()
	rate, channels, err := dec.SimpleInit(head)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if rate == 0 || channels == 0 {
		return nil, ErrNotAACStream
	}

	return &source{
		r:          r,
		dec:        dec,
		sampleRate: int(rate),
		channels:   int(channels),
		window:     head,
	}, nil
}
