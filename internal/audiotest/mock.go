// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	closed       bool
	waveform     func(sample int, channel int) float32
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

// Close marks the source released; it never fails.
func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := framesRequested
	if framesToWrite > framesAvailable {
		framesToWrite = framesAvailable
	}

	// Generate samples
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// CollectingSink records every stereo frame offered to it. It implements
// audio.FrameSink. Capacity simulates the triple-buffer adapter: every
// Capacity accepted frames, one Consume call is rejected (flush) and the
// rejection is counted, exercising the caller's retry path.
type CollectingSink struct {
	Frames   [][2]int16
	Rate     int
	Flushes  int
	Rejects  int
	Capacity int

	sinceFlush int
}

func (c *CollectingSink) Consume(l, r int16) bool {
	if c.Capacity > 0 && c.sinceFlush >= c.Capacity {
		c.sinceFlush = 0
		c.Rejects++
		return false
	}

	c.Frames = append(c.Frames, [2]int16{l, r})
	c.sinceFlush++
	return true
}

func (c *CollectingSink) SetRate(rate int) { c.Rate = rate }
func (c *CollectingSink) Flush()           { c.Flushes++ }

// StreamBuffer is an in-memory io.ReadSeekCloser with close tracking, used
// as the byte-seekable track stream in controller tests.
type StreamBuffer struct {
	data   []byte
	offset int64
	closed bool
}

func NewStreamBuffer(data []byte) *StreamBuffer {
	return &StreamBuffer{data: data}
}

func (s *StreamBuffer) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

func (s *StreamBuffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.offset + offset
	case io.SeekEnd:
		next = int64(len(s.data)) + offset
	default:
		return 0, io.ErrUnexpectedEOF
	}
	if next < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	s.offset = next
	return next, nil
}

func (s *StreamBuffer) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *StreamBuffer) Closed() bool { return s.closed }

// Offset returns the current read position.
func (s *StreamBuffer) Offset() int64 { return s.offset }
