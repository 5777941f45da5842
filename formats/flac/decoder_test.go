// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"
)

// mockFlacStream hands out pre-built frames for testing
type mockFlacStream struct {
	frames []*frame.Frame
	next   int
}

func (m *mockFlacStream) ParseNext() (*frame.Frame, error) {
	if m.next >= len(m.frames) {
		return nil, io.EOF
	}
	f := m.frames[m.next]
	m.next++
	return f, nil
}

func stereoFrame(left, right []int32) *frame.Frame {
	return &frame.Frame{
		Subframes: []*frame.Subframe{
			{Samples: left},
			{Samples: right},
		},
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("not a flac stream at all")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestSource_InterleavesChannels(t *testing.T) {
	t.Parallel()

	src := &source{
		stream: &mockFlacStream{frames: []*frame.Frame{
			stereoFrame([]int32{100, 200}, []int32{-100, -200}),
		}},
		sampleRate: 44100,
		channels:   2,
		scale:      1.0 / 32768,
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4 (err=%v)", n, err)
	}

	want := []float32{100.0 / 32768, -100.0 / 32768, 200.0 / 32768, -200.0 / 32768}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_SpansFrames(t *testing.T) {
	t.Parallel()

	src := &source{
		stream: &mockFlacStream{frames: []*frame.Frame{
			stereoFrame([]int32{1, 2}, []int32{1, 2}),
			stereoFrame([]int32{3}, []int32{3}),
		}},
		sampleRate: 48000,
		channels:   2,
		scale:      1,
	}

	// Ask for more frames than the first FLAC frame holds; the source must
	// continue into the second one.
	dst := make([]float32, 6)
	n, _ := src.ReadSamples(dst)
	if n != 6 {
		t.Fatalf("ReadSamples() n = %d, want 6", n)
	}

	want := []float32{1, 1, 2, 2, 3, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want[i])
		}
	}

	// Stream exhausted
	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_PartialReadReportsEOF(t *testing.T) {
	t.Parallel()

	src := &source{
		stream: &mockFlacStream{frames: []*frame.Frame{
			stereoFrame([]int32{7}, []int32{8}),
		}},
		sampleRate: 48000,
		channels:   2,
		scale:      1,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("err = %v, want io.EOF on short final read", err)
	}
}
