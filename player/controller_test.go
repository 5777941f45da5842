// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/playdeck/audio"
	"github.com/ik5/playdeck/dsp"
	"github.com/ik5/playdeck/internal/audiotest"
)

// byteDecoder turns every stream byte into one mono sample, so byte
// offsets and frame counts stay aligned for pause/resume assertions.
type byteDecoder struct{}

func (byteDecoder) Decode(r io.Reader) (audio.Source, error) {
	return &byteSource{r: r}, nil
}

type byteSource struct {
	r      io.Reader
	closed bool
}

func (s *byteSource) SampleRate() int { return 8000 }
func (s *byteSource) Channels() int   { return 1 }

func (s *byteSource) Close() error {
	s.closed = true
	return nil
}

func (s *byteSource) ReadSamples(dst []float32) (int, error) {
	buf := make([]byte, len(dst))
	n, err := s.r.Read(buf)
	for i := range n {
		dst[i] = float32(buf[i]) / 256
	}
	return n, err
}

// failingDecoder fails at source construction.
type failingDecoder struct{}

func (failingDecoder) Decode(io.Reader) (audio.Source, error) {
	return nil, errors.New("corrupt header")
}

// brokenDecoder hands out a source that fails on the first read.
type brokenDecoder struct{}

func (brokenDecoder) Decode(io.Reader) (audio.Source, error) {
	return &brokenSource{}, nil
}

type brokenSource struct{}

func (*brokenSource) SampleRate() int { return 8000 }
func (*brokenSource) Channels() int   { return 1 }
func (*brokenSource) Close() error    { return nil }

func (*brokenSource) ReadSamples([]float32) (int, error) {
	return 0, errors.New("bitstream desync")
}

// memTrack serves an in-memory stream and records how often it was opened.
type memTrack struct {
	data   []byte
	format Format
	opens  int
	stream *audiotest.StreamBuffer
}

func (t *memTrack) Open() (io.ReadSeekCloser, error) {
	t.opens++
	t.stream = audiotest.NewStreamBuffer(t.data)
	return t.stream, nil
}

func (t *memTrack) Format() Format { return t.format }

// stubOutput is a CollectingSink with the Stop method Output requires.
type stubOutput struct {
	audiotest.CollectingSink
	stops int
}

func (s *stubOutput) Stop() { s.stops++ }

func wavTrack(size int) *memTrack {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return &memTrack{data: data, format: FormatWAV}
}

func newTestController(tracks ...Track) (*Controller, *stubOutput) {
	registry := audio.NewRegistry()
	registry.Register(string(FormatWAV), byteDecoder{})
	registry.Register(string(FormatMP3), byteDecoder{})
	registry.Register(string(FormatOGG), brokenDecoder{})
	registry.Register(string(FormatAAC), failingDecoder{})

	out := &stubOutput{}
	tone := dsp.NewToneControl(dsp.NewParams())
	meter := dsp.NewVUMeter()

	return NewController(Playlist(tracks), registry, tone, meter, out), out
}

// tickUntilStopped bounds the control loop so a policy bug cannot hang
// the test.
func tickUntilStopped(t *testing.T, c *Controller, maxTicks int) {
	t.Helper()
	for range maxTicks {
		require.NoError(t, c.Tick())
		if c.State() == Stopped {
			return
		}
	}
	t.Fatalf("still %s after %d ticks", c.State(), maxTicks)
}

func TestPlayTrack_OutOfRange(t *testing.T) {
	t.Parallel()

	track := wavTrack(256)
	c, _ := newTestController(track)

	assert.ErrorIs(t, c.PlayTrack(1), ErrTrackOutOfRange)
	assert.ErrorIs(t, c.PlayTrack(-1), ErrTrackOutOfRange)
	assert.Equal(t, Stopped, c.State())
	assert.Zero(t, track.opens)

	// While playing, a bad index must not disturb the session.
	require.NoError(t, c.PlayTrack(0))
	assert.ErrorIs(t, c.PlayTrack(7), ErrTrackOutOfRange)
	assert.Equal(t, Playing, c.State())
	assert.Equal(t, 0, c.CurrentIndex())
}

func TestPlayTrack_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	track := &memTrack{data: make([]byte, 64), format: FormatFLAC}
	c, _ := newTestController(track)

	err := c.PlayTrack(0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, Stopped, c.State())
	assert.True(t, track.stream.Closed(), "stream must be released on failure")
}

func TestPlayTrack_DecoderFailure(t *testing.T) {
	t.Parallel()

	track := &memTrack{data: make([]byte, 64), format: FormatAAC}
	c, _ := newTestController(track)

	assert.Error(t, c.PlayTrack(0))
	assert.Equal(t, Stopped, c.State())
	assert.True(t, track.stream.Closed())
}

func TestPauseResume_OffsetRoundTrip(t *testing.T) {
	t.Parallel()

	track := wavTrack(4096)
	c, out := newTestController(track)

	require.NoError(t, c.PlayTrack(0))
	require.NoError(t, c.Tick())
	require.Equal(t, Playing, c.State())

	consumed := len(out.Frames)
	require.Positive(t, consumed)

	require.NoError(t, c.Pause())
	assert.Equal(t, Paused, c.State())
	assert.Positive(t, out.Flushes, "pause must flush the sink")
	assert.False(t, track.stream.Closed(), "pause keeps the stream open")

	recorded := track.stream.Offset()

	// Ticks while paused pump nothing.
	require.NoError(t, c.Tick())
	assert.Len(t, out.Frames, consumed)

	require.NoError(t, c.Resume())
	assert.Equal(t, Playing, c.State())
	assert.Equal(t, recorded, track.stream.Offset(), "resume seeks back to the pause offset")

	tickUntilStopped(t, c, 100)

	// One frame per stream byte, nothing lost or replayed around the pause.
	assert.Len(t, out.Frames, 4096)
	assert.True(t, track.stream.Closed())
}

func TestTick_SequentialPlaylistEndsStopped(t *testing.T) {
	t.Parallel()

	tracks := []*memTrack{wavTrack(1024), wavTrack(1024), wavTrack(1024)}
	c, out := newTestController(tracks[0], tracks[1], tracks[2])

	require.NoError(t, c.PlayTrack(0))
	tickUntilStopped(t, c, 100)

	for i, track := range tracks {
		assert.Equal(t, 1, track.opens, "track %d", i)
	}
	assert.Len(t, out.Frames, 3*1024)
	assert.Equal(t, -1, c.CurrentIndex())
}

func TestTick_RepeatAllWraps(t *testing.T) {
	t.Parallel()

	first := wavTrack(512)
	second := wavTrack(512)
	c, _ := newTestController(first, second)
	c.SetRepeat(RepeatAll)

	require.NoError(t, c.PlayTrack(0))
	for range 20 {
		require.NoError(t, c.Tick())
	}

	assert.Equal(t, Playing, c.State())
	assert.GreaterOrEqual(t, first.opens, 2, "repeat-all must wrap to the first track")
}

func TestTick_RepeatOneReplaysSameTrack(t *testing.T) {
	t.Parallel()

	first := wavTrack(512)
	second := wavTrack(512)
	c, _ := newTestController(first, second)
	c.SetRepeat(RepeatOne)

	require.NoError(t, c.PlayTrack(0))
	for range 20 {
		require.NoError(t, c.Tick())
	}

	assert.GreaterOrEqual(t, first.opens, 3)
	assert.Zero(t, second.opens, "repeat-one never leaves the current track")
}

func TestTick_ShuffleBumpsCollidingDraw(t *testing.T) {
	t.Parallel()

	tracks := []*memTrack{wavTrack(512), wavTrack(512), wavTrack(512)}
	c, _ := newTestController(tracks[0], tracks[1], tracks[2])
	c.SetShuffle(true)
	c.policy.intn = func(int) int { return 0 } // always draw the current track

	require.NoError(t, c.PlayTrack(0))
	for range 10 {
		require.NoError(t, c.Tick())
		if c.CurrentIndex() != 0 {
			break
		}
	}

	assert.Equal(t, 1, c.CurrentIndex(), "a colliding draw advances to the next index")
}

func TestTick_DecoderErrorLandsStopped(t *testing.T) {
	t.Parallel()

	track := &memTrack{data: make([]byte, 64), format: FormatOGG}
	c, _ := newTestController(track)

	require.NoError(t, c.PlayTrack(0))
	require.Equal(t, Playing, c.State())

	assert.Error(t, c.Tick())
	assert.Equal(t, Stopped, c.State())
	assert.True(t, track.stream.Closed())
}

func TestPlayNextPrevious(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(wavTrack(64), wavTrack(64), wavTrack(64))

	require.NoError(t, c.PlayNext())
	assert.Equal(t, 0, c.CurrentIndex(), "next from stopped starts at the first track")

	require.NoError(t, c.PlayNext())
	assert.Equal(t, 1, c.CurrentIndex())

	require.NoError(t, c.PlayPrevious())
	assert.Equal(t, 0, c.CurrentIndex())

	require.NoError(t, c.PlayPrevious())
	assert.Equal(t, 2, c.CurrentIndex(), "previous wraps from the first track to the last")

	// Explicit next ignores repeat-one.
	c.SetRepeat(RepeatOne)
	require.NoError(t, c.PlayNext())
	assert.Equal(t, 0, c.CurrentIndex())
}

func TestPlayNext_EmptyPlaylist(t *testing.T) {
	t.Parallel()

	c, _ := newTestController()

	assert.ErrorIs(t, c.PlayNext(), ErrEmptyPlaylist)
	assert.ErrorIs(t, c.PlayPrevious(), ErrEmptyPlaylist)
}

func TestStop_ReleasesResources(t *testing.T) {
	t.Parallel()

	track := wavTrack(4096)
	c, out := newTestController(track)

	require.NoError(t, c.PlayTrack(0))
	require.NoError(t, c.Tick())

	c.Stop()
	assert.Equal(t, Stopped, c.State())
	assert.Equal(t, -1, c.CurrentIndex())
	assert.True(t, track.stream.Closed())
	assert.Positive(t, out.stops, "stop must halt the hardware channel")

	// Idempotent.
	c.Stop()
	assert.Equal(t, 1, out.stops)
}

func TestPlayTrack_StripsID3Tag(t *testing.T) {
	t.Parallel()

	// 10-byte header + 20-byte tag body, then 512 bytes of audio.
	const tagBody = 20
	data := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, tagBody}
	data = append(data, make([]byte, tagBody)...)
	audioStart := len(data)
	for i := range 512 {
		data = append(data, byte(i))
	}

	track := &memTrack{data: data, format: FormatMP3}
	c, out := newTestController(track)

	require.NoError(t, c.PlayTrack(0))
	assert.Equal(t, int64(audioStart), track.stream.Offset(),
		"decoder must start past the metadata tag")

	tickUntilStopped(t, c, 100)
	assert.Len(t, out.Frames, 512)
}
