// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ik5/playdeck/audio"
	"github.com/ik5/playdeck/dsp"
	"github.com/ik5/playdeck/formats/mp3"
)

// State is the playback state machine position.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Output is the buffered sink surface the controller drives. sink.Buffered
// implements it.
type Output interface {
	audio.FrameSink
	Stop()
}

// Controller is the playback state machine. It owns the active session
// (stream, decoder pump) and applies the selection policy on track end.
// All methods must run on the control-loop thread.
type Controller struct {
	playlist Playlist
	registry *audio.Registry
	tone     *dsp.ToneControl
	meter    *dsp.VUMeter
	out      Output

	policy policy
	state  State
	sess   *session

	log *logrus.Entry
}

// NewController wires a controller over the shared pipeline stages. The
// registry maps format tags to decoders; tone and meter persist across
// tracks.
func NewController(playlist Playlist, registry *audio.Registry, tone *dsp.ToneControl, meter *dsp.VUMeter, out Output) *Controller {
	return &Controller{
		playlist: playlist,
		registry: registry,
		tone:     tone,
		meter:    meter,
		out:      out,
		policy:   newPolicy(),
		log:      logrus.WithField("component", "player"),
	}
}

func (c *Controller) State() State { return c.state }

// CurrentIndex returns the playing or paused track index, or -1 when
// stopped.
func (c *Controller) CurrentIndex() int {
	if c.sess == nil {
		return -1
	}
	return c.sess.index
}

func (c *Controller) Shuffle() bool      { return c.policy.shuffle }
func (c *Controller) Repeat() RepeatMode { return c.policy.repeat }

func (c *Controller) SetShuffle(on bool) {
	c.policy.shuffle = on
	c.log.WithField("shuffle", on).Debug("shuffle changed")
}

func (c *Controller) SetRepeat(m RepeatMode) {
	c.policy.repeat = m
	c.log.WithField("repeat", m.String()).Debug("repeat mode changed")
}

// PlayTrack starts playback of the playlist entry at index, tearing down
// any current session first. An out-of-range index is rejected without
// touching the current session; any later failure lands in Stopped.
func (c *Controller) PlayTrack(index int) error {
	if index < 0 || index >= len(c.playlist) {
		return fmt.Errorf("%w: %d", ErrTrackOutOfRange, index)
	}

	c.teardown()
	c.state = Stopped

	track := c.playlist[index]
	stream, err := track.Open()
	if err != nil {
		c.log.WithFields(logrus.Fields{"index": index, "err": err}).Warn("open failed")
		return fmt.Errorf("%w", err)
	}

	sess := &session{
		index:  index,
		format: track.Format(),
		stream: stream,
	}

	// Metadata framing sits in front of MP3 audio; skip it so pause
	// offsets always land inside audio data.
	if sess.format == FormatMP3 {
		if _, err := mp3.SkipID3v2(stream); err != nil {
			_ = stream.Close()
			return fmt.Errorf("%w", err)
		}
	}

	if err := c.attach(sess); err != nil {
		_ = stream.Close()
		c.log.WithFields(logrus.Fields{
			"index":  index,
			"format": string(sess.format),
			"err":    err,
		}).Warn("decoder start failed")
		return err
	}

	c.sess = sess
	c.state = Playing
	c.log.WithFields(logrus.Fields{
		"index":  index,
		"format": string(sess.format),
		"state":  c.state.String(),
	}).Info("playing track")

	return nil
}

// attach resolves the decoder for the session's format tag and starts a
// pump at the stream's current position.
func (c *Controller) attach(sess *session) error {
	dec, ok := c.registry.Get(string(sess.format))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, sess.format)
	}

	src, err := dec.Decode(sess.stream)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	pump := audio.NewPump(c.tone, c.meter, c.out)
	if err := pump.Begin(src); err != nil {
		return fmt.Errorf("%w", err)
	}

	sess.pump = pump
	return nil
}

// Pause records the stream position and stops the decoder. The stream
// stays open so Resume can pick up byte-exact. No-op unless Playing.
func (c *Controller) Pause() error {
	if c.state != Playing || c.sess == nil {
		return nil
	}

	offset, err := c.sess.stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	c.sess.offset = offset

	c.sess.pump.Stop()
	c.out.Flush()
	c.state = Paused

	c.log.WithFields(logrus.Fields{
		"index":  c.sess.index,
		"offset": offset,
	}).Info("paused")

	return nil
}

// Resume seeks back to the recorded pause offset and re-attaches a fresh
// decoder there. Decoders consume bytes sequentially from the current
// position, so no re-decode from the start is needed. No-op unless Paused.
func (c *Controller) Resume() error {
	if c.state != Paused || c.sess == nil {
		return nil
	}

	if _, err := c.sess.stream.Seek(c.sess.offset, io.SeekStart); err != nil {
		c.Stop()
		return fmt.Errorf("%w", err)
	}

	if err := c.attach(c.sess); err != nil {
		c.Stop()
		return err
	}

	c.state = Playing
	c.log.WithFields(logrus.Fields{
		"index":  c.sess.index,
		"offset": c.sess.offset,
	}).Info("resumed")

	return nil
}

// Stop tears down the session: decoder, sink and stream, in that order.
func (c *Controller) Stop() {
	if c.state == Stopped && c.sess == nil {
		return
	}

	c.teardown()
	c.state = Stopped
	c.log.WithField("state", c.state.String()).Info("stopped")
}

func (c *Controller) teardown() {
	if c.sess == nil {
		return
	}

	if c.sess.pump != nil {
		c.sess.pump.Stop()
	}
	c.out.Stop()
	_ = c.sess.stream.Close()
	c.sess = nil
}

// Tick runs one control-loop step: pump a block of audio and, when the
// track has ended, apply the auto-advance policy. Paused and stopped
// states are no-ops.
func (c *Controller) Tick() error {
	if c.state != Playing || c.sess == nil {
		return nil
	}

	if c.sess.pump.Loop() {
		return nil
	}

	if err := c.sess.pump.Err(); err != nil {
		index := c.sess.index
		c.Stop()
		return fmt.Errorf("track %d: %w", index, err)
	}

	next := c.policy.nextAfterEnd(c.sess.index, len(c.playlist))
	if next < 0 {
		c.Stop()
		return nil
	}

	return c.PlayTrack(next)
}

// PlayNext advances to the following track. Shuffle applies; repeat-one
// does not. From Stopped it starts at the first track (or a random one
// with shuffle on).
func (c *Controller) PlayNext() error {
	if len(c.playlist) == 0 {
		return ErrEmptyPlaylist
	}

	return c.PlayTrack(c.policy.next(c.CurrentIndex(), len(c.playlist)))
}

// PlayPrevious steps back one track, wrapping from the first to the last.
// Shuffle and repeat do not apply.
func (c *Controller) PlayPrevious() error {
	if len(c.playlist) == 0 {
		return ErrEmptyPlaylist
	}

	return c.PlayTrack(c.policy.previous(c.CurrentIndex(), len(c.playlist)))
}
