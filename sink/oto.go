// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/sirupsen/logrus"
)

// OtoSink implements RawSink on top of an oto/v3 context. oto pulls bytes
// through an io.Reader, so PlayRaw pushes into a mutex-guarded queue that
// the device drains on its own thread; underruns are zero-filled to keep
// the device fed without glitching.
type OtoSink struct {
	ctx    *oto.Context
	player *oto.Player
	queue  *byteQueue
	rate   int
}

// NewOtoSink opens an audio device at sampleRate with the given channel
// count (1 or 2) and starts pulling.
func NewOtoSink(sampleRate, channels int) (*OtoSink, error) {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	if channels != 1 {
		channels = 2
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	s := &OtoSink{
		ctx: ctx,
		// Cap the pull queue at one second of PCM. A control loop that
		// outruns the device overruns the queue and loses the oldest
		// samples, so callers should pace ticks against real time.
		queue: &byteQueue{limit: sampleRate * channels * 2},
		rate:  sampleRate,
	}
	s.player = ctx.NewPlayer(s.queue)
	s.player.Play()

	logrus.WithFields(logrus.Fields{
		"sample_rate": sampleRate,
		"channels":    channels,
	}).Debug("audio device opened")

	return s, nil
}

// PlayRaw queues samples for the device. The slice is copied before
// returning, so the caller may reuse it immediately. The declared rate is
// logged when it disagrees with the device rate; oto cannot switch rates
// per buffer, so mismatched tracks play at device speed.
func (s *OtoSink) PlayRaw(buf []int16, sampleCount, sampleRateHz int, stereo bool, repeatCount, channel int) {
	if sampleCount > len(buf) {
		sampleCount = len(buf)
	}
	if sampleRateHz != s.rate {
		logrus.WithFields(logrus.Fields{
			"declared": sampleRateHz,
			"device":   s.rate,
		}).Warn("sample rate mismatch on flush")
	}

	for range repeatCount + 1 {
		s.queue.push(buf[:sampleCount])
	}

	// Stop pauses the device; the next flush restarts it.
	if !s.player.IsPlaying() {
		s.player.Play()
	}
}

// Stop drops any queued samples for the channel and pauses the device.
func (s *OtoSink) Stop(channel int) {
	s.queue.drop()
	s.player.Pause()
	logrus.WithField("channel", channel).Debug("audio channel stopped")
}

// Resume restarts the device after Stop.
func (s *OtoSink) Resume() {
	s.player.Play()
}

// Close releases the device player.
func (s *OtoSink) Close() error {
	if err := s.player.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// byteQueue is the pull side handed to oto. Read zero-fills when the queue
// runs dry so the device never starves, and push holds at most limit bytes
// so a producer running ahead of the device cannot grow memory unbounded.
type byteQueue struct {
	mtx   sync.Mutex
	data  []byte
	limit int
}

func (q *byteQueue) push(samples []int16) {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	for _, v := range samples {
		q.data = append(q.data, byte(uint16(v)), byte(uint16(v)>>8))
	}

	if q.limit > 0 && len(q.data) > q.limit {
		over := len(q.data) - q.limit
		q.data = q.data[over:]
		logrus.WithField("dropped_bytes", over).Warn("audio queue overrun")
	}
}

func (q *byteQueue) drop() {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	q.data = q.data[:0]
}

func (q *byteQueue) Read(p []byte) (int, error) {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	n := copy(p, q.data)
	q.data = q.data[n:]

	// Zero-fill the remainder: silence instead of an underrun error.
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}
