// SPDX-License-Identifier: EPL-2.0

package sink

// BufferCount is the fixed depth of the rotation. Three buffers let the
// hardware drain one while the pipeline fills the next, with the third
// absorbing scheduling jitter from display refresh and input polling.
const BufferCount = 3

// DefaultCapacity is the per-buffer sample capacity used by NewBuffered
// when the caller passes a non-positive value.
const DefaultCapacity = 2048

// RawSink is the hardware output contract. PlayRaw must copy or fully
// consume buf before returning; ownership of the slice stays with the
// caller. repeatCount of zero plays the buffer once.
type RawSink interface {
	PlayRaw(buf []int16, sampleCount, sampleRateHz int, stereo bool, repeatCount, channel int)
	Stop(channel int)
}

// Buffered rotates decoded samples through BufferCount fixed-capacity
// buffers before handing them to a RawSink. It decouples decode-rate
// bursts from hardware write latency.
type Buffered struct {
	out     RawSink
	bufs    [BufferCount][]int16
	active  int
	cursor  int
	stereo  bool
	rate    int
	channel int
}

// NewBuffered builds an adapter in front of out. In stereo mode frames are
// written interleaved; in mono mode only the left sample is kept. rate is
// the declared sample rate handed to the hardware on every flush.
func NewBuffered(out RawSink, capacity, rate int, stereo bool, channel int) *Buffered {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	// A buffer must hold at least one frame, or Consume would flush empty
	// and reject forever while the caller retries.
	if stereo && capacity < 2 {
		capacity = 2
	}

	b := &Buffered{
		out:     out,
		stereo:  stereo,
		rate:    rate,
		channel: channel,
	}
	for i := range b.bufs {
		b.bufs[i] = make([]int16, capacity)
	}
	return b
}

// Stereo reports whether the adapter writes interleaved stereo.
func (b *Buffered) Stereo() bool { return b.stereo }

// SetRate changes the declared sample rate for subsequent flushes. Called
// by the pump when a new track reports a different rate.
func (b *Buffered) SetRate(rate int) {
	if rate > 0 {
		b.rate = rate
	}
}

// Consume offers one stereo frame. If the active buffer has room the frame
// is stored and Consume returns true. If it is full, the buffer is flushed
// to the hardware, the rotation advances, and Consume returns false: the
// caller must retry the same frame against the fresh buffer.
func (b *Buffered) Consume(l, r int16) bool {
	need := 1
	if b.stereo {
		need = 2
	}

	buf := b.bufs[b.active]
	if b.cursor+need > len(buf) {
		b.flushActive()
		return false
	}

	buf[b.cursor] = l
	b.cursor++
	if b.stereo {
		buf[b.cursor] = r
		b.cursor++
	}
	return true
}

// Flush forces a partial-buffer write. Used on stop and pause so the tail
// of the stream is not lost.
func (b *Buffered) Flush() {
	if b.cursor == 0 {
		return
	}
	b.flushActive()
}

// Stop flushes any pending samples and halts the hardware channel.
func (b *Buffered) Stop() {
	b.Flush()
	b.out.Stop(b.channel)
}

func (b *Buffered) flushActive() {
	buf := b.bufs[b.active]
	// The hardware copies the buffer during PlayRaw, so rotating
	// immediately afterwards is safe.
	b.out.PlayRaw(buf[:b.cursor], b.cursor, b.rate, b.stereo, 0, b.channel)

	b.active = (b.active + 1) % BufferCount
	b.cursor = 0
}
