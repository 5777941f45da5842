// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/playdeck/dsp"
	"github.com/ik5/playdeck/utils"
)

// BlockFrames is how many stereo frames one Loop call pumps. Small enough
// to finish well inside a control-loop tick, large enough to amortize the
// read call.
const BlockFrames = 512

// FrameSink accepts processed stereo frames. Consume reports false when
// the frame was not stored because a buffer flush intervened; the pump
// retries the frame. Implemented by sink.Buffered.
type FrameSink interface {
	Consume(l, r int16) bool
	SetRate(rate int)
	Flush()
}

// Pump drives one decoded source through the tone-control pipeline and the
// level meter into a frame sink. It is the per-track playback engine: the
// controller constructs one per decoder and calls Loop once per tick.
type Pump struct {
	src     *StereoSource
	tone    *dsp.ToneControl
	meter   *dsp.VUMeter
	out     FrameSink
	buf     []float32
	running bool
	err     error
}

// NewPump wires the shared pipeline stages. The pump itself is cheap;
// tone, meter and out live across tracks.
func NewPump(tone *dsp.ToneControl, meter *dsp.VUMeter, out FrameSink) *Pump {
	return &Pump{
		tone:  tone,
		meter: meter,
		out:   out,
		buf:   make([]float32, BlockFrames*2),
	}
}

// Begin attaches a freshly decoded source and starts pumping.
func (p *Pump) Begin(src Source) error {
	if src == nil {
		return ErrNoSource
	}

	p.src = NewStereoSource(src)
	p.out.SetRate(src.SampleRate())
	p.running = true
	p.err = nil
	return nil
}

// Loop pumps one block of frames. It reports false once the source is
// exhausted or failed; the controller reacts on its next tick.
func (p *Pump) Loop() bool {
	if !p.running {
		return false
	}

	n, err := p.src.ReadSamples(p.buf)
	rate := p.src.SampleRate()

	for i := 0; i+1 < n; i += 2 {
		l := utils.Float32ToInt16(p.buf[i])
		r := utils.Float32ToInt16(p.buf[i+1])

		l, r = p.tone.ProcessFrame(l, r, rate)
		p.meter.Observe(l, r)

		// A false Consume means the adapter flushed; the very next offer
		// lands in the fresh buffer.
		for !p.out.Consume(l, r) {
		}
	}

	if err != nil {
		p.running = false
		if err != io.EOF {
			p.err = err
		}
		return false
	}
	return true
}

// IsRunning reports whether the source still has data.
func (p *Pump) IsRunning() bool { return p.running }

// Err returns the failure that ended pumping, if any. io.EOF is a normal
// end and is not reported.
func (p *Pump) Err() error { return p.err }

// Stop halts pumping and releases the decoder. The underlying stream stays
// open; pause relies on that.
func (p *Pump) Stop() {
	if !p.running && p.src == nil {
		return
	}
	p.running = false
	if p.src != nil {
		_ = p.src.Close()
		p.src = nil
	}
}
