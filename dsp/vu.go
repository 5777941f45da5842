// SPDX-License-Identifier: EPL-2.0

package dsp

// VUWindow is the accumulation window, in samples, between level updates.
const VUWindow = 256

// VUMeter tracks per-channel peak magnitude over a fixed window and
// publishes slow-moving 0-255 levels for a VU display. Publishing is a
// plain integer store, cheap enough for the audio path. Separate visual
// peaks decay toward zero when the display asks, so the meter falls back
// gracefully when no frames arrive.
type VUMeter struct {
	accum [2]int32
	count int

	level [2]uint8
	peak  [2]uint8
}

// NewVUMeter returns a meter with zeroed levels.
func NewVUMeter() *VUMeter {
	return &VUMeter{}
}

// Observe folds one stereo frame into the running peaks. Every VUWindow
// samples it publishes new levels and resets the accumulators.
func (m *VUMeter) Observe(l, r int16) {
	m.accum[0] = maxAbs(m.accum[0], l)
	m.accum[1] = maxAbs(m.accum[1], r)

	m.count++
	if m.count < VUWindow {
		return
	}

	for ch := range 2 {
		lv := m.accum[ch] >> 7
		if lv > 255 {
			lv = 255
		}
		m.level[ch] = uint8(lv)
		if m.level[ch] > m.peak[ch] {
			m.peak[ch] = m.level[ch]
		}
		m.accum[ch] = 0
	}
	m.count = 0
}

func maxAbs(acc int32, s int16) int32 {
	v := int32(s)
	if v < 0 {
		v = -v
	}
	if v > acc {
		return v
	}
	return acc
}

// Levels returns the last published 0-255 levels (left, right).
func (m *VUMeter) Levels() (uint8, uint8) {
	return m.level[0], m.level[1]
}

// Peaks returns the decaying visual peaks (left, right).
func (m *VUMeter) Peaks() (uint8, uint8) {
	return m.peak[0], m.peak[1]
}

// Decay fades levels and peaks one step toward zero. Called by the display
// collaborator on its own cadence, typically when no frames are flowing.
func (m *VUMeter) Decay() {
	for ch := range 2 {
		if m.level[ch] > 0 {
			m.level[ch]--
		}
		if m.peak[ch] > 0 {
			m.peak[ch]--
		}
	}
}

// Reset zeroes all accumulators and published values.
func (m *VUMeter) Reset() {
	*m = VUMeter{}
}
