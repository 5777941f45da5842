// SPDX-License-Identifier: EPL-2.0

package dsp

// SmoothRate is the per-sample interpolation step for coefficient slewing.
// At 48 kHz it gives a time constant of roughly 14 ms, long enough that a
// tone-control change glides instead of clicking, short enough to feel
// immediate.
const SmoothRate = 0.0015

// StepToward moves every coefficient a fraction rate of the remaining
// distance toward target. Must be called once per stage per sample while
// audio is flowing.
func (c *Coefficients) StepToward(target Coefficients, rate float64) {
	c.B0 += (target.B0 - c.B0) * rate
	c.B1 += (target.B1 - c.B1) * rate
	c.B2 += (target.B2 - c.B2) * rate
	c.A1 += (target.A1 - c.A1) * rate
	c.A2 += (target.A2 - c.A2) * rate
}
