// SPDX-License-Identifier: EPL-2.0

package dsp

// BiquadState holds the two delay registers of one filter section for one
// channel. The tone-control pipeline owns six of these (three roles times
// two channels).
type BiquadState struct {
	z1, z2 float64
}

// Apply runs one transposed direct-form-II update on a single sample.
func (s *BiquadState) Apply(x float64, c Coefficients) float64 {
	y := c.B0*x + s.z1
	s.z1 = c.B1*x - c.A1*y + s.z2
	s.z2 = c.B2*x - c.A2*y
	return y
}

// Reset clears the delay registers. Only needed on an explicit stream
// reset; track changes are masked by coefficient smoothing.
func (s *BiquadState) Reset() {
	s.z1 = 0
	s.z2 = 0
}
