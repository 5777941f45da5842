// SPDX-License-Identifier: EPL-2.0

package dsp

const (
	// ToneMin, ToneNeutral and ToneMax bound the bass/treble controls.
	// Each step away from neutral is one decibel, so the full range maps
	// to +/-12 dB.
	ToneMin     = 0
	ToneNeutral = 12
	ToneMax     = 24
)

// Params holds the user-adjustable tone controls. One instance is created
// at startup with neutral defaults and shared between the UI collaborator
// (writer) and the tone-control pipeline (reader). All mutation happens on
// the control-loop thread; writes are whole-field integer stores.
type Params struct {
	bass     int
	treble   int
	loudness bool
}

// NewParams returns tone controls at their neutral position.
func NewParams() *Params {
	return &Params{bass: ToneNeutral, treble: ToneNeutral}
}

func clampTone(v int) int {
	if v < ToneMin {
		return ToneMin
	}
	if v > ToneMax {
		return ToneMax
	}
	return v
}

func (p *Params) Bass() int      { return p.bass }
func (p *Params) Treble() int    { return p.treble }
func (p *Params) Loudness() bool { return p.loudness }

// SetBass sets the bass control, clamped to [ToneMin, ToneMax].
func (p *Params) SetBass(v int) { p.bass = clampTone(v) }

// SetTreble sets the treble control, clamped to [ToneMin, ToneMax].
func (p *Params) SetTreble(v int) { p.treble = clampTone(v) }

// SetLoudness enables or disables loudness compensation.
func (p *Params) SetLoudness(on bool) { p.loudness = on }

// toneDB maps a control value to its decibel gain relative to neutral.
func toneDB(v int) float64 {
	return float64(clampTone(v) - ToneNeutral)
}
