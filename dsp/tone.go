// SPDX-License-Identifier: EPL-2.0

package dsp

import "github.com/ik5/playdeck/utils"

// Fixed corner frequencies of the three tone stages.
const (
	bassCorner   = 125.0
	trebleCorner = 10000.0
	midCorner    = 1000.0

	shelfSlope = 1.0
	midQ       = 0.707

	// Gain of the mid cut while loudness compensation is active.
	loudnessCutDB = -12.0
)

// toneKey fingerprints the inputs that affect target coefficients.
// Targets are recomputed at most once per distinct key, never per sample.
type toneKey struct {
	bass     int
	treble   int
	loudness bool
	rate     int
}

// stage is one filter role with its smoothed coefficients and per-channel
// state (index 0 = left, 1 = right).
type stage struct {
	current Coefficients
	target  Coefficients
	state   [2]BiquadState
}

// ToneControl is the per-sample tone pipeline: a low shelf for bass, a high
// shelf for treble and a mid peaking cut for loudness compensation, cascaded
// per channel. It reads Params on every frame and slews coefficient changes
// so control moves never click.
type ToneControl struct {
	params *Params

	bass     stage
	treble   stage
	loudness stage

	key   toneKey
	keyed bool
}

// NewToneControl builds a pipeline reading the given controls. The stages
// start at identity so the first frames pass through until the first
// designed targets take hold.
func NewToneControl(params *Params) *ToneControl {
	t := &ToneControl{params: params}
	for _, s := range []*stage{&t.bass, &t.treble, &t.loudness} {
		s.current = Identity()
		s.target = Identity()
	}
	return t
}

// Params exposes the controls this pipeline reads.
func (t *ToneControl) Params() *Params { return t.params }

// ProcessFrame filters one stereo frame at sampleRate and hard-clamps the
// result to the signed 16-bit range. Bounded work per call; safe to run on
// the control loop between input polls.
func (t *ToneControl) ProcessFrame(l, r int16, sampleRate int) (int16, int16) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	key := toneKey{
		bass:     t.params.Bass(),
		treble:   t.params.Treble(),
		loudness: t.params.Loudness(),
		rate:     sampleRate,
	}
	if !t.keyed || key != t.key {
		t.retarget(key)
	}

	t.bass.current.StepToward(t.bass.target, SmoothRate)
	t.treble.current.StepToward(t.treble.target, SmoothRate)
	t.loudness.current.StepToward(t.loudness.target, SmoothRate)

	return t.processChannel(float64(l), 0), t.processChannel(float64(r), 1)
}

func (t *ToneControl) processChannel(x float64, ch int) int16 {
	x = t.bass.state[ch].Apply(x, t.bass.current)
	x = t.treble.state[ch].Apply(x, t.treble.current)
	x = t.loudness.state[ch].Apply(x, t.loudness.current)
	return utils.ClampToInt16(x)
}

// retarget recomputes the three target coefficient sets for a new control
// fingerprint. This is the only place the trigonometric design runs.
func (t *ToneControl) retarget(key toneKey) {
	fs := float64(key.rate)

	t.bass.target = DesignLowShelf(fs, bassCorner, toneDB(key.bass), shelfSlope)
	t.treble.target = DesignHighShelf(fs, trebleCorner, toneDB(key.treble), shelfSlope)

	cut := 0.0
	if key.loudness {
		cut = loudnessCutDB
	}
	t.loudness.target = DesignPeakingEQ(fs, midCorner, cut, midQ)

	t.key = key
	t.keyed = true
}

// Reset clears all filter state. Not required between tracks.
func (t *ToneControl) Reset() {
	for _, s := range []*stage{&t.bass, &t.treble, &t.loudness} {
		s.state[0].Reset()
		s.state[1].Reset()
	}
}
