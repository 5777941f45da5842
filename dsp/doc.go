// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the per-sample tone-control pipeline of the
// player: biquad filter design, coefficient smoothing, cascaded filtering
// and VU metering.
//
// # Pipeline
//
// ToneControl owns three cascaded second-order sections per channel:
//
//	input -> low shelf (bass) -> high shelf (treble) -> peaking cut (loudness) -> clamp
//
// Coefficients are designed with the Bristow-Johnson cookbook formulas and
// recomputed only when a control value or the sample rate changes. Every
// sample, the live coefficients slew toward the designed targets by
// SmoothRate, so parameter changes glide over a few tens of milliseconds
// instead of stepping.
//
// # Sanitization
//
// The design functions never fail: non-positive sample rates fall back to
// DefaultSampleRate, corner frequencies are kept strictly below Nyquist and
// slope/Q is floored above zero, so every returned filter is stable.
//
// # Metering
//
// VUMeter accumulates per-channel peak magnitude over VUWindow samples and
// publishes 0-255 levels plus decaying visual peaks for the display.
//
// Nothing in this package allocates or blocks on the processing path.
package dsp
