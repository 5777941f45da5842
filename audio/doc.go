// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoding and pumping layer of the player.
//
// # Source Interface
//
// The Source interface is the boundary between format decoders and the
// playback pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format packages under formats/ return a Source. Samples are
// interleaved float32 in [-1.0, 1.0]; ReadSamples returns io.EOF with
// n == 0 once the stream is finished.
//
// # Channel Normalization
//
// StereoSource adapts any Source to interleaved stereo: mono is duplicated
// onto both channels, surround content keeps the front pair.
//
// # Pumping
//
// Pump is the playback engine for one track. Each Loop call pulls one
// block of samples, converts them to 16-bit PCM, runs every frame through
// the tone-control pipeline and the VU meter, and offers it to the frame
// sink (retrying after a buffer flush, so nothing is dropped). Loop does
// bounded work and never blocks; the control loop calls it once per tick.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// The playback controller resolves a track's format tag against the
// registry when the track starts.
package audio
