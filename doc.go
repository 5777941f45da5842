// SPDX-License-Identifier: EPL-2.0

// Package playdeck provides the playback core of a portable media player:
// format decoding, a three-band tone-control DSP pipeline, VU metering, a
// triple-buffered hardware sink and a playlist state machine with shuffle,
// repeat and byte-exact pause/resume.
//
// # Supported Formats
//
// The package decodes the following audio formats:
//   - MP3 via formats/mp3 (leading ID3v2 tags are stripped automatically)
//   - WAV (PCM 16-bit) via formats/wav
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//   - AAC (raw ADTS) via formats/aac
//   - AIFF via formats/aiff
//
// # Quick Start
//
// The simplest way to play a list of files is NewPipeline, which wires the
// whole chain over a hardware sink:
//
//	track, _ := player.NewFileTrack("song.mp3")
//	deck, _ := playdeck.NewPipeline(player.Playlist{track}, player.ConfigFromEnv())
//
//	deck.Controller.PlayTrack(0)
//	for deck.Controller.State() != player.Stopped {
//		deck.Controller.Tick()
//		deck.Meter.Decay()
//	}
//
// # Custom Pipelines
//
// For more control, build the stages directly from the subpackages:
//
//	registry := audio.NewRegistry()
//	registry.Register(string(player.FormatWAV), wav.Decoder{})
//
//	params := dsp.NewParams()
//	tone := dsp.NewToneControl(params)
//	meter := dsp.NewVUMeter()
//	buffered := sink.NewBuffered(rawSink, 2048, 44100, true, 0)
//
//	controller := player.NewController(playlist, registry, tone, meter, buffered)
//
// The tone controls are adjusted through params (SetBass, SetTreble,
// SetLoudness) and take effect on the next processed frame with a short
// slew to avoid clicks. The meter publishes 0-255 levels and decaying
// visual peaks for a display.
package playdeck
