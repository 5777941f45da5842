// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III streams into audio.Source via
// hajimehoshi/go-mp3, and strips leading ID3v2 metadata so stream byte
// offsets recorded during playback stay inside audio data.
package mp3
