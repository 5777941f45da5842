// SPDX-License-Identifier: EPL-2.0

// Package wav decodes 16-bit PCM WAV streams into audio.Source and writes
// 16-bit PCM WAV files. Decoding is built on go-audio/wav and requires a
// seekable reader.
package wav
