// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams into audio.Source via mewkiz/flac.
// Samples are normalized by the stream's declared bit depth, so 16- and
// 24-bit material both arrive in [-1, 1].
package flac
