// SPDX-License-Identifier: EPL-2.0

// Package player implements the playback state machine: track selection
// with shuffle and repeat policy, byte-exact pause/resume over seekable
// streams, and auto-advance at end of track. The controller drives the
// audio pump once per control-loop tick and owns the lifetime of the
// stream, the decoder and the sink buffers.
package player
