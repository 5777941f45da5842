// SPDX-License-Identifier: EPL-2.0

// Package sink buffers processed samples on their way to the audio
// hardware.
//
// Buffered rotates through three fixed-capacity buffers: one being drained
// by the hardware, one being filled, and one of slack against scheduling
// jitter. Consume returns false when the active buffer is full, after
// flushing it; the caller retries the frame against the fresh buffer, so
// no sample is ever dropped.
//
// RawSink is the narrow hardware contract. OtoSink implements it over
// ebitengine/oto for real output; tests use a recording fake.
package sink
