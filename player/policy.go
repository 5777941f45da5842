// SPDX-License-Identifier: EPL-2.0

package player

import "math/rand/v2"

// RepeatMode selects what happens when a track finishes.
type RepeatMode int

const (
	// RepeatOff plays the playlist once and stops at the end.
	RepeatOff RepeatMode = iota
	// RepeatAll wraps to the first track after the last.
	RepeatAll
	// RepeatOne replays the finished track.
	RepeatOne
)

func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "off"
	case RepeatAll:
		return "all"
	case RepeatOne:
		return "one"
	default:
		return "unknown"
	}
}

// policy holds the track-selection knobs. intn is injected so tests can
// pin the shuffle outcome.
type policy struct {
	shuffle bool
	repeat  RepeatMode
	intn    func(n int) int
}

func newPolicy() policy {
	return policy{intn: rand.IntN}
}

// nextAfterEnd picks the index to auto-advance to when track current
// finishes. A negative result means playback stops.
func (p *policy) nextAfterEnd(current, count int) int {
	if count == 0 {
		return -1
	}
	if p.repeat == RepeatOne {
		return current
	}
	if p.shuffle {
		return p.random(current, count)
	}
	if current+1 < count {
		return current + 1
	}
	if p.repeat == RepeatAll {
		return 0
	}

	return -1
}

// next is the user-driven forward selection. It honors shuffle, ignores
// repeat-one, and wraps sequentially past the last index.
func (p *policy) next(current, count int) int {
	if count == 0 {
		return -1
	}
	if p.shuffle {
		return p.random(current, count)
	}

	return (current + 1) % count
}

// previous steps back one index, wrapping from the first track to the
// last. Shuffle and repeat do not apply.
func (p *policy) previous(current, count int) int {
	if count == 0 {
		return -1
	}
	if current <= 0 {
		return count - 1
	}

	return current - 1
}

// random draws a uniform index; when it lands on the current track and
// another exists, it bumps to the following index instead of redrawing.
func (p *policy) random(current, count int) int {
	i := p.intn(count)
	if i == current && count > 1 {
		i = (i + 1) % count
	}

	return i
}
