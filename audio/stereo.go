// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoSource normalizes any Source to interleaved stereo. Mono input is
// duplicated onto both channels; sources with more than two channels keep
// the front pair and average the rest in equally.
type StereoSource struct {
	src Source
	tmp []float32
}

func NewStereoSource(src Source) *StereoSource {
	return &StereoSource{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (s *StereoSource) SampleRate() int { return s.src.SampleRate() }
func (s *StereoSource) Channels() int   { return 2 }

func (s *StereoSource) Close() error {
	err := s.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *StereoSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) < 2 {
		return 0, nil
	}
	if s.src.Channels() == 2 {
		// Pass-through: already stereo interleaved
		n, err := s.src.ReadSamples(dst[:len(dst)/2*2])
		return n / 2 * 2, err
	}

	channels := s.src.Channels()
	maxFrames := len(dst) / 2
	samplesNeeded := maxFrames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(s.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		s.tmp = make([]float32, newCap)
	}
	s.tmp = s.tmp[:samplesNeeded]

	n, err := s.src.ReadSamples(s.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	switch channels {
	case 1: // Mono: duplicate onto both channels
		for f := range frames {
			v := s.tmp[f]
			dst[f*2] = v
			dst[f*2+1] = v
		}
	default: // Surround: keep the front pair, fold the rest in equally
		extra := float32(1.0) / float32(channels)
		for f := range frames {
			base := f * channels
			l := s.tmp[base]
			r := s.tmp[base+1]
			for c := 2; c < channels; c++ {
				l += s.tmp[base+c] * extra
				r += s.tmp[base+c] * extra
			}
			dst[f*2] = l
			dst[f*2+1] = r
		}
	}

	return frames * 2, err
}
