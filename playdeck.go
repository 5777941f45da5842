// SPDX-License-Identifier: EPL-2.0

package playdeck

import (
	"fmt"

	"github.com/ik5/playdeck/audio"
	"github.com/ik5/playdeck/dsp"
	"github.com/ik5/playdeck/formats/aac"
	"github.com/ik5/playdeck/formats/aiff"
	"github.com/ik5/playdeck/formats/flac"
	"github.com/ik5/playdeck/formats/mp3"
	"github.com/ik5/playdeck/formats/vorbis"
	"github.com/ik5/playdeck/formats/wav"
	"github.com/ik5/playdeck/player"
	"github.com/ik5/playdeck/sink"
)

// Pipeline bundles a fully wired playback chain. Params and Meter are the
// two surfaces a UI collaborator touches while the Controller runs.
type Pipeline struct {
	Controller *player.Controller
	Params     *dsp.Params
	Meter      *dsp.VUMeter

	hw *sink.OtoSink
}

// NewRegistry returns a decoder registry with every built-in format
// registered under its player.Format tag.
func NewRegistry() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register(string(player.FormatMP3), mp3.Decoder{})
	registry.Register(string(player.FormatWAV), wav.Decoder{})
	registry.Register(string(player.FormatOGG), vorbis.Decoder{})
	registry.Register(string(player.FormatFLAC), flac.Decoder{})
	registry.Register(string(player.FormatAAC), aac.Decoder{})
	registry.Register(string(player.FormatAIFF), aiff.Decoder{})
	return registry
}

// NewPipeline is a high-level convenience constructor: it opens the
// hardware output, stacks the triple-buffered adapter, tone control and
// VU meter on top, and returns a controller for the playlist.
//
// The caller drives Controller.Tick from its control loop and must call
// Pipeline.Close when done.
func NewPipeline(playlist player.Playlist, cfg player.Config) (*Pipeline, error) {
	cfg.ApplyLogLevel()

	channels := 1
	if cfg.Stereo {
		channels = 2
	}

	hw, err := sink.NewOtoSink(cfg.SampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	buffered := sink.NewBuffered(hw, cfg.BufferCapacity, cfg.SampleRate, cfg.Stereo, cfg.Channel)

	params := dsp.NewParams()
	tone := dsp.NewToneControl(params)
	meter := dsp.NewVUMeter()

	return &Pipeline{
		Controller: player.NewController(playlist, NewRegistry(), tone, meter, buffered),
		Params:     params,
		Meter:      meter,
		hw:         hw,
	}, nil
}

// Close stops playback and releases the hardware output.
func (p *Pipeline) Close() error {
	p.Controller.Stop()

	err := p.hw.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
