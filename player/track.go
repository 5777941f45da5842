// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format tags identify which decoder handles a track. The tag doubles as
// the registry key in audio.Registry.
type Format string

const (
	FormatMP3  Format = "mp3"
	FormatWAV  Format = "wav"
	FormatFLAC Format = "flac"
	FormatAAC  Format = "aac"
	FormatOGG  Format = "ogg"
	FormatAIFF Format = "aiff"
)

// Track is one playable playlist entry. Open returns a fresh byte stream
// positioned at the start; the controller owns the stream until it stops
// or replaces the track.
type Track interface {
	Open() (io.ReadSeekCloser, error)
	Format() Format
}

// Playlist is an ordered set of tracks addressed by index.
type Playlist []Track

// FormatFromPath derives a format tag from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return FormatMP3, nil
	case ".wav":
		return FormatWAV, nil
	case ".flac":
		return FormatFLAC, nil
	case ".aac", ".adts":
		return FormatAAC, nil
	case ".ogg", ".oga":
		return FormatOGG, nil
	case ".aiff", ".aif":
		return FormatAIFF, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// FileTrack is a Track backed by a file on disk.
type FileTrack struct {
	path   string
	format Format
}

// NewFileTrack builds a track for path, deriving the format tag from the
// extension.
func NewFileTrack(path string) (*FileTrack, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return &FileTrack{path: path, format: format}, nil
}

func (t *FileTrack) Path() string   { return t.path }
func (t *FileTrack) Format() Format { return t.format }

func (t *FileTrack) Open() (io.ReadSeekCloser, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return f, nil
}
