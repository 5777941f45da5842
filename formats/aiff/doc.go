// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF streams into audio.Source via go-audio/aiff.
package aiff
