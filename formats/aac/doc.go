// SPDX-License-Identifier: EPL-2.0

// Package aac decodes AAC streams with ADTS framing into audio.Source via
// llehouerou/go-aac. Raw AAC without ADTS headers is not supported, since
// the container would have to supply frame boundaries.
package aac
