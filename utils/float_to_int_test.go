// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"silence", 0.0, 0},
		{"full positive", 1.0, 32767},
		{"full negative", -1.0, -32767},
		{"half positive", 0.5, 16383},
		{"clamped above", 1.5, 32767},
		{"clamped below", -2.0, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int16{0, 1, -1, 1000, -1000, 32767, -32768} {
		f := Int16ToFloat32(v)
		if f < -1.0 || f > 1.0 {
			t.Errorf("Int16ToFloat32(%d) = %v, out of [-1, 1]", v, f)
		}

		back := Float32ToInt16(f)
		diff := int(back) - int(v)
		if diff < -1 || diff > 1 {
			t.Errorf("round trip of %d gave %d", v, back)
		}
	}
}

func TestClampToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want int16
	}{
		{"zero", 0, 0},
		{"in range", 12345, 12345},
		{"negative in range", -12345, -12345},
		{"positive overflow", 40000, 32767},
		{"negative overflow", -40000, -32768},
		{"exact max", 32767, 32767},
		{"exact min", -32768, -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampToInt16(tt.in); got != tt.want {
				t.Errorf("ClampToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
