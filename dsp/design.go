// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// DefaultSampleRate is used whenever a caller supplies a non-positive rate.
const DefaultSampleRate = 44100

// Coefficients holds one normalized biquad section (a0 == 1).
// Produced by the design functions; treated as a value everywhere else.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Identity returns coefficients that pass samples through unchanged.
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// sanitize clamps design inputs so every call yields a stable filter.
// Corner frequency is capped below Nyquist; slope/Q never reaches zero.
func sanitize(fs, f0, width float64) (float64, float64, float64) {
	if fs <= 0 {
		fs = DefaultSampleRate
	}
	if f0 < 1 {
		f0 = 1
	}
	if max := 0.45 * fs; f0 > max {
		f0 = max
	}
	if width < 1e-4 {
		width = 1e-4
	}
	return fs, f0, width
}

// DesignLowShelf computes a low-shelf biquad (Bristow-Johnson cookbook)
// boosting or cutting below f0 by gainDB with shelf slope S.
func DesignLowShelf(fs, f0, gainDB, slope float64) Coefficients {
	fs, f0, slope = sanitize(fs, f0, slope)

	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * f0 / fs
	cosw0 := math.Cos(w0)
	sinw0 := math.Sin(w0)
	alpha := sinw0 / 2 * math.Sqrt((a+1/a)*(1/slope-1)+2)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cosw0 + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cosw0)
	b2 := a * ((a + 1) - (a-1)*cosw0 - beta)
	a0 := (a + 1) + (a-1)*cosw0 + beta
	a1 := -2 * ((a - 1) + (a+1)*cosw0)
	a2 := (a + 1) + (a-1)*cosw0 - beta

	return normalize(b0, b1, b2, a0, a1, a2)
}

// DesignHighShelf computes a high-shelf biquad boosting or cutting above f0
// by gainDB with shelf slope S.
func DesignHighShelf(fs, f0, gainDB, slope float64) Coefficients {
	fs, f0, slope = sanitize(fs, f0, slope)

	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * f0 / fs
	cosw0 := math.Cos(w0)
	sinw0 := math.Sin(w0)
	alpha := sinw0 / 2 * math.Sqrt((a+1/a)*(1/slope-1)+2)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cosw0 + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cosw0)
	b2 := a * ((a + 1) + (a-1)*cosw0 - beta)
	a0 := (a + 1) - (a-1)*cosw0 + beta
	a1 := 2 * ((a - 1) - (a+1)*cosw0)
	a2 := (a + 1) - (a-1)*cosw0 - beta

	return normalize(b0, b1, b2, a0, a1, a2)
}

// DesignPeakingEQ computes a peaking biquad centered at f0 with bandwidth
// controlled by q, boosting or cutting by gainDB.
func DesignPeakingEQ(fs, f0, gainDB, q float64) Coefficients {
	fs, f0, q = sanitize(fs, f0, q)

	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * f0 / fs
	cosw0 := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := 1 + alpha*a
	b1 := -2 * cosw0
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cosw0
	a2 := 1 - alpha/a

	return normalize(b0, b1, b2, a0, a1, a2)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	inv := 1 / a0
	return Coefficients{
		B0: b0 * inv,
		B1: b1 * inv,
		B2: b2 * inv,
		A1: a1 * inv,
		A2: a2 * inv,
	}
}
