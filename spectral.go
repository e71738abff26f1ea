package asd

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// spliceIndices truncates the two splice wavelengths to integer channel
// indices and clamps them to the spectrum bounds, matching the source
// format's treatment of the float32 splice1/splice2 wavelengths as
// channel positions.
func spliceIndices(m Metadata, n int) (int, int) {
	i1 := int(m.Splice1Wavelength)
	i2 := int(m.Splice2Wavelength)
	clamp := func(i int) int {
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}
	i1, i2 = clamp(i1), clamp(i2)
	if i2 < i1 {
		i1, i2 = i2, i1
	}
	return i1, i2
}

// Normalize splits s into three segments at the metadata's splice
// indices and scales each independently: the VNIR segment by the
// instrument's integration time, and the two SWIR segments by their
// respective gain terms. The input is not mutated.
func Normalize(s Spectrum, m Metadata) Spectrum {
	out := s.Clone()
	i1, i2 := spliceIndices(m, len(out))

	integrationMs := float64(m.IntegrationTimeMs)
	if integrationMs == 0 {
		integrationMs = 1
	}
	floats.Scale(1/integrationMs, out[:i1])

	swir1 := float64(m.Swir1Gain) / 2048
	floats.Scale(swir1, out[i1:i2])

	swir2 := float64(m.Swir2Gain) / 2048
	floats.Scale(swir2, out[i2:])

	return out
}

// Reflectance computes normalise(spectrum) / normalise(reference)
// elementwise, yielding zero in any channel where the reference
// normalises to zero. Callers should gate this on version >= 2,
// Metadata.DataType == DataTypeReflectance, and a recorded reference
// time, per the format's stated preconditions.
func Reflectance(spectrum, reference Spectrum, m Metadata) Spectrum {
	num := Normalize(spectrum, m)
	den := Normalize(reference, m)
	out := make(Spectrum, len(num))
	n := len(num)
	if len(den) < n {
		n = len(den)
	}
	for i := 0; i < n; i++ {
		if den[i] == 0 {
			out[i] = 0
			continue
		}
		out[i] = num[i] / den[i]
	}
	return out
}

// Radiance computes the calibrated radiance spectrum from the raw
// spectrum, the captured white-reference spectrum, and the
// lamp/base/absolute (or fiber-optic fallback) calibration series.
// Callers should gate this on version >= 7, Metadata.DataType ==
// DataTypeRadiance, and at least three calibration slots populated.
func Radiance(spectrum, reference Spectrum, series CalibrationSeries, m Metadata) Spectrum {
	n := len(spectrum)
	out := make(Spectrum, n)

	denomSlot := series.Absolute
	usingFiber := false
	if denomSlot == nil {
		denomSlot = series.FiberOptic
		usingFiber = true
	}

	integrationMs := float64(m.IntegrationTimeMs)
	const geometryConstant = 500 * 544 * math.Pi

	for i := 0; i < n; i++ {
		lamp := elementOr(series.Lamp, i, 1)
		ref := elementOr(reference, i, 1)
		base := elementOr(series.Base, i, 1)
		denom := elementOr(denomSlot, i, 0)

		var d float64
		if usingFiber {
			d = base * geometryConstant * denom
		} else {
			d = denom * geometryConstant * base
		}
		if d == 0 {
			out[i] = 0
			continue
		}
		out[i] = lamp * ref * spectrum[i] * integrationMs / d
	}
	return out
}

func elementOr(s Spectrum, i int, fallback float64) float64 {
	if i < 0 || i >= len(s) {
		return fallback
	}
	return s[i]
}

// AbsoluteReflectance scales a relative reflectance spectrum by the
// known reflectance of the reference panel it was measured against.
func AbsoluteReflectance(reflectance, panel Spectrum) Spectrum {
	out := reflectance.Clone()
	n := len(out)
	if len(panel) < n {
		n = len(panel)
	}
	floats.Mul(out[:n], panel[:n])
	return out
}

// Log1R returns log10(1/R) of a reflectance spectrum; channels with
// non-positive reflectance yield zero.
func Log1R(reflectance Spectrum) Spectrum {
	out := make(Spectrum, len(reflectance))
	for i, r := range reflectance {
		if r <= 0 {
			continue
		}
		out[i] = math.Log10(1 / r)
	}
	return out
}

// Derivative1 returns the first-order numeric gradient of s.
func Derivative1(s Spectrum) Spectrum {
	out := make(Spectrum, len(s))
	copy(out, []float64(s))
	grad := gradient(out)
	return grad
}

// Derivative2 returns the second-order numeric gradient of s, i.e. the
// gradient of Derivative1(s).
func Derivative2(s Spectrum) Spectrum {
	return gradient(Derivative1(s))
}

// gradient computes a central-difference numeric gradient matching the
// boundary handling of a forward/backward difference at the endpoints.
func gradient(s Spectrum) Spectrum {
	n := len(s)
	out := make(Spectrum, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		return out
	}
	out[0] = s[1] - s[0]
	out[n-1] = s[n-1] - s[n-2]
	for i := 1; i < n-1; i++ {
		out[i] = (s[i+1] - s[i-1]) / 2
	}
	return out
}
