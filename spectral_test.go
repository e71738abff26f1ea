package asd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNormalizeSegments checks the three-way split mandated by the
// format: VNIR divided by integration time, SWIR1/SWIR2 scaled by their
// respective gain terms. Metadata.IntegrationTimeMs is an on-disk
// unsigned 32-bit field, so this uses an exactly representable
// integration time rather than a fractional one.
func TestNormalizeSegments(t *testing.T) {
	channels := 2151
	splice1, splice2 := 1000, 1800

	spectrum := make(Spectrum, channels)
	for i := range spectrum {
		spectrum[i] = 1.0
	}

	m := Metadata{
		Channels:          uint16(channels),
		IntegrationTimeMs: 8,
		Swir1Gain:         1024,
		Swir2Gain:         2048,
		Splice1Wavelength: float32(splice1),
		Splice2Wavelength: float32(splice2),
	}

	out := Normalize(spectrum, m)
	require.Len(t, out, channels)

	for i := 0; i < splice1; i++ {
		require.InDelta(t, 1.0/8.0, out[i], 1e-9)
	}
	for i := splice1; i < splice2; i++ {
		require.InDelta(t, 1024.0/2048.0, out[i], 1e-9)
	}
	for i := splice2; i < channels; i++ {
		require.InDelta(t, 2048.0/2048.0, out[i], 1e-9)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	spectrum := Spectrum{1, 1, 1, 1}
	m := Metadata{Channels: 4, IntegrationTimeMs: 2, Swir1Gain: 1024, Swir2Gain: 2048, Splice1Wavelength: 2, Splice2Wavelength: 3}
	_ = Normalize(spectrum, m)
	require.Equal(t, Spectrum{1, 1, 1, 1}, spectrum)
}

func TestReflectanceZeroReferenceYieldsZero(t *testing.T) {
	m := Metadata{Channels: 3, IntegrationTimeMs: 1, Swir1Gain: 2048, Swir2Gain: 2048, Splice1Wavelength: 3, Splice2Wavelength: 3}
	spectrum := Spectrum{1, 2, 3}
	reference := Spectrum{0, 0, 0}

	got := Reflectance(spectrum, reference, m)
	require.Equal(t, Spectrum{0, 0, 0}, got)
}

func TestDerivative1AndDerivative2(t *testing.T) {
	s := Spectrum{1, 2, 4, 8}
	d1 := Derivative1(s)
	require.Len(t, d1, 4)

	d2 := Derivative2(s)
	require.Len(t, d2, 4)
}
