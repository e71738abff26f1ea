package asd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpectrumRoundTrip(t *testing.T) {
	in := Spectrum{1.0, -2.5, 3.14159, 0, 1e10}
	raw := encodeSpectrum(in)
	require.Equal(t, len(in)*8, len(raw))

	out, n, err := decodeSpectrum(raw, 0, uint16(len(in)), "test")
	require.NoError(t, err)
	require.Equal(t, len(raw), n)
	require.Equal(t, in, out)
}

func TestSpectrumTruncated(t *testing.T) {
	_, _, err := decodeSpectrum([]byte{1, 2, 3}, 0, 5, "test")
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestSpectrumCloneIsIndependent(t *testing.T) {
	in := Spectrum{1, 2, 3}
	out := in.Clone()
	out[0] = 99
	require.Equal(t, float64(1), in[0])
}
