package asd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalibrationHeaderRoundTrip(t *testing.T) {
	in := CalibrationHeader{
		Entries: []CalibrationEntry{
			{Type: CalibrationBase, Name: "base", IntegrationMs: 17, Swir1Gain: 1024, Swir2Gain: 2048},
			{Type: CalibrationLamp, Name: "lamp", IntegrationMs: 17, Swir1Gain: 1024, Swir2Gain: 2048},
			{Type: CalibrationFiberOptic, Name: "fiber", IntegrationMs: 17, Swir1Gain: 1024, Swir2Gain: 2048},
		},
	}
	buf := new(bytes.Buffer)
	encodeCalibrationHeader(buf, in)
	require.Equal(t, 1+3*calibrationEntrySize, buf.Len())

	out, n, err := decodeCalibrationHeader(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	require.Len(t, out.Entries, 3)
	require.Equal(t, "base", out.Entries[0].Name)
	require.Equal(t, CalibrationLamp, out.Entries[1].Type)
}

func TestCalibrationSeriesHeaderOrderAndRouting(t *testing.T) {
	header := CalibrationHeader{
		Entries: []CalibrationEntry{
			{Type: CalibrationBase},
			{Type: CalibrationLamp},
			{Type: CalibrationFiberOptic},
		},
	}
	series := CalibrationSeries{
		Base:       Spectrum{1, 1, 1},
		Lamp:       Spectrum{2, 2, 2},
		FiberOptic: Spectrum{3, 3, 3},
	}

	buf := new(bytes.Buffer)
	require.NoError(t, encodeCalibrationSeries(buf, header, series))
	require.Equal(t, 3*3*8, buf.Len())

	out, n, err := decodeCalibrationSeries(buf.Bytes(), 0, header, 3)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	require.Equal(t, series.Base, out.Base)
	require.Equal(t, series.Lamp, out.Lamp)
	require.Equal(t, series.FiberOptic, out.FiberOptic)
}

func TestCalibrationSeriesLastEntryOfTypeWins(t *testing.T) {
	header := CalibrationHeader{
		Entries: []CalibrationEntry{
			{Type: CalibrationAbsolute},
			{Type: CalibrationAbsolute},
		},
	}
	series := CalibrationSeries{Absolute: Spectrum{9, 9}}

	// The first Absolute block differs from the second, so only a
	// last-one-wins decode yields the second block's values.
	buf := new(bytes.Buffer)
	buf.Write(encodeSpectrum(Spectrum{1, 1}))
	require.NoError(t, encodeCalibrationSeries(buf, CalibrationHeader{Entries: header.Entries[1:]}, series))

	out, _, err := decodeCalibrationSeries(buf.Bytes(), 0, header, 2)
	require.NoError(t, err)
	require.Equal(t, Spectrum{9, 9}, out.Absolute)
}
