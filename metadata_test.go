package asd

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleMetadata() Metadata {
	var m Metadata
	m.Comments = "field calibration run"
	m.When = time.Date(2022, time.June, 1, 12, 0, 0, 0, time.UTC)
	m.ProgramVersion = 6
	m.FileVersionByte = 8
	m.DataType = DataTypeRadiance
	m.ReferenceTime = time.Unix(1_650_000_000, 0)
	m.DarkTime = time.Unix(1_650_000_001, 0)
	m.Channel1Wavelength = 350.0
	m.WavelengthStep = 1.0
	m.DataFormat = DataFormatFloat64
	m.Channels = 2151
	m.IntegrationTimeMs = 17
	m.InstrumentNum = 1234
	m.Instrument = InstrumentFSVNIR
	m.Swir1Gain = 1024
	m.Swir2Gain = 2048
	m.Splice1Wavelength = 1000
	m.Splice2Wavelength = 1800
	m.Flags2 = int8(0b00010110)
	return m
}

func TestMetadataRoundTrip(t *testing.T) {
	in := sampleMetadata()

	raw, err := encodeMetadata(in)
	require.NoError(t, err)
	require.Equal(t, metadataSize, len(raw))

	out, n, err := decodeMetadata(raw, 0)
	require.NoError(t, err)
	require.Equal(t, metadataSize, n)

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("metadata round trip mismatch (-in +out):\n%s", diff)
	}
}

func TestMetadataTruncated(t *testing.T) {
	_, _, err := decodeMetadata(make([]byte, 10), 0)
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestMetadataGPSAndSmartDetector(t *testing.T) {
	m := sampleMetadata()
	gps, err := m.GPS()
	require.NoError(t, err)
	require.Zero(t, gps.Latitude)

	sd, err := m.SmartDetectorInfo()
	require.NoError(t, err)
	require.Zero(t, sd.SerialNumber)
}
