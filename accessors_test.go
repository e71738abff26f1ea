package asd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhiteReferenceRequiresVersion2(t *testing.T) {
	f := &AsdFile{Version: Version1, Metadata: sampleMetadata()}
	_, err := f.WhiteReference()
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestWhiteReferenceReturnsNormalizedReference(t *testing.T) {
	f := &AsdFile{Version: Version2, Metadata: sampleMetadata()}
	f.Metadata.Channels = 3
	f.Metadata.IntegrationTimeMs = 2
	f.Metadata.Splice1Wavelength = 3
	f.Metadata.Splice2Wavelength = 3
	f.ReferenceData = ReferenceData{Spectrum: Spectrum{2, 4, 6}}
	f.markOK(sectionReferenceData)

	got, err := f.WhiteReference()
	require.NoError(t, err)
	require.Equal(t, Spectrum{1, 2, 3}, got)
}

func TestReflectanceAccessorGates(t *testing.T) {
	f := &AsdFile{Version: Version1, Metadata: sampleMetadata()}
	_, err := f.Reflectance()
	require.ErrorIs(t, err, ErrInvariantViolation)

	f.Version = Version2
	f.Metadata.DataType = DataTypeRaw
	_, err = f.Reflectance()
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestRadianceAccessorRequiresCalibration(t *testing.T) {
	f := &AsdFile{Version: Version7, Metadata: sampleMetadata()}
	f.Metadata.DataType = DataTypeRadiance
	_, err := f.Radiance()
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestSaturationErrorsAccessor(t *testing.T) {
	f := &AsdFile{Metadata: sampleMetadata()}
	got := f.SaturationErrors()
	require.Equal(t, []SaturationFlag{
		FlagSWIR1Saturation,
		FlagSWIR2Saturation,
		FlagSWIR1TEC,
	}, got)
}
