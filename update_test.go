package asd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUpdateChannel1WavelengthRecomputesAxis checks that after updating
// the first-channel wavelength the derived axis starts at the new value
// and still has one entry per channel.
func TestUpdateChannel1WavelengthRecomputesAxis(t *testing.T) {
	f := &AsdFile{Version: Version1, Metadata: sampleMetadata()}

	require.NoError(t, f.Update("channel1Wavelength", float32(400.0)))

	w := f.Wavelengths()
	require.Len(t, w, int(f.Metadata.Channels))
	require.Equal(t, 400.0, w[0])
	require.Equal(t, 401.0, w[1])
}

func TestUpdateUnknownFieldRejected(t *testing.T) {
	f := &AsdFile{Metadata: sampleMetadata()}
	err := f.Update("notAField", 1)
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestUpdateWrongTypeRejected(t *testing.T) {
	f := &AsdFile{Metadata: sampleMetadata()}
	err := f.Update("channels", "lots")
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestUpdateCommentsTooLongRejected(t *testing.T) {
	f := &AsdFile{Metadata: sampleMetadata()}
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	err := f.Update("comments", string(long))
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestUpdateTrailer(t *testing.T) {
	f := &AsdFile{Version: Version1, Metadata: sampleMetadata()}
	require.False(t, f.HasTrailer)
	require.NoError(t, f.Update("hasTrailer", true))
	require.True(t, f.HasTrailer)
}
