package asd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeFileVersion(t *testing.T) {
	cases := []struct {
		magic string
		want  FileVersion
	}{
		{"ASD", Version1},
		{"as2", Version2},
		{"as7", Version7},
		{"as8", Version8},
	}
	for _, c := range cases {
		v, n, err := decodeFileVersion([]byte(c.magic))
		require.NoError(t, err)
		require.Equal(t, c.want, v)
		require.Equal(t, 3, n)
	}
}

func TestDecodeFileVersionUnknown(t *testing.T) {
	_, _, err := decodeFileVersion([]byte("xyz"))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestEncodeFileVersionRoundTrip(t *testing.T) {
	for v := Version1; v <= Version8; v++ {
		b, err := encodeFileVersion(v)
		require.NoError(t, err)
		got, _, err := decodeFileVersion(b)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestFileVersionAtLeast(t *testing.T) {
	require.True(t, Version8.AtLeast(Version2))
	require.False(t, Version1.AtLeast(Version2))
	require.True(t, Version7.AtLeast(Version7))
}
