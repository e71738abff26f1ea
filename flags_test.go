package asd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSaturationFlags(t *testing.T) {
	flags2 := int8(0b00010110)
	got := DecodeSaturationFlags(flags2)
	require.Equal(t, []SaturationFlag{
		FlagSWIR1Saturation,
		FlagSWIR2Saturation,
		FlagSWIR1TEC,
	}, got)
}

func TestHasSaturationFlag(t *testing.T) {
	flags2 := int8(0b00000001)
	require.True(t, HasSaturationFlag(flags2, FlagVNIRSaturation))
	require.False(t, HasSaturationFlag(flags2, FlagSWIR1Saturation))
}

func TestDecodeSaturationFlagsNone(t *testing.T) {
	require.Empty(t, DecodeSaturationFlags(0))
}
