package asd

import "fmt"

// SaturationFlag identifies one bit of Metadata.Flags2.
type SaturationFlag uint8

const (
	FlagVNIRSaturation  SaturationFlag = 0x01
	FlagSWIR1Saturation SaturationFlag = 0x02
	FlagSWIR2Saturation SaturationFlag = 0x04
	FlagSWIR1TEC        SaturationFlag = 0x08
	FlagSWIR2TEC        SaturationFlag = 0x10
)

var saturationFlagNames = map[SaturationFlag]string{
	FlagVNIRSaturation:  "VNIR saturation",
	FlagSWIR1Saturation: "SWIR1 saturation",
	FlagSWIR2Saturation: "SWIR2 saturation",
	FlagSWIR1TEC:        "SWIR1 TEC alarm",
	FlagSWIR2TEC:        "SWIR2 TEC alarm",
}

// String names a single flag bit; unrecognised bits render as their hex
// value.
func (s SaturationFlag) String() string {
	if name, ok := saturationFlagNames[s]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", uint8(s))
}

// DecodeSaturationFlags returns the subset of SaturationFlag bits set in
// Metadata.Flags2, in a fixed, ascending bit order.
func DecodeSaturationFlags(flags2 int8) []SaturationFlag {
	mask := uint8(flags2)
	all := []SaturationFlag{
		FlagVNIRSaturation, FlagSWIR1Saturation, FlagSWIR2Saturation,
		FlagSWIR1TEC, FlagSWIR2TEC,
	}
	var set []SaturationFlag
	for _, f := range all {
		if mask&uint8(f) != 0 {
			set = append(set, f)
		}
	}
	return set
}

// HasSaturationFlag reports whether a specific flag bit is set.
func HasSaturationFlag(flags2 int8, flag SaturationFlag) bool {
	return uint8(flags2)&uint8(flag) != 0
}
