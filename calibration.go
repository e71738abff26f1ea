package asd

import (
	"bytes"
	"encoding/binary"
)

// CalibrationSeriesType tags a CalibrationHeader entry with the slot it
// routes to.
type CalibrationSeriesType byte

const (
	CalibrationAbsolute   CalibrationSeriesType = 0
	CalibrationBase       CalibrationSeriesType = 1
	CalibrationLamp       CalibrationSeriesType = 2
	CalibrationFiberOptic CalibrationSeriesType = 3
)

// CalibrationEntry is one fixed 30-byte header row: a type tag, a
// 20-byte null-padded name, an integration time in milliseconds, the
// two SWIR gains used by normalization, and one unused trailing byte
// (written as zero).
type CalibrationEntry struct {
	Type          CalibrationSeriesType
	Name          string
	IntegrationMs int32
	Swir1Gain     int16
	Swir2Gain     int16
}

const calibrationEntrySize = 30

// CalibrationHeader is the leading count byte plus up to 127 fixed
// entries. Present from v7 onward.
type CalibrationHeader struct {
	Entries []CalibrationEntry
}

// CalibrationSeries holds the four typed spectrum slots routed to by
// CalibrationHeader entries, keyed by CalibrationEntry.Type. A later
// header entry of a type already seen overwrites the earlier slot, per
// the version gate's documented last-one-wins rule.
type CalibrationSeries struct {
	Absolute   Spectrum
	Base       Spectrum
	Lamp       Spectrum
	FiberOptic Spectrum
}

func decodeCalibrationHeader(buf []byte, offset int) (CalibrationHeader, int, error) {
	var h CalibrationHeader
	const section = "calibration header"

	if offset+1 > len(buf) {
		return h, offset, truncated(section, offset, 1, len(buf))
	}
	n := int(buf[offset])
	offset++

	h.Entries = make([]CalibrationEntry, n)
	for i := 0; i < n; i++ {
		if offset+calibrationEntrySize > len(buf) {
			return h, offset, truncated(section, offset, calibrationEntrySize, len(buf))
		}
		e := CalibrationEntry{}
		e.Type = CalibrationSeriesType(buf[offset])
		e.Name = lossyUTF8(bytes.TrimRight(buf[offset+1:offset+21], "\x00"))
		e.IntegrationMs = int32(binary.LittleEndian.Uint32(buf[offset+21 : offset+25]))
		e.Swir1Gain = int16(binary.LittleEndian.Uint16(buf[offset+25 : offset+27]))
		e.Swir2Gain = int16(binary.LittleEndian.Uint16(buf[offset+27 : offset+29]))
		h.Entries[i] = e
		offset += calibrationEntrySize
	}
	return h, offset, nil
}

func encodeCalibrationHeader(buf *bytes.Buffer, h CalibrationHeader) {
	buf.WriteByte(byte(len(h.Entries)))
	for _, e := range h.Entries {
		buf.WriteByte(byte(e.Type))
		name := make([]byte, 20)
		copy(name, []byte(e.Name))
		buf.Write(name)
		binary.Write(buf, binary.LittleEndian, e.IntegrationMs)
		binary.Write(buf, binary.LittleEndian, e.Swir1Gain)
		binary.Write(buf, binary.LittleEndian, e.Swir2Gain)
		buf.WriteByte(0) // pad the 29 bytes of fields to calibrationEntrySize
	}
}

// decodeCalibrationSeries reads one Spectrum block per header entry, in
// header order, and routes each into the slot named by the entry's type.
func decodeCalibrationSeries(buf []byte, offset int, header CalibrationHeader, channels uint16) (CalibrationSeries, int, error) {
	var s CalibrationSeries
	var err error
	for _, e := range header.Entries {
		var spec Spectrum
		spec, offset, err = decodeSpectrum(buf, offset, channels, "calibration series")
		if err != nil {
			return s, offset, err
		}
		switch e.Type {
		case CalibrationAbsolute:
			s.Absolute = spec
		case CalibrationBase:
			s.Base = spec
		case CalibrationLamp:
			s.Lamp = spec
		case CalibrationFiberOptic:
			s.FiberOptic = spec
		default:
			return s, offset, invalidEncoding("calibration series", "unrecognised entry type")
		}
	}
	return s, offset, nil
}

// encodeCalibrationSeries writes one Spectrum block per header entry, in
// header order, drawing from the slot named by the entry's type.
func encodeCalibrationSeries(buf *bytes.Buffer, header CalibrationHeader, s CalibrationSeries) error {
	for _, e := range header.Entries {
		var spec Spectrum
		switch e.Type {
		case CalibrationAbsolute:
			spec = s.Absolute
		case CalibrationBase:
			spec = s.Base
		case CalibrationLamp:
			spec = s.Lamp
		case CalibrationFiberOptic:
			spec = s.FiberOptic
		default:
			return invalidEncoding("calibration series", "unrecognised entry type")
		}
		buf.Write(encodeSpectrum(spec))
	}
	return nil
}
