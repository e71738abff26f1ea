package asd

import (
	"bytes"
	"time"
)

// ReferenceFileHeader carries the white-reference capture metadata: when it
// was reference-corrected, when the reference spectrum itself was taken,
// and a free-text description. Present from v2 onward.
type ReferenceFileHeader struct {
	Flag          bool
	ReferenceTime time.Time
	SpectrumTime  time.Time
	Description   string
}

func decodeReferenceFileHeader(buf []byte, offset int) (ReferenceFileHeader, int, error) {
	var h ReferenceFileHeader
	var err error

	h.Flag, offset, err = readBool(buf, offset, "reference header flag")
	if err != nil {
		return h, offset, err
	}
	h.ReferenceTime, offset, err = readEpoch64(buf, offset, "reference header reference time")
	if err != nil {
		return h, offset, err
	}
	h.SpectrumTime, offset, err = readEpoch64(buf, offset, "reference header spectrum time")
	if err != nil {
		return h, offset, err
	}
	h.Description, offset, err = readBstr(buf, offset, "reference header description")
	if err != nil {
		return h, offset, err
	}
	return h, offset, nil
}

func encodeReferenceFileHeader(buf *bytes.Buffer, h ReferenceFileHeader) {
	writeBool(buf, h.Flag)
	writeEpoch64(buf, h.ReferenceTime)
	writeEpoch64(buf, h.SpectrumTime)
	writeBstr(buf, h.Description)
}

// ReferenceData is the white-reference Spectrum, recorded against the same
// channel count as the primary Metadata. Present from v2 onward.
type ReferenceData struct {
	Spectrum Spectrum
}

func decodeReferenceData(buf []byte, offset int, channels uint16) (ReferenceData, int, error) {
	spec, offset, err := decodeSpectrum(buf, offset, channels, "reference data")
	if err != nil {
		return ReferenceData{}, offset, err
	}
	return ReferenceData{Spectrum: spec}, offset, nil
}

func encodeReferenceData(buf *bytes.Buffer, d ReferenceData) {
	buf.Write(encodeSpectrum(d.Spectrum))
}
