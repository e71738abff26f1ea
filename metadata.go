package asd

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"time"
)

// DataType is the measurement kind recorded in Metadata.DataType.
type DataType uint8

const (
	DataTypeRaw DataType = iota
	DataTypeReflectance
	DataTypeRadiance
	DataTypeNone
	DataTypeIrradiance
	DataTypeQualityIndex
	DataTypeTransmittance
	DataTypeUnknown
	DataTypeAbsorbance
)

// DataFormat is the on-disk representation of the spectrum's samples
// as originally recorded by the instrument (the codec always decodes
// Spectrum as float64 regardless of this tag; it is descriptive only).
type DataFormat uint8

const (
	DataFormatFloat32 DataFormat = iota
	DataFormatInt32
	DataFormatFloat64
	DataFormatUnknown
)

// InstrumentType identifies the spectrometer model that recorded the file.
type InstrumentType uint8

const (
	InstrumentUnknown InstrumentType = iota
	InstrumentPSII
	InstrumentLSVNIR
	InstrumentFSVNIR
	InstrumentFSFR
	InstrumentFSNIR
	InstrumentCHEM
	InstrumentFSFRUnattended
)

// metadataSize is the exact, invariant on-disk length of the Metadata
// record (spec invariant: the parser advances offset by this amount
// regardless of field-level interpretation).
const metadataSize = 481

// Metadata is the fixed-width record immediately following the version
// bytes. Field order and widths mirror the on-disk layout byte for byte;
// OldDarkCurrentCount/OldRefCount/OldSampleCount and ApplicationTag are
// legacy single-byte fields retained by the format alongside their
// modern replacements (DarkCurrentCount/RefCount/SampleCount and the
// 128-byte Application opaque block) rather than superseding them.
type Metadata struct {
	Comments string // free text, stored null-padded to 157 bytes on disk

	When               time.Time
	DaylightSavings    int16
	ProgramVersion     int8
	FileVersionByte    int8
	ITime              int8
	DarkCorrected      int8
	DarkTime           time.Time
	DataType           DataType
	ReferenceTime      time.Time
	Channel1Wavelength float32
	WavelengthStep     float32
	DataFormat         DataFormat

	OldDarkCurrentCount int8
	OldRefCount         int8
	OldSampleCount      int8
	ApplicationTag      int8

	Channels uint16

	Application [128]byte // opaque application block
	GPSBlock    [56]byte  // opaque GPS block, see Metadata.GPS

	IntegrationTimeMs      uint32
	FO                     int16
	DarkCurrentCorrection  int16
	CalibrationSeriesIndex uint16
	InstrumentNum          uint16

	YMin float32
	YMax float32
	XMin float32
	XMax float32

	IPNumBits int16
	XMode     int8

	Flags1 int8
	Flags2 int8
	Flags3 int8
	Flags4 int8

	DarkCurrentCount uint16
	RefCount         uint16
	SampleCount      uint16

	Instrument InstrumentType

	CalBulbID uint32

	Swir1Gain   uint16
	Swir2Gain   uint16
	Swir1Offset uint16
	Swir2Offset uint16

	Splice1Wavelength float32
	Splice2Wavelength float32

	SmartDetector [27]byte // opaque smart-detector block, see Metadata.SmartDetectorInfo

	Spare1, Spare2, Spare3, Spare4, Spare5 int8
}

func decodeMetadata(buf []byte, offset int) (Metadata, int, error) {
	if offset+metadataSize > len(buf) {
		return Metadata{}, offset, truncated("metadata", offset, metadataSize, len(buf))
	}
	start := offset
	var m Metadata

	m.Comments = strings.Trim(lossyUTF8(buf[offset:offset+157]), "\x00")
	offset += 157

	when, dst, next, err := readWhen(buf, offset, "metadata.when")
	if err != nil {
		return Metadata{}, start, err
	}
	m.When, m.DaylightSavings = when, dst
	offset = next

	m.ProgramVersion = int8(buf[offset])
	m.FileVersionByte = int8(buf[offset+1])
	m.ITime = int8(buf[offset+2])
	m.DarkCorrected = int8(buf[offset+3])
	offset += 4

	darkTime, next, err := readEpoch32(buf, offset, "metadata.darkTime")
	if err != nil {
		return Metadata{}, start, err
	}
	m.DarkTime = darkTime
	offset = next

	m.DataType = DataType(buf[offset])
	offset++

	refTime, next, err := readEpoch32(buf, offset, "metadata.referenceTime")
	if err != nil {
		return Metadata{}, start, err
	}
	m.ReferenceTime = refTime
	offset = next

	m.Channel1Wavelength = readFloat32(buf, offset)
	offset += 4
	m.WavelengthStep = readFloat32(buf, offset)
	offset += 4
	m.DataFormat = DataFormat(buf[offset])
	offset++

	m.OldDarkCurrentCount = int8(buf[offset])
	m.OldRefCount = int8(buf[offset+1])
	m.OldSampleCount = int8(buf[offset+2])
	m.ApplicationTag = int8(buf[offset+3])
	offset += 4

	m.Channels = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2

	copy(m.Application[:], buf[offset:offset+128])
	offset += 128
	copy(m.GPSBlock[:], buf[offset:offset+56])
	offset += 56

	m.IntegrationTimeMs = binary.LittleEndian.Uint32(buf[offset : offset+4])
	offset += 4
	m.FO = readInt16(buf, offset)
	offset += 2
	m.DarkCurrentCorrection = readInt16(buf, offset)
	offset += 2
	m.CalibrationSeriesIndex = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2
	m.InstrumentNum = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2

	m.YMin = readFloat32(buf, offset)
	offset += 4
	m.YMax = readFloat32(buf, offset)
	offset += 4
	m.XMin = readFloat32(buf, offset)
	offset += 4
	m.XMax = readFloat32(buf, offset)
	offset += 4

	m.IPNumBits = readInt16(buf, offset)
	offset += 2
	m.XMode = int8(buf[offset])
	offset++

	m.Flags1 = int8(buf[offset])
	m.Flags2 = int8(buf[offset+1])
	m.Flags3 = int8(buf[offset+2])
	m.Flags4 = int8(buf[offset+3])
	offset += 4

	m.DarkCurrentCount = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2
	m.RefCount = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2
	m.SampleCount = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2

	m.Instrument = InstrumentType(buf[offset])
	offset++

	m.CalBulbID = binary.LittleEndian.Uint32(buf[offset : offset+4])
	offset += 4

	m.Swir1Gain = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2
	m.Swir2Gain = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2
	m.Swir1Offset = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2
	m.Swir2Offset = binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2

	m.Splice1Wavelength = readFloat32(buf, offset)
	offset += 4
	m.Splice2Wavelength = readFloat32(buf, offset)
	offset += 4

	copy(m.SmartDetector[:], buf[offset:offset+27])
	offset += 27

	m.Spare1 = int8(buf[offset])
	m.Spare2 = int8(buf[offset+1])
	m.Spare3 = int8(buf[offset+2])
	m.Spare4 = int8(buf[offset+3])
	m.Spare5 = int8(buf[offset+4])
	offset += 5

	if offset-start != metadataSize {
		return Metadata{}, start, invariant("metadata codec drifted from 481 bytes")
	}
	return m, offset, nil
}

func encodeMetadata(m Metadata) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(metadataSize)

	var comments [157]byte
	copy(comments[:], m.Comments)
	buf.Write(comments[:])

	writeWhen(buf, m.When, m.DaylightSavings)

	buf.WriteByte(byte(m.ProgramVersion))
	buf.WriteByte(byte(m.FileVersionByte))
	buf.WriteByte(byte(m.ITime))
	buf.WriteByte(byte(m.DarkCorrected))

	writeEpoch32(buf, m.DarkTime)

	buf.WriteByte(byte(m.DataType))

	writeEpoch32(buf, m.ReferenceTime)

	writeFloat32(buf, m.Channel1Wavelength)
	writeFloat32(buf, m.WavelengthStep)
	buf.WriteByte(byte(m.DataFormat))

	buf.WriteByte(byte(m.OldDarkCurrentCount))
	buf.WriteByte(byte(m.OldRefCount))
	buf.WriteByte(byte(m.OldSampleCount))
	buf.WriteByte(byte(m.ApplicationTag))

	binary.Write(buf, binary.LittleEndian, m.Channels)

	buf.Write(m.Application[:])
	buf.Write(m.GPSBlock[:])

	binary.Write(buf, binary.LittleEndian, m.IntegrationTimeMs)
	binary.Write(buf, binary.LittleEndian, m.FO)
	binary.Write(buf, binary.LittleEndian, m.DarkCurrentCorrection)
	binary.Write(buf, binary.LittleEndian, m.CalibrationSeriesIndex)
	binary.Write(buf, binary.LittleEndian, m.InstrumentNum)

	writeFloat32(buf, m.YMin)
	writeFloat32(buf, m.YMax)
	writeFloat32(buf, m.XMin)
	writeFloat32(buf, m.XMax)

	binary.Write(buf, binary.LittleEndian, m.IPNumBits)
	buf.WriteByte(byte(m.XMode))

	buf.WriteByte(byte(m.Flags1))
	buf.WriteByte(byte(m.Flags2))
	buf.WriteByte(byte(m.Flags3))
	buf.WriteByte(byte(m.Flags4))

	binary.Write(buf, binary.LittleEndian, m.DarkCurrentCount)
	binary.Write(buf, binary.LittleEndian, m.RefCount)
	binary.Write(buf, binary.LittleEndian, m.SampleCount)

	buf.WriteByte(byte(m.Instrument))

	binary.Write(buf, binary.LittleEndian, m.CalBulbID)

	binary.Write(buf, binary.LittleEndian, m.Swir1Gain)
	binary.Write(buf, binary.LittleEndian, m.Swir2Gain)
	binary.Write(buf, binary.LittleEndian, m.Swir1Offset)
	binary.Write(buf, binary.LittleEndian, m.Swir2Offset)

	writeFloat32(buf, m.Splice1Wavelength)
	writeFloat32(buf, m.Splice2Wavelength)

	buf.Write(m.SmartDetector[:])

	buf.WriteByte(byte(m.Spare1))
	buf.WriteByte(byte(m.Spare2))
	buf.WriteByte(byte(m.Spare3))
	buf.WriteByte(byte(m.Spare4))
	buf.WriteByte(byte(m.Spare5))

	if buf.Len() != metadataSize {
		return nil, invariant("encoded metadata is not 481 bytes")
	}
	return buf.Bytes(), nil
}

// GPSData is the instrument's last GPS fix, decoded on demand from
// Metadata.GPSBlock (56 bytes: five float64, one int16, five int8, one
// int16, a 5-byte satellites block, and a 2-byte filler).
type GPSData struct {
	TrueHeading  float64
	Speed        float64
	Latitude     float64
	Longitude    float64
	Altitude     float64
	Flags        int16
	HardwareMode int8
	UTCSeconds   int8
	UTCMinutes   int8
	UTCHours     int8
	Flags1       int8
	Flags2       int16
	Satellites   [5]int8
	Filler       [2]int8
}

// GPS decodes the opaque 56-byte GPS block carried in the Metadata
// record.
func (m Metadata) GPS() (GPSData, error) {
	b := m.GPSBlock[:]
	if len(b) != 56 {
		return GPSData{}, invariant("GPS block is not 56 bytes")
	}
	var g GPSData
	g.TrueHeading = readFloat64(b, 0)
	g.Speed = readFloat64(b, 8)
	g.Latitude = readFloat64(b, 16)
	g.Longitude = readFloat64(b, 24)
	g.Altitude = readFloat64(b, 32)
	g.Flags = readInt16(b, 40)
	g.HardwareMode = int8(b[42])
	g.UTCSeconds = int8(b[43])
	g.UTCMinutes = int8(b[44])
	g.UTCHours = int8(b[45])
	g.Flags1 = int8(b[46])
	g.Flags2 = readInt16(b, 47)
	for i := 0; i < 5; i++ {
		g.Satellites[i] = int8(b[49+i])
	}
	g.Filler[0] = int8(b[54])
	g.Filler[1] = int8(b[55])
	return g, nil
}

// SmartDetector is the instrument's smart-detector telemetry, decoded
// on demand from Metadata.SmartDetector (27 bytes: int32, three float32,
// int16, int8, two float32).
type SmartDetector struct {
	SerialNumber int32
	Signal       float32
	Dark         float32
	Ref          float32
	Status       int16
	Avg          int8
	Humidity     float32
	Temperature  float32
}

// SmartDetectorInfo decodes the opaque 27-byte smart-detector block
// carried in the Metadata record.
func (m Metadata) SmartDetectorInfo() (SmartDetector, error) {
	b := m.SmartDetector[:]
	if len(b) != 27 {
		return SmartDetector{}, invariant("smart detector block is not 27 bytes")
	}
	var s SmartDetector
	s.SerialNumber = int32(binary.LittleEndian.Uint32(b[0:4]))
	s.Signal = readFloat32(b, 4)
	s.Dark = readFloat32(b, 8)
	s.Ref = readFloat32(b, 12)
	s.Status = readInt16(b, 16)
	s.Avg = int8(b[18])
	s.Humidity = readFloat32(b, 19)
	s.Temperature = readFloat32(b, 23)
	return s, nil
}

func readInt16(b []byte, offset int) int16 {
	return int16(binary.LittleEndian.Uint16(b[offset : offset+2]))
}

func readFloat32(b []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[offset : offset+4]))
}

func writeFloat32(buf *bytes.Buffer, f float32) {
	binary.Write(buf, binary.LittleEndian, math.Float32bits(f))
}

func readFloat64(b []byte, offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b[offset : offset+8]))
}

func writeFloat64(buf *bytes.Buffer, f float64) {
	binary.Write(buf, binary.LittleEndian, math.Float64bits(f))
}
