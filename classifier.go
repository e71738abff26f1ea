package asd

import (
	"bytes"
	"encoding/binary"
)

// ClassifierModelType enumerates the model types a ClassifierData record
// may declare in yModelType.
type ClassifierModelType byte

const (
	ModelSAM          ClassifierModelType = 0
	ModelGalactic     ClassifierModelType = 1
	ModelCAMOPredict  ClassifierModelType = 2
	ModelCAMOClassify ClassifierModelType = 3
	ModelPCAZ         ClassifierModelType = 4
	ModelInfoMetrix   ClassifierModelType = 5
)

// ClassifierData describes a classification model run against the
// spectrum: two leading type bytes, twenty descriptive strings, and an
// optional array of Constituent results. Present from v6 onward.
type ClassifierData struct {
	YCode        byte
	YModelType   ClassifierModelType
	Title        string
	Subtitle     string
	ProductName  string
	Vendor       string
	LotNumber    string
	Sample       string
	ModelName    string
	Operator     string
	DateTime     string
	Instrument   string
	SerialNumber string
	DisplayMode  string
	Comments     string
	Units        string
	Filename     string
	Username     string
	Reserved1    string
	Reserved2    string
	Reserved3    string
	Reserved4    string
	Constituents []Constituent
}

// Constituent is a single named quantitative classifier result. Field
// order mirrors the on-disk layout: a Mahalanobis distance and its
// limit, a concentration and its limit, an F-ratio, a residual and its
// limit, a score and its limit, a model type tag, and two reserved
// doubles.
type Constituent struct {
	ConstituentName    string
	PassFail           string
	MDistance          float64
	MDistanceLimit     float64
	Concentration      float64
	ConcentrationLimit float64
	FRatio             float64
	Residual           float64
	ResidualLimit      float64
	Scores             float64
	ScoresLimit        float64
	ModelType          int32
	Reserved1          float64
	Reserved2          float64
}

func decodeClassifierData(buf []byte, offset int) (ClassifierData, int, error) {
	var c ClassifierData
	var err error
	const section = "classifier data"

	if offset+2 > len(buf) {
		return c, offset, truncated(section, offset, 2, len(buf))
	}
	c.YCode = buf[offset]
	c.YModelType = ClassifierModelType(buf[offset+1])
	offset += 2

	strs := []*string{
		&c.Title, &c.Subtitle, &c.ProductName, &c.Vendor, &c.LotNumber,
		&c.Sample, &c.ModelName, &c.Operator, &c.DateTime, &c.Instrument,
		&c.SerialNumber, &c.DisplayMode, &c.Comments, &c.Units, &c.Filename,
		&c.Username, &c.Reserved1, &c.Reserved2, &c.Reserved3, &c.Reserved4,
	}
	for _, s := range strs {
		*s, offset, err = readBstr(buf, offset, section)
		if err != nil {
			return c, offset, err
		}
	}

	if offset+2 > len(buf) {
		return c, offset, truncated(section, offset, 2, len(buf))
	}
	count := binary.LittleEndian.Uint16(buf[offset : offset+2])
	offset += 2

	if count == 0 {
		if offset+2 > len(buf) {
			return c, offset, truncated(section, offset, 2, len(buf))
		}
		offset += 2 // terminator
		return c, offset, nil
	}

	if offset+arrayPreambleSize > len(buf) {
		return c, offset, truncated(section, offset, arrayPreambleSize, len(buf))
	}
	offset += arrayPreambleSize

	c.Constituents = make([]Constituent, count)
	for i := range c.Constituents {
		c.Constituents[i], offset, err = decodeConstituent(buf, offset)
		if err != nil {
			return c, offset, err
		}
	}
	return c, offset, nil
}

func decodeConstituent(buf []byte, offset int) (Constituent, int, error) {
	var k Constituent
	var err error
	const section = "constituent"

	k.ConstituentName, offset, err = readBstr(buf, offset, section)
	if err != nil {
		return k, offset, err
	}
	k.PassFail, offset, err = readBstr(buf, offset, section)
	if err != nil {
		return k, offset, err
	}

	doubles := []*float64{
		&k.MDistance, &k.MDistanceLimit, &k.Concentration, &k.ConcentrationLimit,
		&k.FRatio, &k.Residual, &k.ResidualLimit, &k.Scores, &k.ScoresLimit,
	}
	for _, d := range doubles {
		if offset+8 > len(buf) {
			return k, offset, truncated(section, offset, 8, len(buf))
		}
		*d = readFloat64(buf, offset)
		offset += 8
	}

	if offset+4 > len(buf) {
		return k, offset, truncated(section, offset, 4, len(buf))
	}
	k.ModelType = int32(binary.LittleEndian.Uint32(buf[offset : offset+4]))
	offset += 4

	for _, d := range []*float64{&k.Reserved1, &k.Reserved2} {
		if offset+8 > len(buf) {
			return k, offset, truncated(section, offset, 8, len(buf))
		}
		*d = readFloat64(buf, offset)
		offset += 8
	}
	return k, offset, nil
}

func encodeClassifierData(buf *bytes.Buffer, c ClassifierData) {
	buf.WriteByte(c.YCode)
	buf.WriteByte(byte(c.YModelType))

	strs := []string{
		c.Title, c.Subtitle, c.ProductName, c.Vendor, c.LotNumber,
		c.Sample, c.ModelName, c.Operator, c.DateTime, c.Instrument,
		c.SerialNumber, c.DisplayMode, c.Comments, c.Units, c.Filename,
		c.Username, c.Reserved1, c.Reserved2, c.Reserved3, c.Reserved4,
	}
	for _, s := range strs {
		writeBstr(buf, s)
	}

	binary.Write(buf, binary.LittleEndian, uint16(len(c.Constituents)))
	if len(c.Constituents) == 0 {
		binary.Write(buf, binary.LittleEndian, uint16(0))
		return
	}
	writeArrayPreamble(buf, int32(len(c.Constituents)))
	for _, k := range c.Constituents {
		encodeConstituent(buf, k)
	}
}

func encodeConstituent(buf *bytes.Buffer, k Constituent) {
	writeBstr(buf, k.ConstituentName)
	writeBstr(buf, k.PassFail)
	for _, d := range []float64{
		k.MDistance, k.MDistanceLimit, k.Concentration, k.ConcentrationLimit,
		k.FRatio, k.Residual, k.ResidualLimit, k.Scores, k.ScoresLimit,
	} {
		writeFloat64(buf, d)
	}
	binary.Write(buf, binary.LittleEndian, k.ModelType)
	writeFloat64(buf, k.Reserved1)
	writeFloat64(buf, k.Reserved2)
}
