package asd

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Dependents carries an optional pair of parallel arrays: dependent
// variable labels and their float32 values. Present from v6 onward.
type Dependents struct {
	Flag   bool
	Labels []string
	Values []float32
}

func decodeDependents(buf []byte, offset int) (Dependents, int, error) {
	var d Dependents
	var err error
	const section = "dependents"

	d.Flag, offset, err = readBool(buf, offset, section)
	if err != nil {
		return d, offset, err
	}

	if offset+2 > len(buf) {
		return d, offset, truncated(section, offset, 2, len(buf))
	}
	count := int(binary.LittleEndian.Uint16(buf[offset : offset+2]))
	offset += 2

	if count == 0 {
		if offset+4 > len(buf) {
			return d, offset, truncated(section, offset, 4, len(buf))
		}
		offset += 4 // terminator
		return d, offset, nil
	}

	if offset+arrayPreambleSize > len(buf) {
		return d, offset, truncated(section, offset, arrayPreambleSize, len(buf))
	}
	offset += arrayPreambleSize

	d.Labels = make([]string, count)
	for i := range d.Labels {
		d.Labels[i], offset, err = readBstr(buf, offset, section)
		if err != nil {
			return d, offset, err
		}
	}

	if offset+arrayPreambleSize > len(buf) {
		return d, offset, truncated(section, offset, arrayPreambleSize, len(buf))
	}
	offset += arrayPreambleSize

	d.Values = make([]float32, count)
	for i := range d.Values {
		if offset+4 > len(buf) {
			return d, offset, truncated(section, offset, 4, len(buf))
		}
		d.Values[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[offset : offset+4]))
		offset += 4
	}
	return d, offset, nil
}

func encodeDependents(buf *bytes.Buffer, d Dependents) {
	writeBool(buf, d.Flag)
	binary.Write(buf, binary.LittleEndian, uint16(len(d.Labels)))
	if len(d.Labels) == 0 {
		binary.Write(buf, binary.LittleEndian, uint32(0))
		return
	}
	writeArrayPreamble(buf, int32(len(d.Labels)))
	for _, s := range d.Labels {
		writeBstr(buf, s)
	}
	writeArrayPreamble(buf, int32(len(d.Values)))
	for _, v := range d.Values {
		binary.Write(buf, binary.LittleEndian, math.Float32bits(v))
	}
}
