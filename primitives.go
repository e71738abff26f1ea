package asd

import (
	"bytes"
	"encoding/binary"
	"strings"
	"time"
)

// arrayPreamble is the legacy 10-byte shape descriptor ("dims:int16,
// count:int32, 0:int32") that precedes a variable-length array whenever
// the array is non-empty. Its dims value is always 1 in practice, so it
// is treated as an opaque constant rather than a general N-D shape.
const arrayPreambleSize = 10

func writeArrayPreamble(buf *bytes.Buffer, count int32) {
	binary.Write(buf, binary.LittleEndian, int16(1))
	binary.Write(buf, binary.LittleEndian, count)
	binary.Write(buf, binary.LittleEndian, int32(0))
}

// readBstr decodes a length-prefixed UTF-8 string: a little-endian int16
// size followed by that many raw bytes, decoded lossily. A negative size
// is a format error rather than a short read.
func readBstr(buf []byte, offset int, section string) (string, int, error) {
	if offset+2 > len(buf) {
		return "", offset, truncated(section, offset, 2, len(buf))
	}
	size := int16(binary.LittleEndian.Uint16(buf[offset : offset+2]))
	offset += 2
	if size < 0 {
		return "", offset, invalidEncoding(section, "negative string length")
	}
	n := int(size)
	if offset+n > len(buf) {
		return "", offset, truncated(section, offset, n, len(buf))
	}
	s := lossyUTF8(buf[offset : offset+n])
	return s, offset + n, nil
}

// writeBstr is the inverse of readBstr: pack an int16 length then the raw
// UTF-8 bytes. Strings longer than math.MaxInt16 bytes are a caller bug,
// not a recoverable encoding error, so this panics rather than silently
// truncating the wire format.
func writeBstr(buf *bytes.Buffer, s string) {
	b := []byte(s)
	if len(b) > 1<<15-1 {
		panic("asd: string too long for a bstr length prefix")
	}
	binary.Write(buf, binary.LittleEndian, int16(len(b)))
	buf.Write(b)
}

// readBool decodes the two-byte boolean sentinel: 0xFFFF is true, 0x0000
// is false, anything else is a format error.
func readBool(buf []byte, offset int, section string) (bool, int, error) {
	if offset+2 > len(buf) {
		return false, offset, truncated(section, offset, 2, len(buf))
	}
	switch {
	case buf[offset] == 0xFF && buf[offset+1] == 0xFF:
		return true, offset + 2, nil
	case buf[offset] == 0x00 && buf[offset+1] == 0x00:
		return false, offset + 2, nil
	default:
		return false, offset, invalidEncoding(section, "boolean sentinel is neither 0xFFFF nor 0x0000")
	}
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.Write([]byte{0xFF, 0xFF})
	} else {
		buf.Write([]byte{0x00, 0x00})
	}
}

// readWhen decodes the nine-field calendar timestamp: nine little-endian
// int16 values (seconds, minutes, hour, day, month, year, weekday,
// day-of-year, daylight-savings flag). Month is 0-based on disk and
// 1-based in the returned time.Time; year is offset by 1900 on disk.
// The weekday and day-of-year fields are informational only on read -
// time.Time derives them itself - and are recomputed from the date on
// writeWhen.
func readWhen(buf []byte, offset int, section string) (time.Time, int16, int, error) {
	const size = 18 // 9 * int16
	if offset+size > len(buf) {
		return time.Time{}, 0, offset, truncated(section, offset, size, len(buf))
	}
	fields := make([]int16, 9)
	for i := range fields {
		fields[i] = int16(binary.LittleEndian.Uint16(buf[offset+2*i : offset+2*i+2]))
	}
	seconds, minutes, hour, day, month, year := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]
	dst := fields[8]
	if year < 1900 {
		year += 1900
	}
	t := time.Date(int(year), time.Month(month+1), int(day), int(hour), int(minutes), int(seconds), 0, time.UTC)
	return t, dst, offset + size, nil
}

func writeWhen(buf *bytes.Buffer, t time.Time, dst int16) {
	year := int16(t.Year())
	if year >= 1900 {
		year -= 1900
	}
	weekday := int16(t.Weekday())
	dayOfYear := int16(t.YearDay() - 1)
	fields := []int16{
		int16(t.Second()),
		int16(t.Minute()),
		int16(t.Hour()),
		int16(t.Day()),
		int16(t.Month() - 1),
		year,
		weekday,
		dayOfYear,
		dst,
	}
	for _, f := range fields {
		binary.Write(buf, binary.LittleEndian, f)
	}
}

// readEpoch32/readEpoch64 decode a 32- or 64-bit signed second count,
// interpreted in local time so that a round trip through writeEpoch does
// not shift the value by the host's timezone.
func readEpoch32(buf []byte, offset int, section string) (time.Time, int, error) {
	if offset+4 > len(buf) {
		return time.Time{}, offset, truncated(section, offset, 4, len(buf))
	}
	secs := int32(binary.LittleEndian.Uint32(buf[offset : offset+4]))
	return time.Unix(int64(secs), 0), offset + 4, nil
}

func writeEpoch32(buf *bytes.Buffer, t time.Time) {
	binary.Write(buf, binary.LittleEndian, int32(t.Unix()))
}

func readEpoch64(buf []byte, offset int, section string) (time.Time, int, error) {
	if offset+8 > len(buf) {
		return time.Time{}, offset, truncated(section, offset, 8, len(buf))
	}
	secs := int64(binary.LittleEndian.Uint64(buf[offset : offset+8]))
	return time.Unix(secs, 0), offset + 8, nil
}

func writeEpoch64(buf *bytes.Buffer, t time.Time) {
	binary.Write(buf, binary.LittleEndian, t.Unix())
}

// lossyUTF8 repairs invalid UTF-8 sequences (e.g. in the free-text
// comments field, which may carry arbitrary bytes) rather than failing
// to decode them. strings.ToValidUTF8 is the stdlib tool for this and is
// what the rest of the corpus reaches for when no ecosystem library
// specializes in encoding repair.
func lossyUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
