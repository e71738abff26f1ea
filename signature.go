package asd

import (
	"bytes"
	"encoding/binary"
)

const signatureBlobSize = 128

// Signature is the optional digital-signature trailer record. Its
// presence is gated only by file version ≥ 8, independent of whether
// Signed is actually set — an unsigned file at v8 still carries this
// section, typically with a zeroed blob.
type Signature struct {
	Signed        bool
	SignatureTime int64
	UserDomain    string
	UserLogin     string
	UserName      string
	Source        string
	Reason        string
	Notes         string
	PublicKey     string
	Blob          [signatureBlobSize]byte
}

func decodeSignature(buf []byte, offset int) (Signature, int, error) {
	var s Signature
	var err error
	const section = "signature"

	if offset+1 > len(buf) {
		return s, offset, truncated(section, offset, 1, len(buf))
	}
	s.Signed = buf[offset] != 0
	offset++

	t, offset2, err := readEpoch64(buf, offset, section)
	if err != nil {
		return s, offset2, err
	}
	s.SignatureTime = t.Unix()
	offset = offset2

	strs := []*string{
		&s.UserDomain, &s.UserLogin, &s.UserName, &s.Source,
		&s.Reason, &s.Notes, &s.PublicKey,
	}
	for _, p := range strs {
		*p, offset, err = readBstr(buf, offset, section)
		if err != nil {
			return s, offset, err
		}
	}

	if offset+signatureBlobSize > len(buf) {
		return s, offset, truncated(section, offset, signatureBlobSize, len(buf))
	}
	copy(s.Blob[:], buf[offset:offset+signatureBlobSize])
	offset += signatureBlobSize

	return s, offset, nil
}

func encodeSignature(buf *bytes.Buffer, s Signature) {
	if s.Signed {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	binary.Write(buf, binary.LittleEndian, s.SignatureTime)
	for _, v := range []string{
		s.UserDomain, s.UserLogin, s.UserName, s.Source,
		s.Reason, s.Notes, s.PublicKey,
	} {
		writeBstr(buf, v)
	}
	buf.Write(s.Blob[:])
}
