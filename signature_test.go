package asd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignatureRoundTrip(t *testing.T) {
	in := Signature{
		Signed:        true,
		SignatureTime: 1_700_000_000,
		UserDomain:    "FIELD",
		UserLogin:     "jsmith",
		UserName:      "J. Smith",
		Source:        "laptop-03",
		Reason:        "approval",
		Notes:         "end of survey",
		PublicKey:     "fake-pub-key",
	}
	for i := range in.Blob {
		in.Blob[i] = byte(i)
	}

	buf := new(bytes.Buffer)
	encodeSignature(buf, in)

	out, n, err := decodeSignature(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	require.Equal(t, in.Signed, out.Signed)
	require.Equal(t, in.SignatureTime, out.SignatureTime)
	require.Equal(t, in.UserLogin, out.UserLogin)
	require.Equal(t, in.PublicKey, out.PublicKey)
	require.Equal(t, in.Blob, out.Blob)
}

func TestSignaturePresentRegardlessOfSignedFlag(t *testing.T) {
	in := Signature{Signed: false}
	buf := new(bytes.Buffer)
	encodeSignature(buf, in)

	out, _, err := decodeSignature(buf.Bytes(), 0)
	require.NoError(t, err)
	require.False(t, out.Signed)
}
