package asd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDependentsRoundTripEmpty(t *testing.T) {
	in := Dependents{Flag: false}
	buf := new(bytes.Buffer)
	encodeDependents(buf, in)

	out, n, err := decodeDependents(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	require.False(t, out.Flag)
	require.Empty(t, out.Labels)
	require.Empty(t, out.Values)
}

func TestDependentsRoundTripPopulated(t *testing.T) {
	in := Dependents{
		Flag:   true,
		Labels: []string{"NDVI", "chlorophyll"},
		Values: []float32{0.42, 12.5},
	}
	buf := new(bytes.Buffer)
	encodeDependents(buf, in)

	out, n, err := decodeDependents(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	require.Equal(t, in.Labels, out.Labels)
	require.Equal(t, in.Values, out.Values)
}
