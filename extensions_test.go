package sftpwire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewExtensionsRejectsOddCount(t *testing.T) {
	_, ok := NewExtensions([]string{"posix-rename@openssh.com"})
	require.False(t, ok)
}

func TestNewExtensionsAcceptsEvenCount(t *testing.T) {
	e, ok := NewExtensions([]string{"posix-rename@openssh.com", "1", "statvfs@openssh.com", "2"})
	require.True(t, ok)
	require.Equal(t, 2, e.Len())
	require.Equal(t, Extension{Name: "posix-rename@openssh.com", Value: "1"}, e.At(0))
}

func TestExtensionsRoundTrip(t *testing.T) {
	e, ok := NewExtensions([]string{"fsync@openssh.com", "1"})
	require.True(t, ok)

	buf := NewMarshalBuffer(e.wireLen())
	e.marshalInto(buf)

	got, err := unmarshalExtensionsFrom(NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	if diff := cmp.Diff(e, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExtensionsEmptyDecodesToEmptySet(t *testing.T) {
	buf := NewMarshalBuffer(4)
	buf.AppendUint32(0)
	got, err := unmarshalExtensionsFrom(NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
}

func TestExtensionsRejectsImplausibleCount(t *testing.T) {
	buf := NewMarshalBuffer(4)
	buf.AppendUint32(0xFFFFFFFF)
	_, err := unmarshalExtensionsFrom(NewBuffer(buf.Bytes()))
	require.ErrorIs(t, err, ReasonLengthOverflow)
}
