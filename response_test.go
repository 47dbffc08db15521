package sftpwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeResponseStatusEOFScenario(t *testing.T) {
	// spec.md section 8 scenario 4.
	wire := []byte{
		0x65, 0x00, 0x00, 0x00, 0x0A,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	resp, err := DecodeResponse(wire)
	require.NoError(t, err)
	require.Equal(t, uint32(10), resp.ID)

	status, ok := resp.Kind.(StatusResponse)
	require.True(t, ok)
	require.True(t, status.Code.IsEOF())
	require.Equal(t, "", status.ErrMsg.Message)
	require.Equal(t, "", status.ErrMsg.LanguageTag)
}

func TestDecodeResponseAttrsSizeOnlyScenario(t *testing.T) {
	// spec.md section 8 scenario 5.
	wire := []byte{
		0x69, 0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x09, 0x1C,
	}
	resp, err := DecodeResponse(wire)
	require.NoError(t, err)
	require.Equal(t, uint32(2), resp.ID)

	attrs, ok := resp.Kind.(AttrsResponse)
	require.True(t, ok)
	size, present := attrs.Attrs.Size()
	require.True(t, present)
	require.Equal(t, uint64(2332), size)
}

func TestDecodeServerVersionOneExtensionScenario(t *testing.T) {
	// spec.md section 8 scenario 6 (the body handed to
	// DecodeServerVersion, i.e. everything after the opcode byte that a
	// transport already peeled off to recognize SSH_FXP_VERSION).
	wire := []byte{0x00, 0x00, 0x00, 0x03}
	wire = append(wire, encodeLenString("posix-rename@openssh.com")...)
	wire = append(wire, encodeLenString("1")...)

	sv, err := DecodeServerVersion(wire)
	require.NoError(t, err)
	require.Equal(t, uint32(3), sv.Version)
	require.True(t, sv.Extensions.PosixRename)
}

func TestDecodeServerVersionEmptyExtensions(t *testing.T) {
	// spec.md section 8 boundary: version=3, zero trailing bytes.
	sv, err := DecodeServerVersion([]byte{0x00, 0x00, 0x00, 0x03})
	require.NoError(t, err)
	require.Equal(t, uint32(3), sv.Version)
	require.False(t, sv.Extensions.PosixRename)
}

func TestDecodeResponseStatusReservedCodeIsStructuralError(t *testing.T) {
	wire := []byte{
		0x65, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x06, // SSH_FX_NO_CONNECTION
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	_, err := DecodeResponse(wire)
	require.ErrorIs(t, err, ReasonReservedStatusCode)
}

func TestDecodeResponseUnknownStatusCodeStrictVsLenient(t *testing.T) {
	wire := []byte{
		0x65, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x63, // unrecognized
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	_, err := DecodeResponse(wire)
	require.ErrorIs(t, err, ReasonInvalidStatusCode)

	resp, err := DecodeResponseLenient(wire)
	require.NoError(t, err)
	status := resp.Kind.(StatusResponse)
	code, failed := status.Code.Failure()
	require.True(t, failed)
	require.Equal(t, ErrorCodeFailure, code)
}

func TestDecodeResponseNameZeroCountIsEmpty(t *testing.T) {
	wire := []byte{
		0x68, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00, // count = 0
	}
	resp, err := DecodeResponse(wire)
	require.NoError(t, err)
	name := resp.Kind.(NameResponse)
	require.Empty(t, name.Entries)
}

func TestDecodeResponseDataIsNotHandledHere(t *testing.T) {
	wire := []byte{0x67, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}
	require.True(t, IsDataOpcode(PacketType(wire[0])))
	_, err := DecodeResponse(wire)
	require.Error(t, err)
}

func encodeLenString(s string) []byte {
	buf := NewMarshalBuffer(4 + len(s))
	buf.AppendString(s)
	return buf.Bytes()
}
