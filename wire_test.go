package sftpwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferUintRoundTrip(t *testing.T) {
	buf := NewMarshalBuffer(16)
	buf.AppendUint8(0xAB)
	buf.AppendUint32(0xDEADBEEF)
	buf.AppendUint64(0x0102030405060708)

	r := NewBuffer(buf.Bytes())
	u8, err := r.ConsumeUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	u32, err := r.ConsumeUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	u64, err := r.ConsumeUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64)

	require.Equal(t, 0, r.Len())
}

func TestBufferByteStringZeroCopy(t *testing.T) {
	buf := NewMarshalBuffer(8)
	buf.AppendByteString([]byte("hello"))
	wire := buf.Bytes()

	r := NewBuffer(wire)
	got, err := r.ConsumeByteString()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)

	// Zero-copy: the returned slice aliases the original wire array.
	wire[4] = 'H'
	require.Equal(t, byte('H'), got[0])
}

func TestBufferConsumeUnexpectedEOF(t *testing.T) {
	r := NewBuffer([]byte{0x01, 0x02})
	_, err := r.ConsumeUint32()
	require.ErrorIs(t, err, ReasonUnexpectedEOF)
}

func TestBufferConsumeByteStringTruncated(t *testing.T) {
	r := NewBuffer([]byte{0x00, 0x00, 0x00, 0xFF, 'a', 'b'})
	_, err := r.ConsumeByteString()
	require.ErrorIs(t, err, ReasonUnexpectedEOF)
}

func TestStartHeader(t *testing.T) {
	buf := NewMarshalBuffer(0)
	buf.StartHeader(PacketTypeClose, 7)
	require.Equal(t, []byte{byte(PacketTypeClose), 0, 0, 0, 7}, buf.Bytes())
}
