package transport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameAndReadPacketRoundTrip(t *testing.T) {
	body := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	r := bytes.NewReader(frame(body))

	got, err := readPacket(r)
	require.NoError(t, err)
	require.Equal(t, body, got)
}

func TestReadPacketRejectsZeroLength(t *testing.T) {
	r := bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00})
	_, err := readPacket(r)
	require.Error(t, err)
}

func TestReadPacketTruncatedBody(t *testing.T) {
	r := bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x05, 0x01, 0x02})
	_, err := readPacket(r)
	require.Error(t, err)
}
