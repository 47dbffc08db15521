package sftpwire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnixTimeStampRoundTrip(t *testing.T) {
	ts, err := NewUnixTimeStamp(time.Unix(1700000000, 0).UTC())
	require.NoError(t, err)
	require.Equal(t, time.Unix(1700000000, 0).UTC(), ts.AsTime())
}

func TestUnixTimeStampRejectsBeforeEpoch(t *testing.T) {
	_, err := NewUnixTimeStamp(time.Unix(-1, 0))
	require.ErrorIs(t, err, ReasonTimestampTooEarly)
}

func TestUnixTimeStampRejectsAfterUint32Max(t *testing.T) {
	_, err := NewUnixTimeStamp(time.Unix(int64(^uint32(0))+1, 0))
	require.ErrorIs(t, err, ReasonTimestampTooLarge)
}

func TestUnixTimeStampAtUint32Boundary(t *testing.T) {
	ts, err := NewUnixTimeStamp(time.Unix(int64(^uint32(0)), 0).UTC())
	require.NoError(t, err)
	require.Equal(t, UnixTimeStamp(^uint32(0)), ts)
}
