package sftpwire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecErrorIsReasonSentinel(t *testing.T) {
	err := newErr(ReasonInvalidOpcode)
	require.ErrorIs(t, err, ReasonInvalidOpcode)
	require.NotErrorIs(t, err, ReasonUnexpectedEOF)
}

func TestCodecErrorWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := wrapErr(ReasonInvalidStatusCode, cause)
	require.ErrorIs(t, err, ReasonInvalidStatusCode)
	require.ErrorIs(t, err, cause)
}

func TestReasonStringIsHumanReadable(t *testing.T) {
	require.Equal(t, "unexpected end of input", ReasonUnexpectedEOF.String())
	require.NotEmpty(t, Reason(999).String())
}
