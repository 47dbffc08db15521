package sftpwire

import (
	"fmt"

	"github.com/pkg/errors"
)

// Reason enumerates the structural-error taxonomy of spec.md section 7
// category 1: a single error variant with an enclosed reason, fatal for
// the packet being decoded.
type Reason int

const (
	ReasonUnexpectedEOF Reason = iota + 1
	ReasonLengthOverflow
	ReasonInvalidOpcode
	ReasonInvalidStatusCode
	ReasonReservedStatusCode
	ReasonInvalidFileType
	ReasonTimestampTooEarly
	ReasonTimestampTooLarge
	ReasonUnknownPacketType
)

func (r Reason) String() string {
	switch r {
	case ReasonUnexpectedEOF:
		return "unexpected end of input"
	case ReasonLengthOverflow:
		return "declared length overflows platform index type"
	case ReasonInvalidOpcode:
		return "invalid opcode"
	case ReasonInvalidStatusCode:
		return "invalid status code"
	case ReasonReservedStatusCode:
		return "reserved pseudo-error status code received on the wire"
	case ReasonInvalidFileType:
		return "invalid file-type bits in mode"
	case ReasonTimestampTooEarly:
		return "timestamp precedes the Unix epoch"
	case ReasonTimestampTooLarge:
		return "timestamp exceeds 2^32-1 seconds"
	case ReasonUnknownPacketType:
		return "unknown packet type"
	default:
		return "unknown codec error"
	}
}

// CodecError is the single structural-error type the codec returns. It
// wraps a Reason sentinel so callers can errors.Is/errors.As against it,
// and carries a stack trace (via github.com/pkg/errors) for callers that
// want to log it, without the codec itself ever logging.
type CodecError struct {
	Reason Reason
	cause  error
}

func (e *CodecError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("sftpwire: %s: %v", e.Reason, e.cause)
	}
	return fmt.Sprintf("sftpwire: %s", e.Reason)
}

func (e *CodecError) Unwrap() error { return e.cause }

// Is reports whether target is the same Reason sentinel, so
// errors.Is(err, ReasonUnexpectedEOF) works directly against a Reason value.
func (e *CodecError) Is(target error) bool {
	t, ok := target.(Reason)
	return ok && t == e.Reason
}

func (r Reason) Error() string { return r.String() }

func newErr(reason Reason) error {
	return errors.WithStack(&CodecError{Reason: reason})
}

func wrapErr(reason Reason, cause error) error {
	return errors.WithStack(&CodecError{Reason: reason, cause: cause})
}
