package sftpwire

import "golang.org/x/text/language"

// ErrorCode classifies a Failure-class StatusCode.
type ErrorCode int

const (
	ErrorCodeNoSuchFile ErrorCode = iota + 1
	ErrorCodePermDenied
	ErrorCodeFailure
	ErrorCodeBadMessage
	ErrorCodeOpUnsupported
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeNoSuchFile:
		return "no such file"
	case ErrorCodePermDenied:
		return "permission denied"
	case ErrorCodeFailure:
		return "failure"
	case ErrorCodeBadMessage:
		return "bad message"
	case ErrorCodeOpUnsupported:
		return "operation unsupported"
	default:
		return "unknown error code"
	}
}

// StatusCode is the decoded form of an SSH_FXP_STATUS code field:
// success, end-of-file, or a classified failure.
type StatusCode struct {
	// Eof is true for SSH_FX_EOF, false otherwise.
	eof bool
	// ok is true for SSH_FX_OK.
	ok bool
	// code is meaningful only when neither ok nor eof.
	code ErrorCode
}

// StatusSuccess, StatusEOF construct the two non-failure StatusCode
// values; StatusFailure(code) constructs a failure.
func StatusSuccess() StatusCode           { return StatusCode{ok: true} }
func StatusEOF() StatusCode               { return StatusCode{eof: true} }
func StatusFailure(code ErrorCode) StatusCode { return StatusCode{code: code} }

// IsSuccess, IsEOF, Failure report which of the three cases s holds.
func (s StatusCode) IsSuccess() bool { return s.ok }
func (s StatusCode) IsEOF() bool     { return s.eof }

// Failure returns the classified error code and true if s is neither
// Success nor Eof.
func (s StatusCode) Failure() (ErrorCode, bool) {
	if s.ok || s.eof {
		return 0, false
	}
	return s.code, true
}

// decodeStatusCode maps a wire u32 status code per spec.md section 4.5.
// SSH_FX_NO_CONNECTION and SSH_FX_CONNECTION_LOST are pseudo-errors
// defined as client-only; receiving either on the wire is a hard
// structural error, never a decoded StatusCode. lenient, if true, maps
// any other unrecognized code to Failure(Failure) instead of erroring
// (spec.md section 7 category 2's opt-in forward-compatibility mode).
func decodeStatusCode(code uint32, lenient bool) (StatusCode, error) {
	switch code {
	case SSHFxOk:
		return StatusSuccess(), nil
	case SSHFxEOF:
		return StatusEOF(), nil
	case SSHFxNoSuchFile:
		return StatusFailure(ErrorCodeNoSuchFile), nil
	case SSHFxPermissionDenied:
		return StatusFailure(ErrorCodePermDenied), nil
	case SSHFxFailure:
		return StatusFailure(ErrorCodeFailure), nil
	case SSHFxBadMessage:
		return StatusFailure(ErrorCodeBadMessage), nil
	case SSHFxOpUnsupported:
		return StatusFailure(ErrorCodeOpUnsupported), nil
	case SSHFxNoConnection, SSHFxConnectionLost:
		return StatusCode{}, newErr(ReasonReservedStatusCode)
	default:
		if lenient {
			return StatusFailure(ErrorCodeFailure), nil
		}
		return StatusCode{}, newErr(ReasonInvalidStatusCode)
	}
}

// ErrMsg is the localized message pair carried by a Status response.
type ErrMsg struct {
	Message     string
	LanguageTag string
}

// NewErrMsg constructs an ErrMsg for local use (e.g. building a test
// fixture or a response to serve). It validates languageTag against
// RFC 1766 via golang.org/x/text/language, returning an error if it does
// not parse; this validation is never applied to data decoded off the
// wire (spec.md section 7 category 2: wire-received tags are carried
// as-is, however malformed).
func NewErrMsg(message, languageTag string) (ErrMsg, error) {
	if languageTag != "" {
		if _, err := language.Parse(languageTag); err != nil {
			return ErrMsg{}, wrapErr(ReasonInvalidStatusCode, err)
		}
	}
	return ErrMsg{Message: message, LanguageTag: languageTag}, nil
}

// StatusResponse is the decoded SSH_FXP_STATUS payload.
type StatusResponse struct {
	Code   StatusCode
	ErrMsg ErrMsg
}

// HandleResponse is the decoded SSH_FXP_HANDLE payload.
type HandleResponse struct {
	Handle OwnedHandle
}

// NameEntry is one entry of an SSH_FXP_NAME response. longname is
// retained verbatim but never parsed (spec.md's explicit non-goal).
type NameEntry struct {
	Filename string
	Longname string
	Attrs    FileAttrs
}

// NameResponse is the decoded SSH_FXP_NAME payload.
type NameResponse struct {
	Entries []NameEntry
}

// AttrsResponse is the decoded SSH_FXP_ATTRS payload.
type AttrsResponse struct {
	Attrs FileAttrs
}

// ResponseKind is implemented by every decoded server->client response
// payload. Data and Extended responses carry no materialized payload:
// they are signalled by packet type alone and the body is left for the
// caller to consume from the transport (spec.md section 4.5).
type ResponseKind interface {
	isResponseKind()
}

func (StatusResponse) isResponseKind() {}
func (HandleResponse) isResponseKind() {}
func (NameResponse) isResponseKind()   {}
func (AttrsResponse) isResponseKind()  {}

// Response pairs a response id (echoing the client's chosen request id)
// with a decoded payload.
type Response struct {
	ID   uint32
	Kind ResponseKind
}

// IsDataOpcode reports whether opcode is SSH_FXP_DATA, so callers can
// branch to a zero-copy path and read the payload directly off the
// transport instead of calling DecodeResponse (spec.md section 4.5).
func IsDataOpcode(opcode PacketType) bool { return opcode == PacketTypeData }

// IsExtendedReplyOpcode reports whether opcode is SSH_FXP_EXTENDED_REPLY,
// whose body is opaque and decoded by the caller per the outstanding
// extended request.
func IsExtendedReplyOpcode(opcode PacketType) bool { return opcode == PacketTypeExtendedReply }

// DecodeResponse reads u8 opcode, u32 response id, and a payload matching
// the opcode from body, in strict mode: an unrecognized status code
// above SSH_FX_OP_UNSUPPORTED is a structural error. Use
// DecodeResponseLenient for the opt-in forward-compatible mode. DATA and
// EXTENDED_REPLY are not handled here: check IsDataOpcode/
// IsExtendedReplyOpcode on the opcode byte before calling this.
func DecodeResponse(body []byte) (Response, error) {
	return decodeResponse(body, false)
}

// DecodeResponseLenient is DecodeResponse but maps unrecognized status
// codes to Failure(Failure) instead of erroring (spec.md section 7
// category 2's opt-in lenient mode).
func DecodeResponseLenient(body []byte) (Response, error) {
	return decodeResponse(body, true)
}

func decodeResponse(body []byte, lenient bool) (Response, error) {
	buf := NewBuffer(body)

	opcodeByte, err := buf.ConsumeUint8()
	if err != nil {
		return Response{}, err
	}
	opcode := PacketType(opcodeByte)

	id, err := buf.ConsumeUint32()
	if err != nil {
		return Response{}, err
	}

	var kind ResponseKind
	switch opcode {
	case PacketTypeStatus:
		code, err := buf.ConsumeUint32()
		if err != nil {
			return Response{}, err
		}
		status, err := decodeStatusCode(code, lenient)
		if err != nil {
			return Response{}, err
		}
		msg, err := buf.ConsumeString()
		if err != nil {
			return Response{}, err
		}
		lang, err := buf.ConsumeString()
		if err != nil {
			return Response{}, err
		}
		kind = StatusResponse{Code: status, ErrMsg: ErrMsg{Message: msg, LanguageTag: lang}}

	case PacketTypeHandle:
		h, err := buf.ConsumeByteString()
		if err != nil {
			return Response{}, err
		}
		kind = HandleResponse{Handle: NewOwnedHandle(h)}

	case PacketTypeName:
		count, err := buf.ConsumeUint32()
		if err != nil {
			return Response{}, err
		}
		// Each entry needs at least two 4-byte length prefixes (filename,
		// longname) plus the 4-byte FileAttrs flags word; bound the
		// preallocation so a bogus count can't be used as an allocation
		// bomb before the loop below ever fails to read past the real data.
		if uint64(count)*12 > uint64(buf.Len()) {
			return Response{}, newErr(ReasonLengthOverflow)
		}
		entries := make([]NameEntry, 0, count)
		for i := uint32(0); i < count; i++ {
			filename, err := buf.ConsumeString()
			if err != nil {
				return Response{}, err
			}
			longname, err := buf.ConsumeString()
			if err != nil {
				return Response{}, err
			}
			attrs, err := unmarshalFileAttrsFrom(buf)
			if err != nil {
				return Response{}, err
			}
			entries = append(entries, NameEntry{Filename: filename, Longname: longname, Attrs: attrs})
		}
		kind = NameResponse{Entries: entries}

	case PacketTypeAttrs:
		attrs, err := unmarshalFileAttrsFrom(buf)
		if err != nil {
			return Response{}, err
		}
		kind = AttrsResponse{Attrs: attrs}

	case PacketTypeData, PacketTypeExtendedReply:
		return Response{}, newErr(ReasonUnknownPacketType)

	default:
		return Response{}, newErr(ReasonInvalidOpcode)
	}

	return Response{ID: id, Kind: kind}, nil
}
