package sftpwire

import (
	"strconv"
	"unicode/utf8"
)

// ServerVersion is the decoded SSH_FXP_VERSION handshake response: the
// server's chosen protocol version and the set of OpenSSH-portable
// extensions it announced.
type ServerVersion struct {
	Version    uint32
	Extensions ExtensionSet
}

// DecodeServerVersion reads version, then repeatedly consumes a (name,
// revision) string pair until the buffer is exhausted. A pair that fails
// to parse as UTF-8 strings, or whose revision fails to parse as a
// decimal u64, is skipped silently rather than aborting the handshake:
// the set of extensions is open-ended and unrecognized or malformed
// announcements must not be fatal (spec.md section 4.5).
//
// body is the packet after its opcode byte, starting at the version
// field (SSH_FXP_VERSION carries no response id). Callers strip the
// opcode themselves; DecodeResponse does not accept SSH_FXP_VERSION.
func DecodeServerVersion(body []byte) (ServerVersion, error) {
	buf := NewBuffer(body)
	version, err := buf.ConsumeUint32()
	if err != nil {
		return ServerVersion{}, err
	}

	var set ExtensionSet
	for buf.Len() > 0 {
		name, err := buf.ConsumeString()
		if err != nil {
			// A short trailing fragment is tolerated the same way an
			// unparseable pair is: the handshake is not aborted.
			break
		}
		revision, err := buf.ConsumeString()
		if err != nil {
			break
		}
		if !utf8.ValidString(name) || !utf8.ValidString(revision) {
			continue
		}
		if _, err := strconv.ParseUint(revision, 10, 64); err != nil {
			continue
		}
		set.setByName(name, revision)
	}

	return ServerVersion{Version: version, Extensions: set}, nil
}
