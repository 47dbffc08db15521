package transport

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// frame prepends the 4-byte big-endian total-length prefix spec.md
// section 6 requires around every encoded body; the codec package itself
// never emits it (that's this package's job as the transport collaborator).
func frame(body []byte) []byte {
	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out, uint32(len(body)))
	copy(out[4:], body)
	return out
}

// readPacket reads one length-prefixed SFTP packet from r and returns its
// body (opcode byte onward), adapted from the teacher's reader.go.
func readPacket(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	if length == 0 {
		return nil, errors.New("zero-length packet")
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}
