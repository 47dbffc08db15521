package sftpwire

import "encoding/binary"

// Buffer is a cursor over a byte slice used to decode (consume) or encode
// (append) the primitive wire types of section 4.1: u8, u32, u64, and
// byte strings (a u32 length followed by that many bytes). Decoding is
// borrowing: ConsumeByteString returns a slice into the Buffer's
// underlying array, never a copy (ConsumeString copies into a string).
type Buffer struct {
	b []byte
}

// NewBuffer wraps b for decoding. The returned Buffer aliases b: callers
// must not mutate b while the Buffer or any slice it has returned is live.
func NewBuffer(b []byte) *Buffer { return &Buffer{b: b} }

// NewMarshalBuffer allocates an encoding Buffer, reserving size bytes of
// capacity beyond the fixed 5-byte packet header (opcode + request id).
func NewMarshalBuffer(size int) *Buffer {
	return &Buffer{b: make([]byte, 0, 5+size)}
}

// Len returns the number of unconsumed bytes.
func (p *Buffer) Len() int { return len(p.b) }

// Bytes returns the Buffer's current contents without consuming them.
func (p *Buffer) Bytes() []byte { return p.b }

// ConsumeUint8 reads and removes a single byte.
func (p *Buffer) ConsumeUint8() (uint8, error) {
	if len(p.b) < 1 {
		return 0, newErr(ReasonUnexpectedEOF)
	}
	v := p.b[0]
	p.b = p.b[1:]
	return v, nil
}

// ConsumeUint32 reads and removes a big-endian uint32.
func (p *Buffer) ConsumeUint32() (uint32, error) {
	if len(p.b) < 4 {
		return 0, newErr(ReasonUnexpectedEOF)
	}
	v := binary.BigEndian.Uint32(p.b)
	p.b = p.b[4:]
	return v, nil
}

// ConsumeUint64 reads and removes a big-endian uint64.
func (p *Buffer) ConsumeUint64() (uint64, error) {
	if len(p.b) < 8 {
		return 0, newErr(ReasonUnexpectedEOF)
	}
	v := binary.BigEndian.Uint64(p.b)
	p.b = p.b[8:]
	return v, nil
}

// ConsumeByteString reads a u32 length followed by that many bytes,
// returning a slice aliased into the Buffer's backing array (zero-copy).
func (p *Buffer) ConsumeByteString() ([]byte, error) {
	l, err := p.ConsumeUint32()
	if err != nil {
		return nil, err
	}
	if uint64(l) > uint64(len(p.b)) {
		return nil, newErr(ReasonUnexpectedEOF)
	}
	// int(l) is safe: l <= len(p.b) which already fits in an int.
	n := int(l)
	v := p.b[:n]
	p.b = p.b[n:]
	return v, nil
}

// ConsumeString is ConsumeByteString with the result interpreted (without
// validation) as a string. Per spec.md section 3, path/name strings carry
// no explicit encoding guarantee.
func (p *Buffer) ConsumeString() (string, error) {
	b, err := p.ConsumeByteString()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendUint8 appends a single byte.
func (p *Buffer) AppendUint8(v uint8) { p.b = append(p.b, v) }

// AppendUint32 appends a big-endian uint32.
func (p *Buffer) AppendUint32(v uint32) {
	p.b = append(p.b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendUint64 appends a big-endian uint64.
func (p *Buffer) AppendUint64(v uint64) {
	p.b = append(p.b,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendByteString appends a u32 length prefix followed by b.
func (p *Buffer) AppendByteString(b []byte) {
	p.AppendUint32(uint32(len(b)))
	p.b = append(p.b, b...)
}

// AppendString is AppendByteString over the string's bytes.
func (p *Buffer) AppendString(s string) {
	p.AppendUint32(uint32(len(s)))
	p.b = append(p.b, s...)
}

// StartHeader appends the opcode and request-id fields that begin every
// SFTP packet.
func (p *Buffer) StartHeader(t PacketType, requestID uint32) {
	p.AppendUint8(uint8(t))
	p.AppendUint32(requestID)
}
