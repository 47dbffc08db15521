package sftpwire

// Extension is a single (name, value) pair of an Extensions list.
type Extension struct {
	Name  string
	Value string
}

// Extensions is an ordered sequence of (name, value) string pairs with
// its own u32-count wire encoding. FileAttrs decoding discards EXTENDED
// pairs rather than keeping them in an Extensions, and the
// SSH_FXP_VERSION handshake is decoded into an ExtensionSet instead.
// Names are treated case-sensitively.
type Extensions struct {
	pairs []Extension
}

// NewExtensions builds an Extensions from a flat, interleaved
// name,value,name,value,... slice. It reports false if strs has an odd
// length, mirroring the "not accepted" sentinel of spec.md section 8.
func NewExtensions(strs []string) (Extensions, bool) {
	if len(strs)%2 != 0 {
		return Extensions{}, false
	}
	pairs := make([]Extension, 0, len(strs)/2)
	for i := 0; i < len(strs); i += 2 {
		pairs = append(pairs, Extension{Name: strs[i], Value: strs[i+1]})
	}
	return Extensions{pairs: pairs}, true
}

// Add appends a (name, value) pair.
func (e *Extensions) Add(name, value string) {
	e.pairs = append(e.pairs, Extension{Name: name, Value: value})
}

// Len returns the number of pairs.
func (e Extensions) Len() int { return len(e.pairs) }

// At returns the pair at index i.
func (e Extensions) At(i int) Extension { return e.pairs[i] }

// All returns the pairs in wire order. Callers must not mutate the
// returned slice.
func (e Extensions) All() []Extension { return e.pairs }

// Equal reports whether e and other contain the same pairs in the same
// order.
func (e Extensions) Equal(other Extensions) bool {
	if len(e.pairs) != len(other.pairs) {
		return false
	}
	for i := range e.pairs {
		if e.pairs[i] != other.pairs[i] {
			return false
		}
	}
	return true
}

// marshalInto appends the wire encoding (u32 N, then 2N byte strings) to
// buf.
func (e Extensions) marshalInto(buf *Buffer) {
	buf.AppendUint32(uint32(len(e.pairs)))
	for _, p := range e.pairs {
		buf.AppendString(p.Name)
		buf.AppendString(p.Value)
	}
}

// wireLen returns the number of bytes e.marshalInto would append.
func (e Extensions) wireLen() int {
	n := 4
	for _, p := range e.pairs {
		n += 4 + len(p.Name) + 4 + len(p.Value)
	}
	return n
}

// unmarshalExtensionsFrom reads a u32 count followed by 2N byte strings
// from buf, grouping them into pairs in wire order.
func unmarshalExtensionsFrom(buf *Buffer) (Extensions, error) {
	n, err := buf.ConsumeUint32()
	if err != nil {
		return Extensions{}, err
	}
	// Each pair needs at least two 4-byte length prefixes on the wire;
	// reject counts that could never be satisfied by what remains before
	// trusting n as a slice-capacity hint (an attacker-controlled n near
	// 2^32 would otherwise be an allocation bomb).
	if uint64(n)*8 > uint64(buf.Len()) {
		return Extensions{}, newErr(ReasonLengthOverflow)
	}
	pairs := make([]Extension, 0, n)
	for i := uint32(0); i < n; i++ {
		name, err := buf.ConsumeString()
		if err != nil {
			return Extensions{}, err
		}
		value, err := buf.ConsumeString()
		if err != nil {
			return Extensions{}, err
		}
		pairs = append(pairs, Extension{Name: name, Value: value})
	}
	return Extensions{pairs: pairs}, nil
}
