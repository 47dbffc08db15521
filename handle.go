package sftpwire

import "bytes"

// handleInlineCap is the inline small-buffer-optimization capacity for
// OwnedHandle, matching the de-facto size of most server-issued handles
// (a 4-byte or 8-byte counter/index), per spec.md section 4.6.
const handleInlineCap = 4

// Handle is a borrowed, zero-copy view of a server-issued opaque handle,
// valid only as long as the buffer it was decoded from is live. It is
// used on the parse hot path; callers that need the handle to outlive the
// input buffer must call ToOwned.
type Handle []byte

// ToOwned copies h into an OwnedHandle, using inline storage for handles
// up to handleInlineCap bytes and a heap allocation beyond that.
func (h Handle) ToOwned() OwnedHandle {
	var o OwnedHandle
	o.n = len(h)
	if o.n <= handleInlineCap {
		copy(o.inline[:], h)
		return o
	}
	o.heap = append([]byte(nil), h...)
	return o
}

// OwnedHandle is a small-buffer-optimized owned copy of a server handle:
// inline for sizes up to handleInlineCap, heap-allocated beyond that. It
// is cheap to clone (a value copy for the common small-handle case) and
// is the representation used once a handle escapes the decode scope.
type OwnedHandle struct {
	inline [handleInlineCap]byte
	heap   []byte
	n      int
}

// NewOwnedHandle copies b into an OwnedHandle.
func NewOwnedHandle(b []byte) OwnedHandle { return Handle(b).ToOwned() }

// Bytes returns the handle's contents as a slice. For inline handles this
// aliases the receiver's own array, so callers must treat the result as
// read-only and not retain it past the OwnedHandle's lifetime.
func (o *OwnedHandle) Bytes() []byte {
	if o.heap != nil {
		return o.heap
	}
	return o.inline[:o.n]
}

// Borrow returns a Handle view of o without allocation.
func (o *OwnedHandle) Borrow() Handle { return Handle(o.Bytes()) }

// Len returns the number of bytes in the handle.
func (o *OwnedHandle) Len() int { return o.n }

// Equal reports byte-content equality.
func (o *OwnedHandle) Equal(other *OwnedHandle) bool {
	return bytes.Equal(o.Bytes(), other.Bytes())
}

// Compare orders two handles by byte content, for use as a map/tree key
// comparator.
func (o *OwnedHandle) Compare(other *OwnedHandle) int {
	return bytes.Compare(o.Bytes(), other.Bytes())
}

// String renders the handle for debugging; the format is not part of the
// wire protocol.
func (o *OwnedHandle) String() string { return string(o.Bytes()) }
