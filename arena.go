package sftpwire

import "sync"

// AttrsArena recycles FileAttrs values across directory-listing decodes,
// per spec.md section 9's "Arena for FileAttrs" design note: a
// process-wide or per-decode allocator is equally valid, and if shared it
// must be safe to allocate from concurrently. This is a performance hint,
// never required for correctness — DecodeResponse never uses one
// internally. It is built on sync.Pool rather than a third-party pool,
// since the pack's pool-shaped dependency (puzpuzpuz/xsync, pulled in by
// restic) targets high-contention maps/counters, not single-object
// recycling; sync.Pool is the standard library's purpose-built answer to
// exactly this shape and is individually justified in DESIGN.md.
type AttrsArena struct {
	pool sync.Pool
}

// NewAttrsArena returns a ready-to-use arena. The zero value is also
// ready to use; this constructor exists for symmetry with the rest of
// the package's New* functions.
func NewAttrsArena() *AttrsArena {
	return &AttrsArena{
		pool: sync.Pool{New: func() any { return new(FileAttrs) }},
	}
}

// Get returns a FileAttrs pointer from the arena, zero-valued.
func (a *AttrsArena) Get() *FileAttrs {
	v, ok := a.pool.Get().(*FileAttrs)
	if !ok {
		// A zero-value AttrsArena has no New func, so Get returns nil
		// instead of a *FileAttrs the first time through.
		return new(FileAttrs)
	}
	*v = FileAttrs{}
	return v
}

// Put returns attrs to the arena for reuse. Callers must not use attrs
// after calling Put.
func (a *AttrsArena) Put(attrs *FileAttrs) {
	a.pool.Put(attrs)
}
