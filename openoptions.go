package sftpwire

// CreateFlag selects the SSH_FXF_* flag OR-ed in by OpenOptions.Create in
// addition to SSH_FXF_CREAT.
type CreateFlag uint32

const (
	CreateNone      CreateFlag = 0
	CreateTruncate  CreateFlag = FlagTruncate
	CreateExclusive CreateFlag = FlagExclusive
)

// OpenOptions is a fluent builder for SSH_FXP_OPEN pflags, mirroring
// os.OpenFile's read/write/append vocabulary onto the wire bitfield
// (spec.md section 4.4).
type OpenOptions struct {
	read   bool
	write  bool
	append bool
}

// NewOpenOptions returns the zero-valued builder (every flag false).
func NewOpenOptions() OpenOptions { return OpenOptions{} }

// Read sets whether SSH_FXF_READ is requested.
func (o OpenOptions) Read(read bool) OpenOptions { o.read = read; return o }

// Write sets whether SSH_FXF_WRITE is requested.
func (o OpenOptions) Write(write bool) OpenOptions { o.write = write; return o }

// Append sets whether SSH_FXF_APPEND is requested; append implies write.
func (o OpenOptions) Append(append bool) OpenOptions { o.append = append; return o }

func (o OpenOptions) pflags() uint32 {
	var f uint32
	if o.read {
		f |= FlagRead
	}
	if o.write || o.append {
		f |= FlagWrite
	}
	if o.append {
		f |= FlagAppend
	}
	return f
}

// Open returns an OpenRequest for filename with default (empty)
// attributes and no CREAT-family flags.
func (o OpenOptions) Open(filename string) OpenRequest {
	return OpenRequest{Filename: filename, PFlags: o.pflags()}
}

// Create returns an OpenRequest for filename with SSH_FXF_CREAT OR-ed
// into the builder's flags along with flag, and the supplied attrs.
func (o OpenOptions) Create(filename string, flag CreateFlag, attrs FileAttrs) OpenRequest {
	r := o.Open(filename)
	r.PFlags |= FlagCreate | uint32(flag)
	r.Attrs = attrs
	return r
}
