package sftpwire

// RequestKind is implemented by every SSH_FXP_* request payload a client
// can send. Implementations are exhaustively matched on by EncodeRequest
// via requestType(); no open-ended dispatch is needed (spec.md section 9).
type RequestKind interface {
	requestType() PacketType
	marshalPayload(buf *Buffer)
	wireLen() int
}

// Request pairs a client-chosen request id with a request payload. id is
// echoed back by the server in the matching Response (spec.md section 3).
type Request struct {
	ID   uint32
	Kind RequestKind
}

// EncodeRequest serializes r as: u8 opcode, u32 request id, payload...,
// per spec.md section 4.4. Two independent calls with equal r produce
// byte-identical output (spec.md section 5).
func EncodeRequest(r Request) []byte {
	buf := NewMarshalBuffer(9 + r.Kind.wireLen())
	buf.StartHeader(r.Kind.requestType(), r.ID)
	r.Kind.marshalPayload(buf)
	return buf.Bytes()
}

// EncodeInit serializes the SSH_FXP_INIT handshake packet: u8 opcode=1,
// u32 version. Unlike every other request, INIT carries no request id
// (spec.md section 8, scenario 1).
func EncodeInit(version uint32) []byte {
	buf := NewMarshalBuffer(4)
	buf.AppendUint8(uint8(PacketTypeInit))
	buf.AppendUint32(version)
	return buf.Bytes()
}

// handleLen/stringLen are small helpers so each Kind's wireLen
// reads the same as its marshalPayload.
func stringLen(s string) int { return 4 + len(s) }
func handleLen(h Handle) int { return 4 + len(h) }

// OpenRequest is SSH_FXP_OPEN.
type OpenRequest struct {
	Filename string
	PFlags   uint32
	Attrs    FileAttrs
}

func (r OpenRequest) requestType() PacketType { return PacketTypeOpen }
func (r OpenRequest) wireLen() int            { return stringLen(r.Filename) + 4 + r.Attrs.wireLen() }
func (r OpenRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(r.Filename)
	buf.AppendUint32(r.PFlags)
	r.Attrs.marshalInto(buf)
}

// CloseRequest is SSH_FXP_CLOSE.
type CloseRequest struct{ Handle Handle }

func (r CloseRequest) requestType() PacketType    { return PacketTypeClose }
func (r CloseRequest) wireLen() int               { return handleLen(r.Handle) }
func (r CloseRequest) marshalPayload(buf *Buffer) { buf.AppendByteString(r.Handle) }

// ReadRequest is SSH_FXP_READ.
type ReadRequest struct {
	Handle Handle
	Offset uint64
	Len    uint32
}

func (r ReadRequest) requestType() PacketType { return PacketTypeRead }
func (r ReadRequest) wireLen() int             { return handleLen(r.Handle) + 8 + 4 }
func (r ReadRequest) marshalPayload(buf *Buffer) {
	buf.AppendByteString(r.Handle)
	buf.AppendUint64(r.Offset)
	buf.AppendUint32(r.Len)
}

// WriteRequest is SSH_FXP_WRITE. Because a single write may carry many
// megabytes of payload, prefer EncodeWriteRequestHeader over EncodeRequest
// on the hot path: it never copies Data.
type WriteRequest struct {
	Handle Handle
	Offset uint64
	Data   []byte
}

func (r WriteRequest) requestType() PacketType { return PacketTypeWrite }
func (r WriteRequest) wireLen() int             { return handleLen(r.Handle) + 8 + 4 + len(r.Data) }
func (r WriteRequest) marshalPayload(buf *Buffer) {
	buf.AppendByteString(r.Handle)
	buf.AppendUint64(r.Offset)
	buf.AppendByteString(r.Data)
}

// EncodeWriteRequestHeader serializes the opcode, request id, handle,
// offset, and data-length fields of a Write request into a fresh scratch
// buffer, without touching data. The caller is expected to write the
// returned header immediately followed by data directly to the
// transport: the codec never copies the write payload (spec.md section
// 4.4/5).
func EncodeWriteRequestHeader(requestID uint32, handle Handle, offset uint64, dataLen int) []byte {
	buf := NewMarshalBuffer(handleLen(handle) + 8 + 4)
	buf.StartHeader(PacketTypeWrite, requestID)
	buf.AppendByteString(handle)
	buf.AppendUint64(offset)
	buf.AppendUint32(uint32(dataLen))
	return buf.Bytes()
}

// LstatRequest is SSH_FXP_LSTAT.
type LstatRequest struct{ Path string }

func (r LstatRequest) requestType() PacketType    { return PacketTypeLStat }
func (r LstatRequest) wireLen() int               { return stringLen(r.Path) }
func (r LstatRequest) marshalPayload(buf *Buffer) { buf.AppendString(r.Path) }

// FstatRequest is SSH_FXP_FSTAT.
type FstatRequest struct{ Handle Handle }

func (r FstatRequest) requestType() PacketType    { return PacketTypeFStat }
func (r FstatRequest) wireLen() int               { return handleLen(r.Handle) }
func (r FstatRequest) marshalPayload(buf *Buffer) { buf.AppendByteString(r.Handle) }

// SetstatRequest is SSH_FXP_SETSTAT.
type SetstatRequest struct {
	Path  string
	Attrs FileAttrs
}

func (r SetstatRequest) requestType() PacketType { return PacketTypeSetstat }
func (r SetstatRequest) wireLen() int             { return stringLen(r.Path) + r.Attrs.wireLen() }
func (r SetstatRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(r.Path)
	r.Attrs.marshalInto(buf)
}

// FsetstatRequest is SSH_FXP_FSETSTAT.
type FsetstatRequest struct {
	Handle Handle
	Attrs  FileAttrs
}

func (r FsetstatRequest) requestType() PacketType { return PacketTypeFSetstat }
func (r FsetstatRequest) wireLen() int             { return handleLen(r.Handle) + r.Attrs.wireLen() }
func (r FsetstatRequest) marshalPayload(buf *Buffer) {
	buf.AppendByteString(r.Handle)
	r.Attrs.marshalInto(buf)
}

// OpendirRequest is SSH_FXP_OPENDIR.
type OpendirRequest struct{ Path string }

func (r OpendirRequest) requestType() PacketType    { return PacketTypeOpenDir }
func (r OpendirRequest) wireLen() int               { return stringLen(r.Path) }
func (r OpendirRequest) marshalPayload(buf *Buffer) { buf.AppendString(r.Path) }

// ReaddirRequest is SSH_FXP_READDIR.
type ReaddirRequest struct{ Handle Handle }

func (r ReaddirRequest) requestType() PacketType    { return PacketTypeReadDir }
func (r ReaddirRequest) wireLen() int               { return handleLen(r.Handle) }
func (r ReaddirRequest) marshalPayload(buf *Buffer) { buf.AppendByteString(r.Handle) }

// RemoveRequest is SSH_FXP_REMOVE.
type RemoveRequest struct{ Path string }

func (r RemoveRequest) requestType() PacketType    { return PacketTypeRemove }
func (r RemoveRequest) wireLen() int               { return stringLen(r.Path) }
func (r RemoveRequest) marshalPayload(buf *Buffer) { buf.AppendString(r.Path) }

// MkdirRequest is SSH_FXP_MKDIR.
type MkdirRequest struct {
	Path  string
	Attrs FileAttrs
}

func (r MkdirRequest) requestType() PacketType { return PacketTypeMkdir }
func (r MkdirRequest) wireLen() int             { return stringLen(r.Path) + r.Attrs.wireLen() }
func (r MkdirRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(r.Path)
	r.Attrs.marshalInto(buf)
}

// RmdirRequest is SSH_FXP_RMDIR.
type RmdirRequest struct{ Path string }

func (r RmdirRequest) requestType() PacketType    { return PacketTypeRmdir }
func (r RmdirRequest) wireLen() int               { return stringLen(r.Path) }
func (r RmdirRequest) marshalPayload(buf *Buffer) { buf.AppendString(r.Path) }

// RealpathRequest is SSH_FXP_REALPATH.
type RealpathRequest struct{ Path string }

func (r RealpathRequest) requestType() PacketType    { return PacketTypeRealPath }
func (r RealpathRequest) wireLen() int               { return stringLen(r.Path) }
func (r RealpathRequest) marshalPayload(buf *Buffer) { buf.AppendString(r.Path) }

// StatRequest is SSH_FXP_STAT.
type StatRequest struct{ Path string }

func (r StatRequest) requestType() PacketType    { return PacketTypeStat }
func (r StatRequest) wireLen() int               { return stringLen(r.Path) }
func (r StatRequest) marshalPayload(buf *Buffer) { buf.AppendString(r.Path) }

// RenameRequest is SSH_FXP_RENAME.
type RenameRequest struct{ OldPath, NewPath string }

func (r RenameRequest) requestType() PacketType { return PacketTypeRename }
func (r RenameRequest) wireLen() int             { return stringLen(r.OldPath) + stringLen(r.NewPath) }
func (r RenameRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(r.OldPath)
	buf.AppendString(r.NewPath)
}

// ReadlinkRequest is SSH_FXP_READLINK.
type ReadlinkRequest struct{ Path string }

func (r ReadlinkRequest) requestType() PacketType    { return PacketTypeReadLink }
func (r ReadlinkRequest) wireLen() int               { return stringLen(r.Path) }
func (r ReadlinkRequest) marshalPayload(buf *Buffer) { buf.AppendString(r.Path) }

// SymlinkRequest is SSH_FXP_SYMLINK. Per OpenSSH convention (the opposite
// of most man pages), the wire order is target first, link second.
type SymlinkRequest struct{ TargetPath, LinkPath string }

func (r SymlinkRequest) requestType() PacketType { return PacketTypeSymlink }
func (r SymlinkRequest) wireLen() int             { return stringLen(r.TargetPath) + stringLen(r.LinkPath) }
func (r SymlinkRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(r.TargetPath)
	buf.AppendString(r.LinkPath)
}

// LimitsRequest is the limits@openssh.com extended request: no extra
// payload beyond the extension name.
type LimitsRequest struct{}

func (LimitsRequest) requestType() PacketType { return PacketTypeExtended }
func (LimitsRequest) wireLen() int             { return stringLen(ExtNameLimits) }
func (LimitsRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(ExtNameLimits)
}

// ExpandPathRequest is the expand-path@openssh.com extended request.
type ExpandPathRequest struct{ Path string }

func (ExpandPathRequest) requestType() PacketType { return PacketTypeExtended }
func (r ExpandPathRequest) wireLen() int           { return stringLen(ExtNameExpandPath) + stringLen(r.Path) }
func (r ExpandPathRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(ExtNameExpandPath)
	buf.AppendString(r.Path)
}

// LsetstatRequest is the lsetstat@openssh.com extended request.
type LsetstatRequest struct {
	Path  string
	Attrs FileAttrs
}

func (LsetstatRequest) requestType() PacketType { return PacketTypeExtended }
func (r LsetstatRequest) wireLen() int {
	return stringLen(ExtNameLsetstat) + stringLen(r.Path) + r.Attrs.wireLen()
}
func (r LsetstatRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(ExtNameLsetstat)
	buf.AppendString(r.Path)
	r.Attrs.marshalInto(buf)
}

// FsyncRequest is the fsync@openssh.com extended request.
type FsyncRequest struct{ Handle Handle }

func (FsyncRequest) requestType() PacketType { return PacketTypeExtended }
func (r FsyncRequest) wireLen() int           { return stringLen(ExtNameFsync) + handleLen(r.Handle) }
func (r FsyncRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(ExtNameFsync)
	buf.AppendByteString(r.Handle)
}

// HardLinkRequest is the hardlink@openssh.com extended request.
type HardLinkRequest struct{ OldPath, NewPath string }

func (HardLinkRequest) requestType() PacketType { return PacketTypeExtended }
func (r HardLinkRequest) wireLen() int {
	return stringLen(ExtNameHardlink) + stringLen(r.OldPath) + stringLen(r.NewPath)
}
func (r HardLinkRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(ExtNameHardlink)
	buf.AppendString(r.OldPath)
	buf.AppendString(r.NewPath)
}

// PosixRenameRequest is the posix-rename@openssh.com extended request.
type PosixRenameRequest struct{ OldPath, NewPath string }

func (PosixRenameRequest) requestType() PacketType { return PacketTypeExtended }
func (r PosixRenameRequest) wireLen() int {
	return stringLen(ExtNamePosixRename) + stringLen(r.OldPath) + stringLen(r.NewPath)
}
func (r PosixRenameRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(ExtNamePosixRename)
	buf.AppendString(r.OldPath)
	buf.AppendString(r.NewPath)
}

// CpRequest is the copy-data extended request (copy-data@openssh.com in
// some servers, "copy-data" per spec.md's table).
type CpRequest struct {
	ReadHandle   Handle
	ReadOffset   uint64
	ReadLen      uint64
	WriteHandle  Handle
	WriteOffset  uint64
}

func (CpRequest) requestType() PacketType { return PacketTypeExtended }
func (r CpRequest) wireLen() int {
	return stringLen(ExtNameCopyData) + handleLen(r.ReadHandle) + 8 + 8 + handleLen(r.WriteHandle) + 8
}
func (r CpRequest) marshalPayload(buf *Buffer) {
	buf.AppendString(ExtNameCopyData)
	buf.AppendByteString(r.ReadHandle)
	buf.AppendUint64(r.ReadOffset)
	buf.AppendUint64(r.ReadLen)
	buf.AppendByteString(r.WriteHandle)
	buf.AppendUint64(r.WriteOffset)
}
