package sftpwire

// Permissions is a bitfield over the low 12 bits of a POSIX mode: set-uid,
// set-gid, sticky, and read/write/execute for owner/group/other. Unknown
// bits outside this range are preserved when round-tripping through the
// codec (see FileAttrs.SetPermissions).
type Permissions uint32

const (
	PermSetUID Permissions = 0o4000
	PermSetGID Permissions = 0o2000
	PermSticky Permissions = 0o1000

	PermOwnerRead  Permissions = 0o400
	PermOwnerWrite Permissions = 0o200
	PermOwnerExec  Permissions = 0o100
	PermGroupRead  Permissions = 0o040
	PermGroupWrite Permissions = 0o020
	PermGroupExec  Permissions = 0o010
	PermOtherRead  Permissions = 0o004
	PermOtherWrite Permissions = 0o002
	PermOtherExec  Permissions = 0o001
)

// modeTypeMask isolates the file-type subfield of a POSIX mode.
const modeTypeMask = 0o170000

// FileType is the file-type subfield of a POSIX mode (mode & 0o170000).
type FileType uint32

const (
	FileTypeUnspecified     FileType = 0
	FileTypeFIFO            FileType = 0o010000
	FileTypeCharacterDevice FileType = 0o020000
	FileTypeDirectory       FileType = 0o040000
	FileTypeBlockDevice     FileType = 0o060000
	FileTypeRegularFile     FileType = 0o100000
	FileTypeSymlink         FileType = 0o120000
	FileTypeSocket          FileType = 0o140000
)

// validFileType reports whether t is one of the seven POSIX file types or
// the unspecified (all-zero) value.
func validFileType(t FileType) bool {
	switch t {
	case FileTypeUnspecified, FileTypeFIFO, FileTypeCharacterDevice,
		FileTypeDirectory, FileTypeBlockDevice, FileTypeRegularFile,
		FileTypeSymlink, FileTypeSocket:
		return true
	default:
		return false
	}
}

// splitMode decodes a packed POSIX mode into its file-type and
// permissions subfields, failing with ReasonInvalidFileType if the
// file-type bits are nonzero and do not name one of the seven POSIX types.
func splitMode(mode uint32) (FileType, Permissions, error) {
	ft := FileType(mode & modeTypeMask)
	if !validFileType(ft) {
		return 0, 0, newErr(ReasonInvalidFileType)
	}
	return ft, Permissions(mode &^ modeTypeMask), nil
}

// packMode packs a file type and permissions/unknown-bit set back into a
// single POSIX mode word.
func packMode(ft FileType, perm Permissions) uint32 {
	return uint32(ft) | uint32(perm)
}

// IsDir reports whether ft is FileTypeDirectory.
func (ft FileType) IsDir() bool { return ft == FileTypeDirectory }

// IsRegular reports whether ft is FileTypeRegularFile.
func (ft FileType) IsRegular() bool { return ft == FileTypeRegularFile }

// String renders perm as a "-rwxrwxrwx"-style 10-character string, with
// the leading character taken from ft (d for directory, l for symlink,
// c for character device, b for block device, p for FIFO, s for socket,
// - otherwise).
func (ft FileType) String(perm Permissions) string {
	b := make([]byte, 10)
	switch ft {
	case FileTypeDirectory:
		b[0] = 'd'
	case FileTypeSymlink:
		b[0] = 'l'
	case FileTypeCharacterDevice:
		b[0] = 'c'
	case FileTypeBlockDevice:
		b[0] = 'b'
	case FileTypeFIFO:
		b[0] = 'p'
	case FileTypeSocket:
		b[0] = 's'
	default:
		b[0] = '-'
	}
	const rwx = "rwxrwxrwx"
	for i, c := range rwx {
		if perm&(1<<uint(9-1-i)) != 0 {
			b[i+1] = byte(c)
		} else {
			b[i+1] = '-'
		}
	}
	return string(b)
}
