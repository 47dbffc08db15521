package sftpwire

// Extension name/revision pairs for the OpenSSH-portable de-facto
// extensions, as advertised in the SSH_FXP_VERSION handshake and invoked
// via SSH_FXP_EXTENDED requests.
const (
	ExtNamePosixRename = "posix-rename@openssh.com"
	ExtRevPosixRename  = "1"

	ExtNameStatVFS = "statvfs@openssh.com"
	ExtRevStatVFS  = "2"

	ExtNameFStatVFS = "fstatvfs@openssh.com"
	ExtRevFStatVFS  = "2"

	ExtNameHardlink = "hardlink@openssh.com"
	ExtRevHardlink  = "1"

	ExtNameFsync = "fsync@openssh.com"
	ExtRevFsync  = "1"

	ExtNameLsetstat = "lsetstat@openssh.com"
	ExtRevLsetstat  = "1"

	ExtNameLimits = "limits@openssh.com"
	ExtRevLimits  = "1"

	ExtNameExpandPath = "expand-path@openssh.com"
	ExtRevExpandPath  = "1"

	ExtNameCopyData = "copy-data"
	ExtRevCopyData  = "1"
)

// ExtensionSet records which of the known OpenSSH-portable extensions a
// server advertised at handshake.
type ExtensionSet struct {
	PosixRename bool
	StatVFS     bool
	FStatVFS    bool
	Hardlink    bool
	Fsync       bool
	Lsetstat    bool
	Limits      bool
	ExpandPath  bool
	CopyData    bool
}

// setByName sets the flag for name/revision if it is a recognized
// OpenSSH-portable extension announcement. Unrecognized pairs leave the set
// unchanged and are not an error (spec: extensions are open-ended and
// unknown ones are silently ignored).
func (e *ExtensionSet) setByName(name, revision string) {
	switch name {
	case ExtNamePosixRename:
		e.PosixRename = revision == ExtRevPosixRename
	case ExtNameStatVFS:
		e.StatVFS = revision == ExtRevStatVFS
	case ExtNameFStatVFS:
		e.FStatVFS = revision == ExtRevFStatVFS
	case ExtNameHardlink:
		e.Hardlink = revision == ExtRevHardlink
	case ExtNameFsync:
		e.Fsync = revision == ExtRevFsync
	case ExtNameLsetstat:
		e.Lsetstat = revision == ExtRevLsetstat
	case ExtNameLimits:
		e.Limits = revision == ExtRevLimits
	case ExtNameExpandPath:
		e.ExpandPath = revision == ExtRevExpandPath
	case ExtNameCopyData:
		e.CopyData = revision == ExtRevCopyData
	}
}
