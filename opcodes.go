package sftpwire

// PacketType is the leading byte discriminant of every SFTP v3 packet.
type PacketType uint8

// The following values are defined for packet types, per
// draft-ietf-secsh-filexfer-02 section 3, plus the OpenSSH-portable
// SSH_FXP_EXTENDED/SSH_FXP_EXTENDED_REPLY pair.
const (
	PacketTypeInit    PacketType = 1
	PacketTypeVersion PacketType = 2

	PacketTypeOpen     PacketType = 3
	PacketTypeClose    PacketType = 4
	PacketTypeRead     PacketType = 5
	PacketTypeWrite    PacketType = 6
	PacketTypeLStat    PacketType = 7
	PacketTypeFStat    PacketType = 8
	PacketTypeSetstat  PacketType = 9
	PacketTypeFSetstat PacketType = 10
	PacketTypeOpenDir  PacketType = 11
	PacketTypeReadDir  PacketType = 12
	PacketTypeRemove   PacketType = 13
	PacketTypeMkdir    PacketType = 14
	PacketTypeRmdir    PacketType = 15
	PacketTypeRealPath PacketType = 16
	PacketTypeStat     PacketType = 17
	PacketTypeRename   PacketType = 18
	PacketTypeReadLink PacketType = 19
	PacketTypeSymlink  PacketType = 20

	PacketTypeStatus        PacketType = 101
	PacketTypeHandle        PacketType = 102
	PacketTypeData          PacketType = 103
	PacketTypeName          PacketType = 104
	PacketTypeAttrs         PacketType = 105
	PacketTypeExtended      PacketType = 200
	PacketTypeExtendedReply PacketType = 201
)

// Status codes for SSH_FXP_STATUS, per draft-ietf-secsh-filexfer-02 section 7.
const (
	SSHFxOk               = 0
	SSHFxEOF              = 1
	SSHFxNoSuchFile       = 2
	SSHFxPermissionDenied = 3
	SSHFxFailure          = 4
	SSHFxBadMessage       = 5
	SSHFxNoConnection     = 6
	SSHFxConnectionLost   = 7
	SSHFxOpUnsupported    = 8
)

// Attribute flag masks for the FileAttrs presence bitmap.
const (
	AttrFlagSize        = 0x00000001
	AttrFlagUIDGID      = 0x00000002
	AttrFlagPermissions = 0x00000004
	AttrFlagACModTime   = 0x00000008
	AttrFlagExtended    = 0x80000000
)

// Open-file pflags, per draft-ietf-secsh-filexfer-02 section 6.3.
const (
	FlagRead      = 0x00000001
	FlagWrite     = 0x00000002
	FlagAppend    = 0x00000004
	FlagCreate    = 0x00000008
	FlagTruncate  = 0x00000010
	FlagExclusive = 0x00000020
)

// DefaultMaxPacketLength is the packet-length ceiling recommended by
// draft-ietf-secsh-filexfer-02 section 3. It is a hint for transports, not
// enforced by the codec.
const DefaultMaxPacketLength = 34000
