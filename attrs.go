package sftpwire

// FileAttrs is the sparse, presence-bitmapped attribute record of
// spec.md section 3/4.3. A field's bit in flags is set if and only if
// the field is present on the wire; getters expose present/absent,
// setters unconditionally mark the corresponding bit.
type FileAttrs struct {
	flags uint32

	size uint64
	uid  uint32
	gid  uint32
	mode uint32 // permissions packed with file-type bits
	atime UnixTimeStamp
	mtime UnixTimeStamp
}

// Size returns the SIZE field and whether it is present.
func (a FileAttrs) Size() (uint64, bool) {
	return a.size, a.flags&AttrFlagSize != 0
}

// SetSize sets the SIZE field and its presence bit.
func (a *FileAttrs) SetSize(size uint64) {
	a.size = size
	a.flags |= AttrFlagSize
}

// UnsetSize clears the SIZE field's presence bit.
func (a *FileAttrs) UnsetSize() { a.flags &^= AttrFlagSize }

// IDs returns the uid/gid pair and whether the ID field is present.
func (a FileAttrs) IDs() (uid, gid uint32, present bool) {
	return a.uid, a.gid, a.flags&AttrFlagUIDGID != 0
}

// SetIDs sets the uid/gid pair and its presence bit.
func (a *FileAttrs) SetIDs(uid, gid uint32) {
	a.uid, a.gid = uid, gid
	a.flags |= AttrFlagUIDGID
}

// UnsetIDs clears the ID field's presence bit.
func (a *FileAttrs) UnsetIDs() { a.flags &^= AttrFlagUIDGID }

// Permissions returns the permission bits (file-type bits masked out) and
// whether the PERMISSIONS field is present.
func (a FileAttrs) Permissions() (Permissions, bool) {
	_, perm, _ := splitMode(a.mode) //nolint:errcheck // a.mode was validated on construction/decode
	return perm, a.flags&AttrFlagPermissions != 0
}

// FileType returns the file-type subfield of mode and whether the
// PERMISSIONS field is present (the file type rides along with
// permissions on the wire).
func (a FileAttrs) FileType() (FileType, bool) {
	ft, _, _ := splitMode(a.mode) //nolint:errcheck // a.mode was validated on construction/decode
	return ft, a.flags&AttrFlagPermissions != 0
}

// SetPermissions sets the permission bits and marks PERMISSIONS present,
// preserving whatever file-type bits are already set on a (per spec.md
// section 4.3: "Setting Permissions via the public API must preserve the
// existing file-type bits").
func (a *FileAttrs) SetPermissions(perm Permissions) {
	ft, _, _ := splitMode(a.mode) //nolint:errcheck // a.mode was validated on construction/decode
	a.mode = packMode(ft, perm)
	a.flags |= AttrFlagPermissions
}

// SetFileType sets the file-type bits, preserving the current permission
// bits, and marks PERMISSIONS present.
func (a *FileAttrs) SetFileType(ft FileType) {
	_, perm, _ := splitMode(a.mode) //nolint:errcheck // a.mode was validated on construction/decode
	a.mode = packMode(ft, perm)
	a.flags |= AttrFlagPermissions
}

// UnsetPermissions clears the PERMISSIONS field's presence bit.
func (a *FileAttrs) UnsetPermissions() { a.flags &^= AttrFlagPermissions }

// Times returns the atime/mtime pair and whether the TIME field is
// present.
func (a FileAttrs) Times() (atime, mtime UnixTimeStamp, present bool) {
	return a.atime, a.mtime, a.flags&AttrFlagACModTime != 0
}

// SetTimes sets the atime/mtime pair and its presence bit.
func (a *FileAttrs) SetTimes(atime, mtime UnixTimeStamp) {
	a.atime, a.mtime = atime, mtime
	a.flags |= AttrFlagACModTime
}

// UnsetTimes clears the TIME field's presence bit.
func (a *FileAttrs) UnsetTimes() { a.flags &^= AttrFlagACModTime }

// Flags returns the raw presence bitmap.
func (a FileAttrs) Flags() uint32 { return a.flags }

// Equal compares two FileAttrs values field-by-field, but only over the
// fields whose flag bit is set on a (per spec.md section 4.3: two values
// with identical flag masks and identical present fields are equal
// regardless of absent-field content). Both values must have the same
// flags to be equal.
func (a FileAttrs) Equal(other FileAttrs) bool {
	if a.flags != other.flags {
		return false
	}
	if a.flags&AttrFlagSize != 0 && a.size != other.size {
		return false
	}
	if a.flags&AttrFlagUIDGID != 0 && (a.uid != other.uid || a.gid != other.gid) {
		return false
	}
	if a.flags&AttrFlagPermissions != 0 && a.mode != other.mode {
		return false
	}
	if a.flags&AttrFlagACModTime != 0 && (a.atime != other.atime || a.mtime != other.mtime) {
		return false
	}
	return true
}

// wireLen returns the number of bytes marshalInto would append, including
// the leading flags word.
func (a FileAttrs) wireLen() int {
	n := 4 // flags
	if a.flags&AttrFlagSize != 0 {
		n += 8
	}
	if a.flags&AttrFlagUIDGID != 0 {
		n += 8
	}
	if a.flags&AttrFlagPermissions != 0 {
		n += 4
	}
	if a.flags&AttrFlagACModTime != 0 {
		n += 8
	}
	return n
}

// marshalInto appends a's wire encoding to buf: the flags word, then —
// in fixed order — only the fields whose flag bit is set (size; uid,gid;
// mode; atime,mtime). FileAttrs never re-emits the EXTENDED field: it is
// always cleared on decode (spec.md section 4.3/9).
func (a FileAttrs) marshalInto(buf *Buffer) {
	buf.AppendUint32(a.flags &^ AttrFlagExtended)
	if a.flags&AttrFlagSize != 0 {
		buf.AppendUint64(a.size)
	}
	if a.flags&AttrFlagUIDGID != 0 {
		buf.AppendUint32(a.uid)
		buf.AppendUint32(a.gid)
	}
	if a.flags&AttrFlagPermissions != 0 {
		buf.AppendUint32(a.mode)
	}
	if a.flags&AttrFlagACModTime != 0 {
		buf.AppendUint32(uint32(a.atime))
		buf.AppendUint32(uint32(a.mtime))
	}
}

// unmarshalFileAttrsFrom reads the flags word and then the same ordered
// subset of fields from buf. If the EXTENDED bit is present, the trailing
// extension pairs are consumed and discarded, and the bit is cleared on
// the returned value (spec.md section 4.3/9: intentional asymmetry that
// prevents spurious re-emission on round-trip).
func unmarshalFileAttrsFrom(buf *Buffer) (FileAttrs, error) {
	var a FileAttrs
	flags, err := buf.ConsumeUint32()
	if err != nil {
		return FileAttrs{}, err
	}
	a.flags = flags

	if a.flags&AttrFlagSize != 0 {
		if a.size, err = buf.ConsumeUint64(); err != nil {
			return FileAttrs{}, err
		}
	}
	if a.flags&AttrFlagUIDGID != 0 {
		if a.uid, err = buf.ConsumeUint32(); err != nil {
			return FileAttrs{}, err
		}
		if a.gid, err = buf.ConsumeUint32(); err != nil {
			return FileAttrs{}, err
		}
	}
	if a.flags&AttrFlagPermissions != 0 {
		if a.mode, err = buf.ConsumeUint32(); err != nil {
			return FileAttrs{}, err
		}
		if _, _, err := splitMode(a.mode); err != nil {
			return FileAttrs{}, err
		}
	}
	if a.flags&AttrFlagACModTime != 0 {
		var atime, mtime uint32
		if atime, err = buf.ConsumeUint32(); err != nil {
			return FileAttrs{}, err
		}
		if mtime, err = buf.ConsumeUint32(); err != nil {
			return FileAttrs{}, err
		}
		a.atime, a.mtime = UnixTimeStamp(atime), UnixTimeStamp(mtime)
	}
	if a.flags&AttrFlagExtended != 0 {
		n, err := buf.ConsumeUint32()
		if err != nil {
			return FileAttrs{}, err
		}
		for i := uint32(0); i < n; i++ {
			if _, err := buf.ConsumeByteString(); err != nil {
				return FileAttrs{}, err
			}
			if _, err := buf.ConsumeByteString(); err != nil {
				return FileAttrs{}, err
			}
		}
		a.flags &^= AttrFlagExtended
	}
	return a, nil
}
