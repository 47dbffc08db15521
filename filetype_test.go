package sftpwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPackModeRoundTrip(t *testing.T) {
	ft, perm, err := splitMode(uint32(FileTypeRegularFile) | 0o644)
	require.NoError(t, err)
	require.Equal(t, FileTypeRegularFile, ft)
	require.Equal(t, Permissions(0o644), perm)
	require.Equal(t, uint32(FileTypeRegularFile)|0o644, packMode(ft, perm))
}

func TestSplitModeRejectsReservedType(t *testing.T) {
	_, _, err := splitMode(0o170000 | 0o644)
	require.ErrorIs(t, err, ReasonInvalidFileType)
}

func TestSplitModePreservesUnknownPermissionBits(t *testing.T) {
	// A bit above the type mask (0o170000) and the 12 documented
	// permission bits must still survive a round-trip unscathed.
	mode := uint32(FileTypeRegularFile) | 0o644 | 0x00010000
	ft, perm, err := splitMode(mode)
	require.NoError(t, err)
	require.Equal(t, mode, packMode(ft, perm))
}

func TestFileTypeIsDirIsRegular(t *testing.T) {
	require.True(t, FileTypeDirectory.IsDir())
	require.False(t, FileTypeDirectory.IsRegular())
	require.True(t, FileTypeRegularFile.IsRegular())
	require.False(t, FileTypeRegularFile.IsDir())
}

func TestFileTypeString(t *testing.T) {
	require.Equal(t, "drwxr-xr-x", FileTypeDirectory.String(0o755))
	require.Equal(t, "-rw-r--r--", FileTypeRegularFile.String(0o644))
	require.Equal(t, "lrwxrwxrwx", FileTypeSymlink.String(0o777))
}
