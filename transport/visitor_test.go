package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxcroft/sftpwire"
)

func entryWithSize(name string, size uint64) sftpwire.NameEntry {
	var attrs sftpwire.FileAttrs
	attrs.SetSize(size)
	return sftpwire.NameEntry{Filename: name, Attrs: attrs}
}

func TestUnseenVisitorAcceptsNewEntry(t *testing.T) {
	v := NewUnseenVisitor(nil, nil)
	require.True(t, v.Visit("/share", entryWithSize("file1.txt", 10)))
	require.Len(t, v.Found(), 1)
	require.Equal(t, "/share", v.Found()[0].DirPath)
}

func TestUnseenVisitorSkipsExcluded(t *testing.T) {
	v := NewUnseenVisitor(nil, []string{"/share/file1.txt"})
	require.False(t, v.Visit("/share", entryWithSize("file1.txt", 10)))
	require.Empty(t, v.Found())
}

func TestUnseenVisitorSkipsUnchangedSize(t *testing.T) {
	seen := map[string]sftpwire.NameEntry{
		"/share/file1.txt": entryWithSize("file1.txt", 10),
	}
	v := NewUnseenVisitor(seen, nil)
	require.False(t, v.Visit("/share", entryWithSize("file1.txt", 10)))
}

func TestUnseenVisitorAcceptsChangedSize(t *testing.T) {
	seen := map[string]sftpwire.NameEntry{
		"/share/file1.txt": entryWithSize("file1.txt", 10),
	}
	v := NewUnseenVisitor(seen, nil)
	require.True(t, v.Visit("/share", entryWithSize("file1.txt", 20)))
}
