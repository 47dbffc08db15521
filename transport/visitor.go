package transport

import (
	"github.com/oxcroft/sftpwire"
)

// Visitor filters the entries a directory walk turns up. It is adapted
// from the teacher's NameRespFile-based visitor onto sftpwire.NameEntry,
// which carries no directory of its own: callers track it via dirPath.
type Visitor interface {
	Visit(dirPath string, entry sftpwire.NameEntry) bool
	Found() []WalkEntry
}

// WalkEntry pairs a NameEntry with the directory it was listed from.
type WalkEntry struct {
	DirPath string
	Entry   sftpwire.NameEntry
}

// UnseenVisitor accepts entries not present (or changed in size) in a
// previously known set, skipping anything under an excluded path.
type UnseenVisitor struct {
	exclude []string
	seen    map[string]sftpwire.NameEntry
	found   []WalkEntry
}

// NewUnseenVisitor builds a visitor against a prior listing, keyed by
// RemoteJoin(dirPath, filename), and a list of fully-qualified paths to
// skip outright.
func NewUnseenVisitor(seen map[string]sftpwire.NameEntry, exclude []string) *UnseenVisitor {
	return &UnseenVisitor{seen: seen, exclude: exclude}
}

// Found returns every accepted entry, in visit order.
func (u *UnseenVisitor) Found() []WalkEntry { return u.found }

func (u *UnseenVisitor) Visit(dirPath string, entry sftpwire.NameEntry) bool {
	full := RemoteJoin(dirPath, entry.Filename)
	for _, excluded := range u.exclude {
		if full == excluded {
			return false
		}
	}
	if prior, ok := u.seen[full]; ok {
		priorSize, _ := prior.Attrs.Size()
		newSize, _ := entry.Attrs.Size()
		if priorSize == newSize {
			return false
		}
	}
	u.found = append(u.found, WalkEntry{DirPath: dirPath, Entry: entry})
	return true
}

// Walk lists dirPath and every subdirectory it contains, feeding each
// non "."/".." entry to v. It is the teacher's directory-tree-walk
// pattern (visitor.go plus the original Ls-based recursion in
// session.go) rebuilt on Session.Ls.
func Walk(s *Session, dirPath string, v Visitor) error {
	entries, err := s.Ls(dirPath)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Filename == "." || entry.Filename == ".." {
			continue
		}
		if !v.Visit(dirPath, entry) {
			continue
		}
		if ft, ok := entry.Attrs.FileType(); ok && ft.IsDir() {
			if err := Walk(s, RemoteJoin(dirPath, entry.Filename), v); err != nil {
				return err
			}
		}
	}
	return nil
}
