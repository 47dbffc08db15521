package transport

import (
	"io"
	"path"

	"github.com/pkg/errors"

	"github.com/oxcroft/sftpwire"
)

// Ls lists the contents of remotePath, adapted from the teacher's
// intended Session.Ls (test/usftp_test.go) against the new codec:
// Opendir, then Readdir in a loop until the server signals Eof.
func (s *Session) Ls(remotePath string) ([]sftpwire.NameEntry, error) {
	resp, err := s.Do(sftpwire.OpendirRequest{Path: remotePath})
	if err != nil {
		return nil, err
	}
	h, ok := resp.Kind.(sftpwire.HandleResponse)
	if !ok {
		return nil, statusOrUnexpected(resp, "SSH_FXP_OPENDIR")
	}
	defer s.closeHandle(h.Handle)

	var entries []sftpwire.NameEntry
	for {
		resp, err := s.Do(sftpwire.ReaddirRequest{Handle: h.Handle.Borrow()})
		if err != nil {
			return nil, err
		}
		switch k := resp.Kind.(type) {
		case sftpwire.NameResponse:
			entries = append(entries, k.Entries...)
		case sftpwire.StatusResponse:
			if k.Code.IsEOF() {
				return entries, nil
			}
			return nil, statusError(k)
		default:
			return nil, errors.Errorf("unexpected response to SSH_FXP_READDIR: %T", resp.Kind)
		}
	}
}

// Get reads the whole contents of remotePath into w, adapted from the
// teacher's intended Session.Get: Open, then Read in a loop until Eof.
func (s *Session) Get(remotePath string, w io.Writer) error {
	open := sftpwire.NewOpenOptions().Read(true).Open(remotePath)
	resp, err := s.Do(open)
	if err != nil {
		return err
	}
	h, ok := resp.Kind.(sftpwire.HandleResponse)
	if !ok {
		return statusOrUnexpected(resp, "SSH_FXP_OPEN")
	}
	defer s.closeHandle(h.Handle)

	const chunk = 32 * 1024
	var offset uint64
	for {
		data, status, err := s.DoRead(sftpwire.ReadRequest{Handle: h.Handle.Borrow(), Offset: offset, Len: chunk})
		if err != nil {
			return err
		}
		if status != nil {
			if status.Code.IsEOF() {
				return nil
			}
			return statusError(*status)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		offset += uint64(len(data))
	}
}

func (s *Session) closeHandle(h sftpwire.OwnedHandle) {
	_, _ = s.Do(sftpwire.CloseRequest{Handle: h.Borrow()})
}

func statusError(s sftpwire.StatusResponse) error {
	code, _ := s.Code.Failure()
	return errors.Errorf("sftp: %s: %s", code, s.ErrMsg.Message)
}

func statusOrUnexpected(resp sftpwire.Response, op string) error {
	if st, ok := resp.Kind.(sftpwire.StatusResponse); ok {
		return statusError(st)
	}
	return errors.Errorf("unexpected response to %s: %T", op, resp.Kind)
}

// RemoteJoin joins SFTP path segments using the protocol's always-forward-
// slash convention, regardless of the client's native OS path separator.
func RemoteJoin(elem ...string) string { return path.Join(elem...) }
