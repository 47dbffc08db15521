// Package transport adapts the pure sftpwire codec onto a real SSH
// channel, multiplexing requests and responses by request id. This is
// the "external collaborator" spec.md explicitly keeps out of the codec
// package: SSH dialing, request pipelining, and asynchronous response
// dispatch all live here instead.
package transport

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"

	"github.com/oxcroft/sftpwire"
)

// Dial opens an SSH connection and returns the underlying *ssh.Client,
// authenticating with the private key at privateKeyPath. It does not
// verify the server's host key (it uses ssh.InsecureIgnoreHostKey) and
// takes no host-key callback; this mirrors the teacher's own dial helper.
func Dial(user, host string, port int, privateKeyPath string) (*ssh.Client, error) {
	b, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key")
	}
	signer, err := ssh.ParsePrivateKey(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}
	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeysCallback(func() ([]ssh.Signer, error) {
				return []ssh.Signer{signer}, nil
			}),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // callers should supply a real callback in production
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	return ssh.Dial("tcp", addr, config)
}

// Client wraps an *ssh.Client to open SFTP sessions against it.
type Client struct {
	conn *ssh.Client
}

// NewClient dials and wraps the resulting connection.
func NewClient(user, host string, port int, privateKeyPath string) (*Client, error) {
	conn, err := Dial(user, host, port, privateKeyPath)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Close closes the underlying SSH connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// NewSession starts the "sftp" subsystem on the connection and performs
// the SSH_FXP_INIT/VERSION handshake.
func (c *Client) NewSession() (*Session, error) {
	sshSession, err := c.conn.NewSession()
	if err != nil {
		return nil, errors.Wrap(err, "opening ssh session")
	}
	if err := sshSession.RequestSubsystem("sftp"); err != nil {
		return nil, errors.Wrap(err, "requesting sftp subsystem")
	}
	w, err := sshSession.StdinPipe()
	if err != nil {
		return nil, err
	}
	r, err := sshSession.StdoutPipe()
	if err != nil {
		return nil, err
	}
	s := &Session{
		sshSession: sshSession,
		r:          r,
		w:          w,
		pending:    make(map[uint32]chan pendingResult),
		nextID:     1,
	}
	if err := s.handshake(); err != nil {
		return nil, err
	}
	go s.dispatchLoop()
	return s, nil
}

type pendingResult struct {
	resp sftpwire.Response
	// data and isData hold a raw SSH_FXP_DATA payload, decoded just
	// enough to strip the opcode/id/length framing (ConsumeByteString
	// aliases the read buffer) without paying for a full Response
	// allocation on the hot read path.
	data   []byte
	isData bool
	// extended and isExtendedReply hold a raw SSH_FXP_EXTENDED_REPLY body
	// (opcode and id stripped, nothing else decoded): its format is
	// specific to whichever extension the caller invoked, so the codec
	// never attempts a generic decode of it (spec.md section 4.5).
	extended       []byte
	isExtendedReply bool
	err             error
}

// Session is a live SFTP session: one dispatch goroutine demultiplexes
// responses read off r into per-request-id channels, adapted from the
// teacher's reader.go/session.go id-keyed channel map.
type Session struct {
	sshSession *ssh.Session
	r          io.Reader
	w          io.Writer

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[uint32]chan pendingResult
	nextID  uint32

	version sftpwire.ServerVersion
}

// Version returns the negotiated server handshake result.
func (s *Session) Version() sftpwire.ServerVersion { return s.version }

// Close closes the underlying SSH session.
func (s *Session) Close() error {
	return s.sshSession.Close()
}

func (s *Session) handshake() error {
	if err := s.writeFramed(sftpwire.EncodeInit(3)); err != nil {
		return errors.Wrap(err, "writing init")
	}
	payload, err := readPacket(s.r)
	if err != nil {
		return errors.Wrap(err, "reading version")
	}
	if len(payload) < 1 || sftpwire.PacketType(payload[0]) != sftpwire.PacketTypeVersion {
		return errors.New("expected SSH_FXP_VERSION as the first response")
	}
	sv, err := sftpwire.DecodeServerVersion(payload[1:])
	if err != nil {
		return err
	}
	if sv.Version != 3 {
		return errors.Errorf("unsupported SFTP version %d", sv.Version)
	}
	s.version = sv
	return nil
}

func (s *Session) writeFramed(body []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, err := s.w.Write(frame(body))
	return err
}

// AllocID returns the next client-chosen request id.
func (s *Session) AllocID() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// Do sends kind under a freshly allocated request id and blocks for the
// matching response. It must not be used for ReadRequest (successful
// reads arrive as raw SSH_FXP_DATA: use DoRead) or for an extended
// request whose reply is SSH_FXP_EXTENDED_REPLY rather than a Status/
// Name/Attrs/Handle response (use DoExtended; limits@openssh.com and
// statvfs@openssh.com are the OpenSSH-portable extensions that do this).
func (s *Session) Do(kind sftpwire.RequestKind) (sftpwire.Response, error) {
	result, err := s.do(kind)
	if err != nil {
		return sftpwire.Response{}, err
	}
	if result.isData {
		return sftpwire.Response{}, errors.New("unexpected SSH_FXP_DATA for a non-read request")
	}
	if result.isExtendedReply {
		return sftpwire.Response{}, errors.New("unexpected SSH_FXP_EXTENDED_REPLY: use DoExtended")
	}
	return result.resp, nil
}

// DoExtended sends an extended request whose server reply is an opaque
// SSH_FXP_EXTENDED_REPLY body (id and opcode stripped, nothing else
// decoded: the payload format is specific to the extension invoked).
func (s *Session) DoExtended(kind sftpwire.RequestKind) ([]byte, error) {
	result, err := s.do(kind)
	if err != nil {
		return nil, err
	}
	if result.isExtendedReply {
		return result.extended, nil
	}
	if st, ok := result.resp.Kind.(sftpwire.StatusResponse); ok {
		return nil, statusError(st)
	}
	return nil, errors.Errorf("unexpected response to extended request: %T", result.resp.Kind)
}

// DoRead sends a ReadRequest and returns the raw data payload. At read
// end the server replies with a Status response instead of Data; DoRead
// surfaces that as status (non-nil) with data nil, leaving interpretation
// (usually SSH_FX_EOF) to the caller.
func (s *Session) DoRead(kind sftpwire.ReadRequest) (data []byte, status *sftpwire.StatusResponse, err error) {
	result, err := s.do(kind)
	if err != nil {
		return nil, nil, err
	}
	if result.isData {
		return result.data, nil, nil
	}
	st, ok := result.resp.Kind.(sftpwire.StatusResponse)
	if !ok {
		return nil, nil, errors.Errorf("unexpected response to SSH_FXP_READ: %T", result.resp.Kind)
	}
	return nil, &st, nil
}

func (s *Session) do(kind sftpwire.RequestKind) (pendingResult, error) {
	id := s.AllocID()
	ch := make(chan pendingResult, 1)
	s.mu.Lock()
	s.pending[id] = ch
	s.mu.Unlock()

	if err := s.writeFramed(sftpwire.EncodeRequest(sftpwire.Request{ID: id, Kind: kind})); err != nil {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
		return pendingResult{}, errors.Wrap(err, "writing request")
	}

	result, ok := <-ch
	if !ok {
		return pendingResult{}, errors.New("session closed before response arrived")
	}
	if result.err != nil {
		return pendingResult{}, result.err
	}
	return result, nil
}

// dispatchLoop is the teacher's reader.go handler, rewritten against the
// new codec: one goroutine reads framed packets and routes each decoded
// Response to the channel registered for its id.
func (s *Session) dispatchLoop() {
	for {
		payload, err := readPacket(s.r)
		if err != nil {
			s.failAllPending(err)
			return
		}
		if len(payload) < 1 {
			s.failAllPending(errors.New("empty packet"))
			return
		}
		opcode := sftpwire.PacketType(payload[0])

		if sftpwire.IsDataOpcode(opcode) {
			buf := sftpwire.NewBuffer(payload[1:])
			id, err := buf.ConsumeUint32()
			if err != nil {
				s.failAllPending(err)
				return
			}
			data, err := buf.ConsumeByteString()
			if err != nil {
				s.failAllPending(err)
				return
			}
			s.deliver(id, pendingResult{data: data, isData: true})
			continue
		}

		if sftpwire.IsExtendedReplyOpcode(opcode) {
			buf := sftpwire.NewBuffer(payload[1:])
			id, err := buf.ConsumeUint32()
			if err != nil {
				s.failAllPending(err)
				return
			}
			s.deliver(id, pendingResult{extended: buf.Bytes(), isExtendedReply: true})
			continue
		}

		resp, decErr := sftpwire.DecodeResponse(payload)
		if decErr != nil {
			s.failAllPending(decErr)
			return
		}
		s.deliver(resp.ID, pendingResult{resp: resp})
	}
}

func (s *Session) deliver(id uint32, result pendingResult) {
	s.mu.Lock()
	ch, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	s.mu.Unlock()
	if ok {
		ch <- result
	}
}

func (s *Session) failAllPending(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.pending {
		ch <- pendingResult{err: err}
		delete(s.pending, id)
	}
}
