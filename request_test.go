package sftpwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeInitScenario(t *testing.T) {
	// spec.md section 8 scenario 1.
	got := EncodeInit(3)
	want := []byte{0x01, 0x00, 0x00, 0x00, 0x03}
	require.Equal(t, want, got)
}

func TestEncodeRequestCloseScenario(t *testing.T) {
	// spec.md section 8 scenario 2.
	got := EncodeRequest(Request{ID: 7, Kind: CloseRequest{Handle: Handle{0xAA, 0xBB}}})
	want := []byte{0x04, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00, 0x02, 0xAA, 0xBB}
	require.Equal(t, want, got)
}

func TestEncodeRequestReadScenario(t *testing.T) {
	// spec.md section 8 scenario 3.
	got := EncodeRequest(Request{
		ID: 1,
		Kind: ReadRequest{
			Handle: Handle{0x01},
			Offset: 0,
			Len:    4096,
		},
	})
	want := []byte{
		0x05, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x01, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x10, 0x00,
	}
	require.Equal(t, want, got)
}

func TestEncodeWriteRequestHeaderLeavesDataUntouched(t *testing.T) {
	header := EncodeWriteRequestHeader(9, Handle{0x01, 0x02}, 128, 3)
	want := []byte{
		0x06, 0x00, 0x00, 0x00, 0x09,
		0x00, 0x00, 0x00, 0x02, 0x01, 0x02,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80,
		0x00, 0x00, 0x00, 0x03,
	}
	require.Equal(t, want, header)
}

func TestEncodeRequestIsDeterministic(t *testing.T) {
	r := Request{ID: 42, Kind: OpendirRequest{Path: "/tmp"}}
	a := EncodeRequest(r)
	b := EncodeRequest(r)
	require.Equal(t, a, b)
}

func TestEncodeExtendedRequestPrefixesExtensionName(t *testing.T) {
	got := EncodeRequest(Request{
		ID:   3,
		Kind: HardLinkRequest{OldPath: "/a", NewPath: "/b"},
	})
	// opcode(1) id(4) extension-name-string extension-payload
	require.Equal(t, byte(PacketTypeExtended), got[0])
	buf := NewBuffer(got[5:])
	name, err := buf.ConsumeString()
	require.NoError(t, err)
	require.Equal(t, ExtNameHardlink, name)
	oldPath, err := buf.ConsumeString()
	require.NoError(t, err)
	require.Equal(t, "/a", oldPath)
	newPath, err := buf.ConsumeString()
	require.NoError(t, err)
	require.Equal(t, "/b", newPath)
}

func TestOpenOptionsPFlags(t *testing.T) {
	o := NewOpenOptions().Read(true)
	req := o.Open("/x")
	require.Equal(t, uint32(FlagRead), req.PFlags)

	o2 := NewOpenOptions().Write(true).Append(true)
	req2 := o2.Open("/y")
	require.Equal(t, uint32(FlagWrite|FlagAppend), req2.PFlags)
}

func TestOpenOptionsCreate(t *testing.T) {
	req := NewOpenOptions().Write(true).Create("/new", CreateExclusive, FileAttrs{})
	require.Equal(t, uint32(FlagWrite|FlagCreate|FlagExclusive), req.PFlags)
}
