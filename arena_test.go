package sftpwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttrsArenaGetIsZeroed(t *testing.T) {
	a := NewAttrsArena()
	attrs := a.Get()
	require.Equal(t, uint32(0), attrs.Flags())
	attrs.SetSize(10)
	a.Put(attrs)

	reused := a.Get()
	require.Equal(t, uint32(0), reused.Flags())
}

func TestAttrsArenaZeroValueIsReady(t *testing.T) {
	var a AttrsArena
	attrs := a.Get()
	require.Equal(t, uint32(0), attrs.Flags())
	attrs.SetSize(5)
	a.Put(attrs)
}
