//go:build linux

package desktop

import (
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestAtomBytesRoundTrip(t *testing.T) {
	value := atomBytes(xproto.Atom(301), xproto.Atom(77), xproto.Atom(0x10203))
	assert.Len(t, value, 12)

	assert.True(t, containsAtom(value, 77))
	assert.True(t, containsAtom(value, 0x10203))
	assert.False(t, containsAtom(value, 78))
}

func TestContainsAtomIgnoresTrailingBytes(t *testing.T) {
	value := append(atomBytes(5), 9, 0, 0)
	assert.True(t, containsAtom(value, 5))
	assert.False(t, containsAtom(value, 9))
	assert.False(t, containsAtom(nil, 5))
}

func TestX11RequiresDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	_, err := New()
	assert.ErrorIs(t, err, ErrUnsupported)
}
