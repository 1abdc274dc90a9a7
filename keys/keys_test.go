package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/tabhop/navigator"
)

func TestEveryBindingHasAStringEntry(t *testing.T) {
	for str, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		require.True(t, ok, "no binding for %q", str)
		assert.Contains(t, binding.Keys(), str)
	}
}

func TestDirectionCoversAllDirections(t *testing.T) {
	want := map[KeyName]navigator.Direction{
		KeyLeft:  navigator.DirLeft,
		KeyRight: navigator.DirRight,
		KeyUp:    navigator.DirUp,
		KeyDown:  navigator.DirDown,
		KeyPrev:  navigator.DirPrev,
		KeyNext:  navigator.DirNext,
	}
	for name, dir := range want {
		got, ok := Direction(name)
		require.True(t, ok)
		assert.Equal(t, dir, got)
	}
}

func TestDirectionRejectsNonDirectionKeys(t *testing.T) {
	for _, name := range []KeyName{KeyActivate, KeyRefresh, KeyCopy, KeyHelp, KeyQuit} {
		_, ok := Direction(name)
		assert.False(t, ok)
	}
}

func TestApplyOverrides(t *testing.T) {
	merged := ApplyOverrides(map[string]string{
		"left":    "a",
		"right":   "d",
		"unknown": "x",
		"up":      "",
	})

	assert.Equal(t, KeyLeft, merged["a"])
	assert.Equal(t, KeyRight, merged["d"])
	_, ok := merged["x"]
	assert.False(t, ok)

	// defaults survive
	assert.Equal(t, KeyLeft, merged["h"])
	assert.Equal(t, KeyQuit, merged["q"])

	// globals untouched
	_, ok = GlobalKeyStringsMap["a"]
	assert.False(t, ok)
}
