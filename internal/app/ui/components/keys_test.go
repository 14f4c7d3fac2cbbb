package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.Search.Keys(), "/")
	assert.Contains(t, km.Next.Keys(), "n")
	assert.Contains(t, km.Prev.Keys(), "N")
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.ForceQuit.Keys(), "ctrl+c")

	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.FullHelp(), 3)
}

func Test_DefaultSearchKeyMap(t *testing.T) {
	km := DefaultSearchKeyMap()

	assert.Contains(t, km.Submit.Keys(), "enter")
	assert.Contains(t, km.Cancel.Keys(), "esc")
	assert.Len(t, km.ShortHelp(), 4)
	assert.Len(t, km.FullHelp(), 1)
}
