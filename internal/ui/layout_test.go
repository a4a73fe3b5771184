package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "/very/lo…", Truncate("/very/long/path", 9))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "", Truncate("", 0))
}

func TestSpaceBetween(t *testing.T) {
	assert.Equal(t, "left   right", SpaceBetween("left", "right", 12))
	assert.Equal(t, "left ", SpaceBetween("left", "right", 8))
	assert.Equal(t, "left", SpaceBetween("left", "", 4))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a | b", JoinNonEmpty(" | ", "a", "", "b"))
	assert.Equal(t, "", JoinNonEmpty(" | "))
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, LightTheme(), ThemeByName("light"))
	assert.Equal(t, DarkTheme(), ThemeByName("dark"))
	assert.Equal(t, DarkTheme(), ThemeByName("neon"))
}
