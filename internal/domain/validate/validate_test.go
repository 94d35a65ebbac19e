package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNonEmpty(t *testing.T) {
	assert.True(t, IsNonEmpty("x"))
	assert.True(t, IsNonEmpty(" x "))
	assert.False(t, IsNonEmpty(""))
	assert.False(t, IsNonEmpty("   "))
	assert.False(t, IsNonEmpty("\t\n"))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com"))
	assert.True(t, IsURL("http://example.com/path?x=1"))
	assert.False(t, IsURL("example.com"))
	assert.False(t, IsURL("ftp://example.com"))
	assert.False(t, IsURL("https://"))
	assert.False(t, IsURL("not a url"))
}

func TestIsHostname(t *testing.T) {
	assert.True(t, IsHostname("example.com"))
	assert.True(t, IsHostname("shop.Example.com"))
	assert.True(t, IsHostname("my-store.example.co.uk"))
	assert.True(t, IsHostname("https://example.com"))
	assert.False(t, IsHostname(""))
	assert.False(t, IsHostname("exa mple.com"))
	assert.False(t, IsHostname("-bad.example.com"))
	assert.False(t, IsHostname("bad-.example.com"))
	assert.False(t, IsHostname("exa_mple.com"))
	assert.False(t, IsHostname("example..com"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("dev@example.com"))
	assert.True(t, IsEmail("first.last+tag@example.co"))
	assert.False(t, IsEmail("dev@"))
	assert.False(t, IsEmail("example.com"))
	assert.False(t, IsEmail("Bob <bob@example.com>"))
}

func TestIsEnumMember(t *testing.T) {
	type color string

	assert.True(t, IsEnumMember(color("red"), color("red"), color("blue")))
	assert.False(t, IsEnumMember(color("green"), color("red"), color("blue")))
	assert.False(t, IsEnumMember(color("red")))
}

func TestNumericChecks(t *testing.T) {
	assert.True(t, IsNonNegative(0))
	assert.True(t, IsNonNegative(1.5))
	assert.False(t, IsNonNegative(-0.01))

	assert.True(t, InRange(50, 0, 100))
	assert.True(t, InRange(0, 0, 100))
	assert.True(t, InRange(100, 0, 100))
	assert.False(t, InRange(-1, 0, 100))
	assert.False(t, InRange(101, 0, 100))
}
