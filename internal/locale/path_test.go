// SPDX-License-Identifier: MIT
package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOppositeLocalePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"english root", "/en", "/de"},
		{"german page", "/de/example-lp", "/en/example-lp"},
		{"vertical and slug", "/en/saas/example-lp", "/de/saas/example-lp"},
		{"trailing slash", "/de/a/b/", "/en/a/b"},
		{"duplicate slashes", "//en//a", "/de/a"},
		{"empty", "", "/de"},
		{"slash only", "/", "/de"},
		{"unknown first segment", "/fr/a/b", "/de/fr/a/b"},
		{"uppercase locale is not a locale", "/EN/a", "/de/EN/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OppositeLocalePath(tt.path))
		})
	}
}

func TestOppositeLocalePathRoundTrip(t *testing.T) {
	paths := []string{
		"/en/a/b",
		"/de/a/b",
		"/en/example-lp",
		"/de/saas/agency-lp",
		"/en/a%20b/c.d/ä",
		"/de",
	}

	for _, p := range paths {
		once := OppositeLocalePath(p)
		_, before, _ := Split(p)
		_, after, _ := Split(once)
		assert.Equal(t, before, after, "segments after the locale must be identical")
		assert.Equal(t, p, OppositeLocalePath(once))
	}
}

func TestSplit(t *testing.T) {
	l, rest, ok := Split("/de/saas/example-lp")
	assert.True(t, ok)
	assert.Equal(t, German, l)
	assert.Equal(t, []string{"saas", "example-lp"}, rest)

	l, rest, ok = Split("/about/team")
	assert.False(t, ok)
	assert.Equal(t, English, l)
	assert.Equal(t, []string{"about", "team"}, rest)
}

func TestLocalePath(t *testing.T) {
	assert.Equal(t, "/en/x", LocalePath("/en/x", English))
	assert.Equal(t, "/de/x", LocalePath("/en/x", German))
	assert.Equal(t, "/de/privacy", LocalePath("/privacy", German))
}
