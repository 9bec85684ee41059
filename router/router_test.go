package router

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, root, name string) string {
	t.Helper()
	file := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte("# "+name+"\n"), 0o644))
	return file
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	index := writePage(t, root, "index.md")
	about := writePage(t, root, "about.md")
	project := writePage(t, root, "projects/framestate-rp.md")
	r := New(root)

	cases := map[string]string{
		"/":                       index,
		"/about":                  about,
		"/about/":                 about,
		"/about?ref=search":       about,
		"/projects/framestate-rp": project,
	}
	for sitePath, want := range cases {
		got, err := r.Resolve(sitePath)
		require.NoError(t, err, sitePath)
		assert.Equal(t, want, got, sitePath)
	}
}

func TestResolve_NotFound(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "projects"), 0o755))
	r := New(root)

	for _, p := range []string{"/team", "/projects/reality-radio-network", "/projects"} {
		_, err := r.Resolve(p)
		assert.True(t, errors.Is(err, ErrPageNotFound), "%s: %v", p, err)
	}
}

func TestResolve_Invalid(t *testing.T) {
	r := New(t.TempDir())

	for _, p := range []string{"", "about", "https://example.com/about", "//example.com", "/../etc/passwd", "/projects/../../x"} {
		_, err := r.Resolve(p)
		assert.True(t, errors.Is(err, ErrInvalidPath), "%q: %v", p, err)
	}
}

func TestNavigate(t *testing.T) {
	root := t.TempDir()
	about := writePage(t, root, "about.md")
	r := New(root)

	msg, ok := r.Navigate("/about")().(NavigatedMsg)
	require.True(t, ok)
	assert.Equal(t, NavigatedMsg{Path: "/about", File: about}, msg)

	msg = r.Navigate("/missing")().(NavigatedMsg)
	assert.Equal(t, "/missing", msg.Path)
	assert.True(t, errors.Is(msg.Err, ErrPageNotFound))
}

func TestHistory(t *testing.T) {
	var h History
	_, ok := h.Back()
	assert.False(t, ok)

	h.Visit("/")
	h.Visit("/about")
	h.Visit("/about")
	h.Visit("/team")
	assert.Equal(t, "/team", h.Current())

	prev, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "/about", prev)

	prev, ok = h.Back()
	require.True(t, ok)
	assert.Equal(t, "/", prev)

	_, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, "/", h.Current())

	h.Clear()
	assert.Equal(t, "", h.Current())
}
