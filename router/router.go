package router

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrInvalidPath  = errors.New("invalid site path")
)

// Router maps in-site paths to markdown pages under a content root.
type Router struct {
	root string // directory holding the markdown pages
}

// New returns a Router serving pages from root.
func New(root string) *Router {
	return &Router{root: root}
}

// Msg for when a navigation request has been resolved.
type NavigatedMsg struct {
	Path string // site path that was requested
	File string // markdown file backing the page
	Err  error
}

// Resolve returns the file backing a site path.
//
// "/" maps to index.md, "/about" to about.md and "/projects/x" to
// projects/x.md. Absolute URLs and paths leaving the content root are
// rejected.
func (r *Router) Resolve(sitePath string) (string, error) {
	if !strings.HasPrefix(sitePath, "/") || strings.HasPrefix(sitePath, "//") || strings.Contains(sitePath, "://") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, sitePath)
	}
	if i := strings.IndexAny(sitePath, "?#"); i >= 0 {
		sitePath = sitePath[:i]
	}
	for _, seg := range strings.Split(sitePath, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, sitePath)
		}
	}

	clean := strings.TrimSuffix(path.Clean(sitePath), "/")
	name := "index"
	if clean != "" {
		name = strings.TrimPrefix(clean, "/")
	}

	file := filepath.Join(r.root, filepath.FromSlash(name)+".md")
	info, err := os.Stat(file)
	if errors.Is(err, os.ErrNotExist) || (err == nil && info.IsDir()) {
		return "", fmt.Errorf("%w: %s", ErrPageNotFound, sitePath)
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", file, err)
	}
	return file, nil
}

// Navigate returns a command that resolves sitePath into a NavigatedMsg.
func (r *Router) Navigate(sitePath string) tea.Cmd {
	return func() tea.Msg {
		file, err := r.Resolve(sitePath)
		return NavigatedMsg{Path: sitePath, File: file, Err: err}
	}
}

// History is the stack of visited site paths.
type History struct {
	paths []string
}

// Visit records sitePath unless it is already the current page.
func (h *History) Visit(sitePath string) {
	if h.Current() == sitePath {
		return
	}
	h.paths = append(h.paths, sitePath)
}

// Current returns the page on top of the stack, or "" when empty.
func (h *History) Current() string {
	if len(h.paths) == 0 {
		return ""
	}
	return h.paths[len(h.paths)-1]
}

// Back drops the current page and returns the previous one.
func (h *History) Back() (string, bool) {
	if len(h.paths) < 2 {
		return "", false
	}
	h.paths = h.paths[:len(h.paths)-1]
	return h.Current(), true
}

// Clear empties the stack.
func (h *History) Clear() {
	h.paths = nil
}
