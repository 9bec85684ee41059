package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/realitybuilders/rbew_search/router"
	"github.com/realitybuilders/rbew_search/search"
	"github.com/realitybuilders/rbew_search/search/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentRoot = "../../content"

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RBEW_CONTENT_ROOT", contentRoot)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config=" + filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCmd(t *testing.T) {
	out, err := run(t, "search", "gold")
	require.NoError(t, err)

	assert.Contains(t, out, "Chaos Country")
	assert.Contains(t, out, "World of Gold")
	assert.Contains(t, out, "https://www.realityradionetwork.com/store/singles/world-of-gold")
	assert.NotContains(t, out, "Pendant")
	assert.NotContains(t, out, "\x1b[", "no colours when not a terminal")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 7)
}

func TestSearchCmd_JoinsArgs(t *testing.T) {
	out, err := run(t, "search", "framestate", "rp")
	require.NoError(t, err)

	assert.Contains(t, out, "FrameState RP")
	assert.Contains(t, out, "/projects/framestate-rp")
}

func TestSearchCmd_NoResults(t *testing.T) {
	out, err := run(t, "search", "zzzz")
	require.NoError(t, err)

	assert.Equal(t, "No results found\n", out)
}

func TestSearchCmd_JSON(t *testing.T) {
	out, err := run(t, "search", "--json", "chronix")
	require.NoError(t, err)

	var hits []struct {
		ID         string        `json:"id"`
		IsExternal bool          `json:"is_external"`
		Visual     search.Visual `json:"visual"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &hits))
	require.Len(t, hits, 2)

	assert.Equal(t, "rrn-14", hits[0].ID)
	assert.True(t, hits[0].Visual.HasImage())

	assert.Equal(t, "rrn-15", hits[1].ID)
	assert.True(t, hits[1].IsExternal)
	require.NotNil(t, hits[1].Visual.Icon)
	assert.Equal(t, search.IconPerson.Name, hits[1].Visual.Icon.Name)
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	_, err := run(t, "search")
	assert.Error(t, err)
}

func TestPageCmd(t *testing.T) {
	out, err := run(t, "page", "/about")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Our Journey"))
	assert.Contains(t, out, "The Foundation")
}

func TestPageCmd_NotFound(t *testing.T) {
	_, err := run(t, "page", "/projects/reality-radio-network")

	assert.True(t, errors.Is(err, router.ErrPageNotFound), "got %v", err)
}

func TestCatalogCmd(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)

	assert.Contains(t, out, "[page] /about")
	assert.Contains(t, out, "23 records (8 local, 15 external): 5 album, 6 single, 4 artist, 5 project, 3 page")
}

func TestCatalogCmd_JSON(t *testing.T) {
	out, err := run(t, "catalog", "--json")
	require.NoError(t, err)

	var records []search.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 23)
	assert.Equal(t, "local-1", records[0].ID)
}

func TestLocalTargetsHavePages(t *testing.T) {
	r := router.New(contentRoot)

	for _, p := range []string{"/", "/about", "/contact", "/team"} {
		_, err := r.Resolve(p)
		assert.NoError(t, err, p)
	}

	for _, rec := range catalog.Local() {
		_, err := r.Resolve(rec.Target)
		if rec.ID == "local-4" {
			// no detail page exists for it
			assert.True(t, errors.Is(err, router.ErrPageNotFound), rec.Target)
			continue
		}
		assert.NoError(t, err, rec.Target)
	}
}
