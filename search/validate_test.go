package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	good := []Record{
		{ID: "p", Title: "About Us", Kind: KindPage, Target: "/about"},
		{ID: "x", Title: "Descend", Kind: KindAlbum, Target: "https://example.com/descend", IsExternal: true},
	}
	require.NoError(t, Validate(good))
	require.NoError(t, Validate(nil))

	cases := []struct {
		name   string
		record Record
	}{
		{"external relative target", Record{ID: "e", Title: "E", Kind: KindSingle, Target: "/store/e", IsExternal: true}},
		{"external non-http", Record{ID: "e", Title: "E", Kind: KindSingle, Target: "ftp://example.com/e", IsExternal: true}},
		{"local absolute target", Record{ID: "l", Title: "L", Kind: KindPage, Target: "https://example.com/l"}},
		{"local protocol relative", Record{ID: "l", Title: "L", Kind: KindPage, Target: "//example.com/l"}},
		{"unknown kind", Record{ID: "k", Title: "K", Kind: "podcast", Target: "/k"}},
		{"missing id", Record{Title: "K", Kind: KindPage, Target: "/k"}},
		{"missing title", Record{ID: "t", Kind: KindPage, Target: "/t"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate([]Record{tc.record})
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Len(t, verr.Problems, 1)
		})
	}
}

func TestValidate_DuplicateIDs(t *testing.T) {
	err := Validate([]Record{
		{ID: "dup", Title: "A", Kind: KindPage, Target: "/a"},
		{ID: "dup", Title: "B", Kind: KindPage, Target: "/b"},
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Problems, 1)
	assert.Contains(t, verr.Error(), `id "dup" used by 2 records`)
}
