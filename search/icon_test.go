package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconFor(t *testing.T) {
	cases := map[Kind]Icon{
		KindAlbum:   IconDisc,
		KindSingle:  IconMusicNote,
		KindArtist:  IconPerson,
		KindProject: IconGameController,
		KindPage:    IconGlobe,
		"podcast":   IconSearch,
	}
	for kind, want := range cases {
		assert.Equal(t, want, IconFor(kind), "kind %q", kind)
	}
}

func TestRecordVisual(t *testing.T) {
	t.Run("thumbnail", func(t *testing.T) {
		v := Record{Kind: KindAlbum, Thumbnail: "/cover.png"}.Visual()
		assert.True(t, v.HasImage())
		assert.Equal(t, "/cover.png", v.Thumbnail)
		assert.Nil(t, v.Icon)
	})

	t.Run("missing thumbnail", func(t *testing.T) {
		v := Record{Kind: KindPage}.Visual()
		assert.False(t, v.HasImage())
		require.NotNil(t, v.Icon)
		assert.Equal(t, IconGlobe, *v.Icon)
	})

	t.Run("vector thumbnail", func(t *testing.T) {
		for _, ref := range []string{"/Chronix.svg", "/LOGO.SVG", "https://cdn.example.com/a.svg?v=3"} {
			v := Record{Kind: KindArtist, Thumbnail: ref}.Visual()
			assert.False(t, v.HasImage(), ref)
			require.NotNil(t, v.Icon, ref)
			assert.Equal(t, IconPerson, *v.Icon, ref)
		}
	})
}
