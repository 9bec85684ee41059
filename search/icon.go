package search

import (
	"strings"
)

// Icon is the fallback shown when a record has no usable thumbnail.
type Icon struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
}

var (
	IconDisc           = Icon{"disc", "◉"}
	IconMusicNote      = Icon{"music-note", "♪"}
	IconPerson         = Icon{"person", "☺"}
	IconGameController = Icon{"game-controller", "⌘"}
	IconGlobe          = Icon{"globe", "◍"}
	IconSearch         = Icon{"search", "⌕"}
)

// IconFor maps a kind to its icon. Unknown kinds get the generic search icon.
func IconFor(kind Kind) Icon {
	switch kind {
	case KindAlbum:
		return IconDisc
	case KindSingle:
		return IconMusicNote
	case KindArtist:
		return IconPerson
	case KindProject:
		return IconGameController
	case KindPage:
		return IconGlobe
	default:
		return IconSearch
	}
}

// Visual is what a result row shows: an image when there is one, otherwise
// an icon.
type Visual struct {
	Thumbnail string `json:"thumbnail,omitempty"`
	Icon      *Icon  `json:"icon,omitempty"`
}

// HasImage reports whether the visual is a thumbnail.
func (v Visual) HasImage() bool {
	return v.Thumbnail != ""
}

// Visual resolves the record's thumbnail, falling back to the kind icon when
// the thumbnail is missing or a vector graphic.
func (r Record) Visual() Visual {
	if r.Thumbnail != "" && !isVector(r.Thumbnail) {
		return Visual{Thumbnail: r.Thumbnail}
	}
	icon := IconFor(r.Kind)
	return Visual{Icon: &icon}
}

func isVector(ref string) bool {
	// strip query and fragment so "logo.svg?v=2" still counts
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return strings.HasSuffix(strings.ToLower(ref), ".svg")
}
