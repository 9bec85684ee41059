package catalog

import "github.com/realitybuilders/rbew_search/search"

const (
	rrnStore  = "https://www.realityradionetwork.com/store"
	rrnTalent = "https://www.realityradionetwork.com/talent"
	unsplash  = "https://images.unsplash.com"
)

func cover(photo string) string {
	return unsplash + "/" + photo + "?w=200&h=200&fit=crop"
}

var external = []search.Record{
	// Albums
	{ID: "rrn-1", Title: "America's Changed", Subtitle: "Johnathan Gold", Kind: search.KindAlbum, Target: rrnStore + "/albums/americas-changed", Thumbnail: cover("photo-1459749411175-04bf5292ceea"), IsExternal: true},
	{ID: "rrn-2", Title: "Heartfelt Rebellion", Subtitle: "Johnathan Gold", Kind: search.KindAlbum, Target: rrnStore + "/albums/heartfelt-rebellion", Thumbnail: cover("photo-1470225620780-dba8ba36b745"), IsExternal: true},
	{ID: "rrn-3", Title: "Shattered Peaces", Subtitle: "Mathew Cage", Kind: search.KindAlbum, Target: rrnStore + "/albums/shattered-peaces", Thumbnail: cover("photo-1514525253161-7a46d19cd819"), IsExternal: true},
	{ID: "rrn-4", Title: "Barefoot Supernova", Subtitle: "Kaira Heartfelt", Kind: search.KindAlbum, Target: rrnStore + "/albums/barefoot-supernova", Thumbnail: cover("photo-1508700115892-45ecd05ae2ad"), IsExternal: true},
	{ID: "rrn-14", Title: "Descend", Subtitle: "Chronix", Kind: search.KindAlbum, Target: rrnStore + "/albums/descend", Thumbnail: cover("photo-1493225457124-a3eb161ffa5f"), IsExternal: true},

	// Singles
	{ID: "rrn-5", Title: "Chaos Country", Subtitle: "Johnathan Gold", Kind: search.KindSingle, Target: rrnStore + "/singles/chaos-country", Thumbnail: cover("photo-1493225457124-a3eb161ffa5f"), IsExternal: true},
	{ID: "rrn-6", Title: "America's Changed", Subtitle: "Johnathan Gold", Kind: search.KindSingle, Target: rrnStore + "/singles/americas-changed", Thumbnail: cover("photo-1459749411175-04bf5292ceea"), IsExternal: true},
	{ID: "rrn-7", Title: "Heartfelt Rebellion", Subtitle: "Johnathan Gold", Kind: search.KindSingle, Target: rrnStore + "/singles/heartfelt-rebellion", Thumbnail: cover("photo-1470225620780-dba8ba36b745"), IsExternal: true},
	{ID: "rrn-8", Title: "World of Gold", Subtitle: "Mathew Cage", Kind: search.KindSingle, Target: rrnStore + "/singles/world-of-gold", Thumbnail: cover("photo-1514525253161-7a46d19cd819"), IsExternal: true},
	{ID: "rrn-9", Title: "Fallen Flag", Subtitle: "Mathew Cage", Kind: search.KindSingle, Target: rrnStore + "/singles/fallen-flag", Thumbnail: cover("photo-1487180144351-b8472da7d491"), IsExternal: true},
	{ID: "rrn-10", Title: "Evil Love", Subtitle: "Kaira Heartfelt", Kind: search.KindSingle, Target: rrnStore + "/singles/evil-love", Thumbnail: cover("photo-1508700115892-45ecd05ae2ad"), IsExternal: true},

	// Artists
	{ID: "rrn-11", Title: "Johnathan Gold & Guilded Hearts", Subtitle: "Country / Americana", Kind: search.KindArtist, Target: rrnTalent + "/johnathan-gold", Thumbnail: cover("photo-1511671782779-c97d3d27a1d4"), IsExternal: true},
	{ID: "rrn-12", Title: "Mathew Cage", Subtitle: "Alt Rock / Emotional Rock", Kind: search.KindArtist, Target: rrnTalent + "/mathew-cage", Thumbnail: cover("photo-1487180144351-b8472da7d491"), IsExternal: true},
	{ID: "rrn-13", Title: "Kaira Heartfelt", Subtitle: "Country-Pop", Kind: search.KindArtist, Target: rrnTalent + "/kaira-heartfelt", Thumbnail: cover("photo-1493225457124-a3eb161ffa5f"), IsExternal: true},
	{ID: "rrn-15", Title: "Chronix", Subtitle: "Electronic / Synthwave", Kind: search.KindArtist, Target: rrnTalent + "/chronix", Thumbnail: "/Chronix.svg", IsExternal: true},
}
