package catalog

import "github.com/realitybuilders/rbew_search/search"

var local = []search.Record{
	{ID: "local-1", Title: "Realism Hit Roleplay", Subtitle: "FiveM Server", Kind: search.KindProject, Target: "/projects/realism-hit-roleplay", Thumbnail: "/realism-hit-logo.png"},
	{ID: "local-2", Title: "FrameState RP", Subtitle: "Minecraft Framework", Kind: search.KindProject, Target: "/projects/framestate-rp", Thumbnail: "/framestate-rp.png"},
	{ID: "local-3", Title: "The Pendant Legacy", Subtitle: "Book Trilogy", Kind: search.KindProject, Target: "/projects/pendant-legacy", Thumbnail: "/a-beautiful-deception.png"},
	{ID: "local-4", Title: "Reality Radio Network", Subtitle: "Music Platform", Kind: search.KindProject, Target: "/projects/reality-radio-network", Thumbnail: "/RRN_logo.jpg"},
	{ID: "local-5", Title: "Time Police Department", Subtitle: "TV Series Concept", Kind: search.KindProject, Target: "/projects/time-police-department", Thumbnail: "/time-police-department.png"},
	{ID: "local-6", Title: "About Us", Subtitle: "Our History", Kind: search.KindPage, Target: "/about"},
	{ID: "local-7", Title: "Contact", Subtitle: "Get in Touch", Kind: search.KindPage, Target: "/contact"},
	{ID: "local-8", Title: "Team", Subtitle: "Meet the Creators", Kind: search.KindPage, Target: "/team"},
}
