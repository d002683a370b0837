package goquery

// Block names recognized by the downstream document converter.
const (
	BlockHero      = "Hero"
	BlockHeroVideo = "Hero (video)"
	BlockCards     = "Cards"
	BlockCardsNews = "Cards (news)"
)

// Marker phrases and URL substrings bound to the source page. These are
// contract surface: the section anchors are located by them.
const (
	markerVideoHeading = "Beyond the Possible"
	markerRecentNews   = "Recent News"
	markerMinuteRead   = "Minute Read"

	hrefOurStories = "our-stories"
	hrefNewsHost   = "news.abbvie.com"
)

// Literals emitted into generated elements.
const (
	defaultWatchLabel    = "Watch 7:04"
	readStoryLabel       = "Read story"
	headingRecentStories = "Recent Stories"

	heroImagePath  = "./media_placeholder_hero.png"
	videoImagePath = "./media_placeholder_video.png"
	storyImagePath = "./media_placeholder_story.png"

	videoButtonHref = "#video"
)

// Selectors addresses the fixed structure of the source page. The
// data-ref values are the accessibility-snapshot references the
// upstream scraper preserves on elements it cannot address
// semantically.
type Selectors struct {
	// HeroRegion locates the hero story container.
	HeroRegion string

	// HeroDate locates the hero date element by class.
	HeroDate string

	// HeroReadTime addresses the hero read-time element.
	HeroReadTime string

	// StoriesList addresses the recent-stories list.
	StoriesList string

	// StoryMeta addresses a story card's date/category element by
	// reference prefix.
	StoryMeta string
}

// DefaultSelectors returns the selectors matching the current source
// page markup.
func DefaultSelectors() Selectors {
	return Selectors{
		HeroRegion:   "section, [role=region]",
		HeroDate:     "[class*=date]",
		HeroReadTime: `[data-ref="e58"]`,
		StoriesList:  `ul[data-ref="e61"], ol[data-ref="e61"]`,
		StoryMeta:    `div[data-ref^="e7"], span[data-ref^="e7"]`,
	}
}
