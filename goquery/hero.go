package goquery

import (
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjaros/pageblocks"
)

// heroDateRe matches dates of the form "January 5, 2026" when the
// class-based lookup fails.
var heroDateRe = regexp.MustCompile(`^[A-Za-z]+ \d{1,2}, \d{4}$`)

// FeaturedStory extracts the hero story section: one single-column
// "Hero" block with a background image row and a content row holding
// date, category, title and a read-story call to action. Reports false
// when the hero region or its our-stories link is missing.
func (t *Transformer) FeaturedStory(doc *goquery.Document) (*pageblocks.Block, bool) {
	region := doc.Find(t.sel.HeroRegion).First()
	if region.Length() == 0 {
		return nil, false
	}

	link := region.Find(fmt.Sprintf("a[href*=%q]", hrefOurStories)).First()
	if link.Length() == 0 {
		return nil, false
	}

	category := textOf(region.Find("h2").First())
	title := textOf(region.Find("h4").First())
	readTime := textOf(region.Find(t.sel.HeroReadTime).First())
	storyURL := link.AttrOr("href", "")

	// The class-based date wins over the pattern scan when both match.
	date := textOf(region.Find(t.sel.HeroDate).First())
	if date == "" {
		region.Find("div, span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if text := textOf(s); heroDateRe.MatchString(text) {
				date = text
				return false
			}
			return true
		})
	}

	content := elem("div")
	if date != "" {
		content.AppendChild(textElem("p", "date", date))
	}
	if category != "" {
		content.AppendChild(heading(2, category))
	}
	if title != "" {
		content.AppendChild(heading(4, title))
	}
	if readTime != "" || storyURL != "" {
		cta := elem("div")
		if readTime != "" {
			cta.AppendChild(textElem("span", "read-time", readTime))
		}
		if storyURL != "" {
			cta.AppendChild(anchor(storyURL, "", readStoryLabel))
		}
		content.AppendChild(cta)
	}

	b := pageblocks.NewBlock(BlockHero, 1)
	b.AddRow(pageblocks.ElementCell(image(heroImagePath, title)))
	b.AddRow(pageblocks.ElementCell(content))
	return b, true
}
