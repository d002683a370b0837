package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjaros/pageblocks"
)

// RecentStories extracts the recent-stories card list: one two-column
// "Cards" block with an [image, card content] row per story. List
// items without a link yield no row. A present but empty list still
// yields the header-only table; only a missing list reports false.
func (t *Transformer) RecentStories(doc *goquery.Document) (*pageblocks.Block, bool) {
	list := doc.Find(t.sel.StoriesList).First()
	if list.Length() == 0 {
		return nil, false
	}

	b := pageblocks.NewBlock(BlockCards, 2)

	list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a[href]").First()
		if link.Length() == 0 {
			return
		}

		storyURL := link.AttrOr("href", "")
		meta := textOf(item.Find(t.sel.StoryMeta).First())
		title := textOf(item.Find("h4").First())

		var readTime string
		item.Find("div, span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if text := textOf(s); strings.Contains(text, markerMinuteRead) {
				readTime = text
				return false
			}
			return true
		})

		card := elem("div")
		if meta != "" {
			card.AppendChild(textElem("p", "card-meta", meta))
		}
		if title != "" {
			h := elem("h4")
			h.AppendChild(anchor(storyURL, "", title))
			card.AppendChild(h)
		}
		if readTime != "" {
			card.AppendChild(textElem("p", "read-time", readTime))
		}

		b.AddRow(
			pageblocks.ElementCell(image(storyImagePath, title)),
			pageblocks.ElementCell(card),
		)
	})

	return b, true
}
