package goquery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjaros/pageblocks"
)

// RecentNews extracts the recent-news link list: one two-column
// "Cards (news)" block with an [empty cell, news content] row per
// press-release link. The anchor is the first generic element whose
// direct h3 contains the "Recent News" marker; reports false when none
// exists. Only links into the press-release host produce rows.
func (t *Transformer) RecentNews(doc *goquery.Document) (*pageblocks.Block, bool) {
	section := sectionWithDirectHeading(doc, "h3", markerRecentNews)
	if section == nil {
		return nil, false
	}

	b := pageblocks.NewBlock(BlockCardsNews, 2)

	section.Find(fmt.Sprintf("a[href*=%q]", hrefNewsHost)).Each(func(_ int, link *goquery.Selection) {
		date := textOf(link.Find("div, span").First())
		title := textOf(link.Find("p").First())
		newsURL := link.AttrOr("href", "")

		content := elem("div")
		if date != "" {
			content.AppendChild(textElem("p", "news-date", date))
		}
		if title != "" {
			p := elem("p")
			p.AppendChild(anchor(newsURL, "", title))
			content.AppendChild(p)
		}

		b.AddRow(
			pageblocks.ElementCell(elem("div")),
			pageblocks.ElementCell(content),
		)
	})

	return b, true
}
