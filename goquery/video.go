package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/mjaros/pageblocks"
)

// VideoSection extracts the video teaser: one single-column
// "Hero (video)" block with a thumbnail row and a content row holding
// title, description and a watch button. The anchor is the first
// generic element whose direct h2 contains the "Beyond the Possible"
// marker; reports false when none exists.
func (t *Transformer) VideoSection(doc *goquery.Document) (*pageblocks.Block, bool) {
	section := sectionWithDirectHeading(doc, "h2", markerVideoHeading)
	if section == nil {
		return nil, false
	}

	title := textOf(section.ChildrenFiltered("h2").First())
	description := textOf(section.Find("p").First())
	label := textOf(section.Find("button").First())
	if label == "" {
		label = defaultWatchLabel
	}

	content := elem("div")
	if title != "" {
		content.AppendChild(heading(2, title))
	}
	if description != "" {
		content.AppendChild(textElem("p", "", description))
	}
	content.AppendChild(anchor(videoButtonHref, "button", label))

	b := pageblocks.NewBlock(BlockHeroVideo, 1)
	b.AddRow(pageblocks.ElementCell(image(videoImagePath, title)))
	b.AddRow(pageblocks.ElementCell(content))
	return b, true
}
