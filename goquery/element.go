package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjaros/pageblocks"
	"golang.org/x/net/html"
)

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func elem(tag string, attrs ...html.Attribute) *html.Node {
	n := pageblocks.Element(tag)
	n.Attr = append(n.Attr, attrs...)
	return n
}

// textElem creates an element holding a single text node.
// An empty class omits the class attribute.
func textElem(tag, class, text string) *html.Node {
	var n *html.Node
	if class != "" {
		n = elem(tag, attr("class", class))
	} else {
		n = elem(tag)
	}
	n.AppendChild(pageblocks.Text(text))
	return n
}

func heading(level int, text string) *html.Node {
	return textElem("h"+strconv.Itoa(level), "", text)
}

func image(src, alt string) *html.Node {
	return elem("img", attr("src", src), attr("alt", alt))
}

func anchor(href, class, text string) *html.Node {
	attrs := []html.Attribute{attr("href", href)}
	if class != "" {
		attrs = append(attrs, attr("class", class))
	}
	n := elem("a", attrs...)
	n.AppendChild(pageblocks.Text(text))
	return n
}

// textOf returns the trimmed text content of a selection.
func textOf(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
