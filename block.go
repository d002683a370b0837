package pageblocks

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CellKind discriminates the content variants a table cell can hold.
type CellKind int

// Cell content variants.
const (
	// CellEmpty renders as an empty cell.
	CellEmpty CellKind = iota

	// CellElement attaches an element node as the cell's sole content.
	CellElement

	// CellMarkup inserts a string as raw HTML. The markup is not
	// escaped; callers are responsible for safety.
	CellMarkup
)

// Cell is one cell of a block table row.
type Cell struct {
	Kind   CellKind
	Node   *html.Node
	Markup string
}

// ElementCell returns a cell holding an element node.
// A nil node yields an empty cell.
func ElementCell(n *html.Node) Cell {
	if n == nil {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellElement, Node: n}
}

// MarkupCell returns a cell holding raw HTML markup.
// An empty string yields an empty cell.
func MarkupCell(markup string) Cell {
	if markup == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellMarkup, Markup: markup}
}

// EmptyCell returns a cell with no content.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// Block is a named content-block table: a header row naming the block,
// followed by content rows each holding exactly Columns cells. The
// downstream document converter keys off the block name and column
// layout to recognize the content type.
type Block struct {
	Name    string
	Columns int
	Rows    [][]Cell
}

// NewBlock creates a block table with the given name and column count.
// Column counts below one are treated as one.
func NewBlock(name string, columns int) *Block {
	if columns < 1 {
		columns = 1
	}
	return &Block{Name: name, Columns: columns}
}

// AddRow appends a content row. The row is normalized with PadRow so
// it holds exactly Columns cells.
func (b *Block) AddRow(cells ...Cell) {
	b.Rows = append(b.Rows, PadRow(b.Columns, cells))
}

// PadRow normalizes a row of cells to exactly columns entries:
// values beyond columns are dropped, missing positions are filled
// with empty cells.
func PadRow(columns int, cells []Cell) []Cell {
	if columns < 1 {
		columns = 1
	}
	row := make([]Cell, columns)
	for i := 0; i < columns; i++ {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = EmptyCell()
		}
	}
	return row
}

// Node renders the block as an HTML table element. The header row has
// one cell holding the block name, plus one trailing empty cell for
// two-column blocks. A block with no content rows still renders its
// header row.
func (b *Block) Node() *html.Node {
	table := Element("table")
	header := Element("tr")
	name := Element("td")
	name.AppendChild(Text(b.Name))
	header.AppendChild(name)
	if b.Columns == 2 {
		header.AppendChild(Element("td"))
	}
	table.AppendChild(header)

	for _, row := range b.Rows {
		tr := Element("tr")
		for _, cell := range PadRow(b.Columns, row) {
			td := Element("td")
			switch cell.Kind {
			case CellElement:
				td.AppendChild(cell.Node)
			case CellMarkup:
				for _, n := range parseFragment(cell.Markup) {
					td.AppendChild(n)
				}
			}
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}

	return table
}

// Element creates a detached element node for the given tag.
func Element(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// Text creates a text node.
func Text(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// RenderHTML serializes a sequence of nodes to an HTML string.
func RenderHTML(nodes ...*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

// parseFragment parses raw markup in a table-cell context. Markup that
// fails to parse yields no nodes, which renders as an empty cell.
func parseFragment(markup string) []*html.Node {
	ctx := &html.Node{Type: html.ElementNode, Data: "td", DataAtom: atom.Td}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil
	}
	return nodes
}
