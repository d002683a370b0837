package mock

import (
	"github.com/mjaros/pageblocks"
	"golang.org/x/net/html"
)

var _ pageblocks.Transformer = (*Transformer)(nil)

// Transformer is a mock implementation of pageblocks.Transformer.
type Transformer struct {
	TransformFn func(pageHTML string, pageURL string) ([]*html.Node, error)
}

func (t *Transformer) Transform(pageHTML string, pageURL string) ([]*html.Node, error) {
	return t.TransformFn(pageHTML, pageURL)
}
