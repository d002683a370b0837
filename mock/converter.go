package mock

import "github.com/mjaros/pageblocks"

var _ pageblocks.Converter = (*Converter)(nil)

// Converter is a mock implementation of pageblocks.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
