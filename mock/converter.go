package mock

import "github.com/fwojciec/coursecat"

var _ coursecat.Converter = (*Converter)(nil)

// Converter is a mock implementation of coursecat.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
