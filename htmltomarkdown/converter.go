// Package htmltomarkdown renders the markup carried by section notes,
// requisites and restrictions as Markdown for terminal display.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/coursecat"
)

// Ensure Converter implements coursecat.Converter at compile time.
var _ coursecat.Converter = (*Converter)(nil)

// Converter renders annotation markup as Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links in annotations against baseURL,
// typically the catalog the annotations were fetched from.
func WithDomain(baseURL string) Option {
	return func(c *Converter) {
		c.domain = baseURL
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert renders an annotation as Markdown. Text without markup is
// returned as written, so catalog text like "CSC_116" is not escaped.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", coursecat.Errorf(coursecat.EINVALID, "empty HTML input")
	}
	if !strings.ContainsAny(html, "<&") {
		return tidy(html), nil
	}

	var result string
	var err error
	if c.domain != "" {
		result, err = c.conv.ConvertString(html, converter.WithDomain(c.domain))
	} else {
		result, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", err
	}

	return tidy(result), nil
}

// tidy strips trailing spaces, including Markdown hard-break markers, and
// collapses runs of blank lines so the result can be indented line by line.
func tidy(md string) string {
	lines := strings.Split(strings.TrimSpace(md), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
