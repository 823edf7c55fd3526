// Package adf converts a restricted subset of Markdown into Atlassian
// Document Format JSON. Only paragraphs, fenced code blocks, plain text, and
// links survive the trip; anything else fails the conversion outright rather
// than degrading the output.
//
// Every call is a fresh, synchronous computation over an in-memory string;
// the package holds no shared state, so concurrent conversions need no
// coordination.
package adf

import (
	"github.com/goliatone/go-adf/converter"
	"github.com/goliatone/go-adf/document"
)

// FromMarkdown converts Markdown source into a compact ADF JSON string.
// Unsupported constructs fail the conversion with
// converter.ErrUnsupportedNode; no partial document is returned.
func FromMarkdown(source string) (string, error) {
	return fromMarkdown(source, (*document.Document).JSON)
}

// FromMarkdownIndent behaves like FromMarkdown but indents the emitted JSON.
func FromMarkdownIndent(source string) (string, error) {
	return fromMarkdown(source, (*document.Document).JSONIndent)
}

// Convert parses Markdown and returns the structured document for callers
// that want the tree rather than its JSON form.
func Convert(source []byte) (*document.Document, error) {
	return converter.New().Convert(source)
}

func fromMarkdown(source string, encode func(*document.Document) ([]byte, error)) (string, error) {
	doc, err := Convert([]byte(source))
	if err != nil {
		return "", err
	}
	data, err := encode(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
