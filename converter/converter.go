// Package converter walks goldmark's Markdown syntax tree and emits ADF
// blocks through the document builder. The walk is allow-list: only
// paragraphs, code blocks, plain text, and links are recognised, and the
// first unrecognised node aborts the whole conversion. Silently lossy output
// would corrupt the document's meaning for downstream consumers, so there is
// no best-effort path.
package converter

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-adf/document"
)

// Converter maps a Markdown source string onto an ADF document. It is
// stateless, so a single instance can be shared across goroutines without
// additional locking.
type Converter struct {
	parser gmparser.Parser
}

// Option customises converter construction.
type Option func(*Converter)

// WithParser overrides the Markdown parser collaborator. The default is
// goldmark's CommonMark parser with no extensions; extensions that widen the
// accepted grammar (tables, linkified bare URLs) would fight the allow-list
// policy, so they are intentionally left off.
func WithParser(p gmparser.Parser) Option {
	return func(c *Converter) {
		if p != nil {
			c.parser = p
		}
	}
}

// New constructs a converter with the default CommonMark parser.
func New(opts ...Option) *Converter {
	c := &Converter{parser: goldmark.DefaultParser()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses source as Markdown and produces the equivalent ADF document.
// The first unsupported construct fails the conversion; no partial document
// is ever returned.
func (c *Converter) Convert(source []byte) (*document.Document, error) {
	root := c.parser.Parse(text.NewReader(source))

	builder := document.NewBuilder()
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		switch block := node.(type) {
		case *ast.Paragraph:
			if err := convertParagraph(builder.Paragraph(), block, source); err != nil {
				return nil, err
			}
		case *ast.FencedCodeBlock:
			builder.CodeBlock().Text(blockText(block, source))
		case *ast.CodeBlock:
			builder.CodeBlock().Text(blockText(block, source))
		default:
			return nil, unsupported(node)
		}
	}

	return builder.Build(), nil
}

func convertParagraph(pb *document.ParagraphBuilder, paragraph *ast.Paragraph, source []byte) error {
	for node := paragraph.FirstChild(); node != nil; node = node.NextSibling() {
		switch inline := node.(type) {
		case *ast.Text:
			if inline.HardLineBreak() {
				// The reference grammar models hard breaks as their own
				// inline node, which lands in the unsupported arm.
				return &UnsupportedNodeError{NodeKind: "LineBreak"}
			}
			value := string(inline.Segment.Value(source))
			if inline.SoftLineBreak() {
				value += "\n"
			}
			pb.Text(value)
		case *ast.String:
			// goldmark emits String nodes for decoded entity and escape
			// sequences; they are plain text in the source vocabulary.
			pb.Text(string(inline.Value))
		case *ast.Link:
			pb.Link(linkText(inline, source), string(inline.Destination))
		case *ast.AutoLink:
			pb.Link(string(inline.Label(source)), string(inline.URL(source)))
		default:
			return unsupported(node)
		}
	}
	return nil
}

// linkText resolves a link's display text: the first child when it is a text
// node, otherwise the raw destination URL. A nested non-text child (an image,
// say) deliberately falls through to the URL.
func linkText(link *ast.Link, source []byte) string {
	if t, ok := link.FirstChild().(*ast.Text); ok {
		return string(t.Segment.Value(source))
	}
	return string(link.Destination)
}

// blockText joins a code block's raw lines, keeping interior newlines but
// dropping the line terminators themselves, so the payload matches the fenced
// body regardless of LF or CRLF endings. Language info and fence metadata are
// discarded.
func blockText(block ast.Node, source []byte) string {
	var sb strings.Builder
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := string(seg.Value(source))
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
	}
	return sb.String()
}
