package document

import "encoding/json"

// Node kind identifiers as they appear on the wire. Serialized nodes carry
// their kind in their own "type" field; there is no wrapper envelope.
const (
	KindDoc       = "doc"
	KindParagraph = "paragraph"
	KindCodeBlock = "codeBlock"
	KindText      = "text"
	KindLink      = "link"
)

// AttrHref is the single attribute a link mark carries.
const AttrHref = "href"

// SchemaVersion is the fixed schema version stamped on every document. It is
// a constant of the target format, never derived from input.
const SchemaVersion = 1

// Node is the closed union of ADF node kinds. The sealed method keeps the
// union exhaustive within this package: adding a kind is a compile-time
// visible change for every consumer that switches over nodes.
type Node interface {
	Kind() string
	sealed()
}

// Paragraph is a block node whose content holds inline Text children.
type Paragraph struct {
	Type    string `json:"type"`
	Content []Node `json:"content"`
}

// CodeBlock is a block node holding the raw code payload as a single Text
// child. Multiple children are structurally permitted but conversion only
// ever inserts one.
type CodeBlock struct {
	Type    string `json:"type"`
	Content []Node `json:"content"`
}

// Text is an inline leaf carrying literal text plus zero or more marks.
// Empty marks are absent from the serialized form, not an empty list.
type Text struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Marks []Mark `json:"marks,omitempty"`
}

// Mark annotates a Text node. The only populated kind is link, carrying the
// target URL verbatim under the href attribute.
type Mark struct {
	Type  string            `json:"type"`
	Attrs map[string]string `json:"attrs"`
}

func (p *Paragraph) Kind() string { return p.Type }
func (c *CodeBlock) Kind() string { return c.Type }
func (t *Text) Kind() string      { return t.Type }
func (m *Mark) Kind() string      { return m.Type }

func (*Paragraph) sealed() {}
func (*CodeBlock) sealed() {}
func (*Text) sealed()      {}
func (*Mark) sealed()      {}

// NewParagraph returns an empty paragraph block.
func NewParagraph() *Paragraph {
	return &Paragraph{Type: KindParagraph, Content: []Node{}}
}

// NewCodeBlock returns an empty code block.
func NewCodeBlock() *CodeBlock {
	return &CodeBlock{Type: KindCodeBlock, Content: []Node{}}
}

// NewText returns a plain text node with no marks.
func NewText(text string) *Text {
	return &Text{Type: KindText, Text: text}
}

// NewLinkText returns a text node annotated with a single link mark pointing
// at href. The URL is taken verbatim; no scheme check or escaping happens
// beyond what JSON encoding performs on the literal.
func NewLinkText(text, href string) *Text {
	return &Text{
		Type: KindText,
		Text: text,
		Marks: []Mark{{
			Type:  KindLink,
			Attrs: map[string]string{AttrHref: href},
		}},
	}
}

// Document is the root value wrapping the accumulated block content with the
// fixed doc envelope.
type Document struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	Content []Node `json:"content"`
}

// JSON renders the document as compact JSON text. It only fails on encoding
// errors that cannot arise from the closed node vocabulary.
func (d *Document) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// JSONIndent renders the document as indented JSON text.
func (d *Document) JSONIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
