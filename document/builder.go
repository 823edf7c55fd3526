package document

// Builder accumulates an ordered sequence of block nodes for a document in
// progress. Builders are cheap, single-use values; allocate one per
// conversion with NewBuilder.
type Builder struct {
	content []Node
}

// NewBuilder returns an empty document builder.
func NewBuilder() *Builder {
	return &Builder{content: []Node{}}
}

// Paragraph appends a new empty paragraph to the document content and returns
// a sub-builder bound to that exact block, so subsequent inline insertions
// land on it without the caller re-navigating the tree.
func (b *Builder) Paragraph() *ParagraphBuilder {
	p := NewParagraph()
	b.content = append(b.content, p)
	return &ParagraphBuilder{paragraph: p}
}

// CodeBlock appends a new empty code block and returns its sub-builder.
func (b *Builder) CodeBlock() *CodeBlockBuilder {
	c := NewCodeBlock()
	b.content = append(b.content, c)
	return &CodeBlockBuilder{block: c}
}

// Build wraps the accumulated content with the fixed doc envelope. It always
// succeeds; failures belong to whatever populated the builder.
func (b *Builder) Build() *Document {
	return &Document{
		Type:    KindDoc,
		Version: SchemaVersion,
		Content: b.content,
	}
}

// ParagraphBuilder appends inline content to the paragraph it was opened for.
type ParagraphBuilder struct {
	paragraph *Paragraph
}

// Text appends a plain text node and returns the builder for chaining.
func (pb *ParagraphBuilder) Text(text string) *ParagraphBuilder {
	pb.paragraph.Content = append(pb.paragraph.Content, NewText(text))
	return pb
}

// Link appends a text node carrying a link mark with href set to url.
func (pb *ParagraphBuilder) Link(text, url string) *ParagraphBuilder {
	pb.paragraph.Content = append(pb.paragraph.Content, NewLinkText(text, url))
	return pb
}

// CodeBlockBuilder appends the raw code payload to its block. Marks are never
// attached inside code blocks.
type CodeBlockBuilder struct {
	block *CodeBlock
}

// Text appends a plain text node holding the raw code payload.
func (cb *CodeBlockBuilder) Text(text string) *CodeBlockBuilder {
	cb.block.Content = append(cb.block.Content, NewText(text))
	return cb
}
