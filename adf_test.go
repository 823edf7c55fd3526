package adf

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-adf/converter"
)

func TestFromMarkdownParagraph(t *testing.T) {
	expected := `{"type":"doc","version":1,"content":[
		{"type":"paragraph","content":[
			{"type":"text","text":"this is some paragraph"}
		]}
	]}`

	actual, err := FromMarkdown("this is some paragraph")
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}
	assertJSONEqual(t, expected, actual)
}

func TestFromMarkdownParagraphWithLinks(t *testing.T) {
	expected := `{"type":"doc","version":1,"content":[
		{"type":"paragraph","content":[
			{"type":"text","text":"alamakota","marks":[
				{"type":"link","attrs":{"href":"http://duckduck.go"}}
			]},
			{"type":"text","text":" "},
			{"type":"text","text":"http://google.com","marks":[
				{"type":"link","attrs":{"href":"http://google.com"}}
			]},
			{"type":"text","text":" this is some paragraph"}
		]}
	]}`

	actual, err := FromMarkdown("[alamakota](http://duckduck.go) <http://google.com> this is some paragraph")
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}
	assertJSONEqual(t, expected, actual)
}

func TestFromMarkdownCodeBlock(t *testing.T) {
	expected := `{"type":"doc","version":1,"content":[
		{"type":"codeBlock","content":[
			{"type":"text","text":"a = 42"}
		]}
	]}`

	actual, err := FromMarkdown("```\na = 42\n```")
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}
	assertJSONEqual(t, expected, actual)
}

func TestFromMarkdownHeadingFails(t *testing.T) {
	out, err := FromMarkdown("# Title")
	if err == nil {
		t.Fatalf("expected heading to fail conversion, got %q", out)
	}
	if out != "" {
		t.Fatalf("no output may accompany a failed conversion, got %q", out)
	}
	var unsupportedErr *converter.UnsupportedNodeError
	if !errors.As(err, &unsupportedErr) || unsupportedErr.NodeKind != "Heading" {
		t.Fatalf("expected unsupported Heading, got %v", err)
	}
}

func TestFromMarkdownEmphasisFails(t *testing.T) {
	_, err := FromMarkdown("*hi*")
	if !errors.Is(err, converter.ErrUnsupportedNode) {
		t.Fatalf("expected ErrUnsupportedNode, got %v", err)
	}
	var unsupportedErr *converter.UnsupportedNodeError
	if !errors.As(err, &unsupportedErr) || unsupportedErr.NodeKind != "Emphasis" {
		t.Fatalf("expected unsupported Emphasis, got %v", err)
	}
}

func TestFromMarkdownIndentMatchesCompactOutput(t *testing.T) {
	input := "[a](http://x) and free text\n\n```\ncode\n```"

	compact, err := FromMarkdown(input)
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}
	indented, err := FromMarkdownIndent(input)
	if err != nil {
		t.Fatalf("FromMarkdownIndent: %v", err)
	}
	assertJSONEqual(t, compact, indented)
}

func TestFromMarkdownDeterministic(t *testing.T) {
	input := "first paragraph\n\n```\na = 42\n```\n\n[link](http://example.com)"

	first, err := FromMarkdown(input)
	if err != nil {
		t.Fatalf("first conversion: %v", err)
	}
	second, err := FromMarkdown(input)
	if err != nil {
		t.Fatalf("second conversion: %v", err)
	}
	if first != second {
		t.Fatalf("conversions differ:\n%s\n%s", first, second)
	}
}

func assertJSONEqual(t *testing.T, expected, actual string) {
	t.Helper()

	var expectedValue, actualValue any
	if err := json.Unmarshal([]byte(expected), &expectedValue); err != nil {
		t.Fatalf("parse expected JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(actual), &actualValue); err != nil {
		t.Fatalf("parse actual JSON: %v", err)
	}
	if !reflect.DeepEqual(expectedValue, actualValue) {
		t.Fatalf("documents differ:\nexpected %s\nactual   %s", expected, actual)
	}
}
