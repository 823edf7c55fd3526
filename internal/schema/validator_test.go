package schema

import (
	"errors"
	"testing"
)

func TestValidateAcceptsEmittedShape(t *testing.T) {
	valid := [][]byte{
		[]byte(`{"type":"doc","version":1,"content":[]}`),
		[]byte(`{"type":"doc","version":1,"content":[
			{"type":"paragraph","content":[
				{"type":"text","text":"plain"},
				{"type":"text","text":"linked","marks":[
					{"type":"link","attrs":{"href":"http://example.com"}}
				]}
			]},
			{"type":"codeBlock","content":[{"type":"text","text":"a = 42"}]}
		]}`),
	}

	for _, doc := range valid {
		if err := Validate(doc); err != nil {
			t.Fatalf("expected %s to validate, got %v", doc, err)
		}
	}
}

func TestValidateRejectsForeignShapes(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"wrong version", `{"type":"doc","version":2,"content":[]}`},
		{"bare text at root", `{"type":"doc","version":1,"content":[{"type":"text","text":"x"}]}`},
		{"heading block", `{"type":"doc","version":1,"content":[{"type":"heading","content":[]}]}`},
		{"empty marks array", `{"type":"doc","version":1,"content":[
			{"type":"paragraph","content":[{"type":"text","text":"x","marks":[]}]}
		]}`},
		{"mark without href", `{"type":"doc","version":1,"content":[
			{"type":"paragraph","content":[{"type":"text","text":"x","marks":[{"type":"link","attrs":{}}]}]}
		]}`},
		{"nested paragraph", `{"type":"doc","version":1,"content":[
			{"type":"paragraph","content":[{"type":"paragraph","content":[]}]}
		]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate([]byte(tc.doc))
			if err == nil {
				t.Fatalf("expected validation failure")
			}
			if !errors.Is(err, ErrDocumentInvalid) {
				t.Fatalf("expected ErrDocumentInvalid, got %v", err)
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(validationErr.Issues) == 0 {
				t.Fatalf("expected at least one issue with a location")
			}
		})
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	if err := Validate([]byte(`{"type":`)); err == nil {
		t.Fatalf("expected decode failure")
	}
}
