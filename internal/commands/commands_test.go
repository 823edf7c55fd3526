package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-adf/converter"
	"github.com/goliatone/go-adf/importer"
	"github.com/goliatone/go-adf/internal/schema"
)

func TestConvertFileCommandValidate(t *testing.T) {
	if err := (ConvertFileCommand{Path: "doc.md"}).Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
	if err := (ConvertFileCommand{}).Validate(); err == nil {
		t.Fatalf("expected missing path to fail validation")
	}
	if err := (ConvertFileCommand{Path: "   "}).Validate(); err == nil {
		t.Fatalf("expected blank path to fail validation")
	}
}

func TestConvertFileHandlerFromStdin(t *testing.T) {
	var out bytes.Buffer
	handler := NewConvertFileHandler(ConvertConfig{
		Output: &out,
		Stdin:  strings.NewReader("stdin paragraph"),
	})

	err := handler.Execute(context.Background(), ConvertFileCommand{Path: StdinPath})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["type"] != "doc" {
		t.Fatalf("expected doc envelope, got %v", decoded["type"])
	}
}

func TestConvertFileHandlerFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("a paragraph with [a link](http://example.com)"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var out bytes.Buffer
	handler := NewConvertFileHandler(ConvertConfig{Output: &out})

	err := handler.Execute(context.Background(), ConvertFileCommand{
		Path:           path,
		Pretty:         true,
		ValidateOutput: true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), `"href": "http://example.com"`) {
		t.Fatalf("expected pretty JSON with the link href, got %s", out.String())
	}
}

func TestConvertFileHandlerWrapsValidationFailure(t *testing.T) {
	handler := NewConvertFileHandler(ConvertConfig{Output: &bytes.Buffer{}})

	err := handler.Execute(context.Background(), ConvertFileCommand{})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestConvertFileHandlerWrapsUnsupportedNode(t *testing.T) {
	var out bytes.Buffer
	handler := NewConvertFileHandler(ConvertConfig{
		Output: &out,
		Stdin:  strings.NewReader("# heading"),
	})

	err := handler.Execute(context.Background(), ConvertFileCommand{Path: StdinPath})
	if err == nil {
		t.Fatalf("expected unsupported node failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
		t.Fatalf("expected bad input category, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("no output may be written for a failed conversion, got %s", out.String())
	}
}

func TestWrapExecuteErrorCategories(t *testing.T) {
	if err := wrapExecuteError(&converter.UnsupportedNodeError{NodeKind: "Heading"}); !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
		t.Fatalf("expected bad input category for unsupported nodes, got %v", err)
	}
	if err := wrapExecuteError(fmt.Errorf("emit: %w", schema.ErrDocumentInvalid)); !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category for schema failures, got %v", err)
	}
	if err := wrapExecuteError(errors.New("write output: disk full")); !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for operational failures, got %v", err)
	}
}

func TestImportDirectoryCommandValidate(t *testing.T) {
	valid := ImportDirectoryCommand{Directory: "docs", OutputDir: "out"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}

	if err := (ImportDirectoryCommand{OutputDir: "out"}).Validate(); err == nil {
		t.Fatalf("expected missing directory to fail validation")
	}
	if err := (ImportDirectoryCommand{Directory: "docs"}).Validate(); err == nil {
		t.Fatalf("expected missing output_dir to fail validation")
	}
	if err := (ImportDirectoryCommand{Directory: "docs", DryRun: true}).Validate(); err != nil {
		t.Fatalf("dry run must not require output_dir, got %v", err)
	}
}

func TestImportDirectoryHandler(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/a.md": {Data: []byte("a paragraph\n")},
	}
	imp := importer.New(importer.Config{
		Loader: importer.NewLoader(fsys, importer.LoaderConfig{}),
	})

	handler := NewImportDirectoryHandler(imp, nil)

	err := handler.Execute(context.Background(), ImportDirectoryCommand{
		Directory: "docs",
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestImportDirectoryHandlerNilImporter(t *testing.T) {
	handler := NewImportDirectoryHandler(nil, nil)

	err := handler.Execute(context.Background(), ImportDirectoryCommand{
		Directory: "docs",
		DryRun:    true,
	})
	if err == nil {
		t.Fatalf("expected a loader failure, not a panic or success")
	}
	if !errors.Is(err, importer.ErrLoaderRequired) {
		t.Fatalf("expected ErrLoaderRequired, got %v", err)
	}
}
