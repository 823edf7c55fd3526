// Package importer batch-converts Markdown files on disk into ADF JSON
// documents. Loading and naming are forgiving; the conversion of each file
// stays fail-fast, so a single unsupported construct fails that file without
// touching the rest of the run.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-adf/converter"
	"github.com/goliatone/go-adf/internal/logging"
	"github.com/goliatone/go-adf/internal/schema"
	"github.com/goliatone/go-adf/pkg/interfaces"
)

var (
	// ErrLoaderRequired is returned when an importer without a loader is
	// asked to import a directory.
	ErrLoaderRequired = errors.New("importer: loader is required")
	// ErrOutputDirRequired is returned when a non-dry run has nowhere to
	// write.
	ErrOutputDirRequired = errors.New("importer: output directory is required")
)

// Config encapsulates importer dependencies.
type Config struct {
	Loader    *Loader
	Converter *converter.Converter
	Logger    interfaces.Logger
}

// Importer orchestrates conversion of Markdown files into ADF JSON files.
type Importer struct {
	loader    *Loader
	converter *converter.Converter
	logger    interfaces.Logger
}

// New builds an Importer from the supplied configuration. A nil converter
// defaults to the standard CommonMark converter; a nil logger is replaced by
// a no-op.
func New(cfg Config) *Importer {
	conv := cfg.Converter
	if conv == nil {
		conv = converter.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{
		loader:    cfg.Loader,
		converter: conv,
		logger:    logger,
	}
}

// Options control a single import run.
type Options struct {
	// OutputDir receives one <name>.json file per converted document.
	OutputDir string
	// Pretty indents the emitted JSON.
	Pretty bool
	// Validate checks every emitted document against the embedded ADF schema.
	Validate bool
	// DryRun converts and validates without writing any file.
	DryRun bool
	// IncludeDrafts converts documents whose frontmatter marks them draft.
	IncludeDrafts bool
}

// FileError pairs a source path with the error that failed it.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Result accumulates the outcome of an import run.
type Result struct {
	// Converted lists emitted output file names in input order.
	Converted []string
	// Skipped lists source paths skipped as drafts.
	Skipped []string
	// Errors collects per-file failures; successful files are unaffected.
	Errors []FileError
}

// ImportDirectory loads every Markdown file under dir and converts each one.
// Per-file failures are collected in the result; the first of them is also
// returned so callers can fail a run without inspecting the result.
func (i *Importer) ImportDirectory(ctx context.Context, dir string, opts Options) (*Result, error) {
	if i.loader == nil {
		return nil, ErrLoaderRequired
	}
	if !opts.DryRun && strings.TrimSpace(opts.OutputDir) == "" {
		return nil, ErrOutputDirRequired
	}

	files, err := i.loader.LoadDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}

	runLogger := logging.WithFields(i.logger, map[string]any{
		"run_id":    uuid.New().String(),
		"directory": dir,
	})

	result := &Result{}
	for _, file := range files {
		if file.Meta.Draft && !opts.IncludeDrafts {
			result.Skipped = append(result.Skipped, file.Path)
			runLogger.Debug("import.file.skipped_draft", "path", file.Path)
			continue
		}

		name, err := i.ImportFile(ctx, file, opts)
		if err != nil {
			result.Errors = append(result.Errors, FileError{Path: file.Path, Err: err})
			runLogger.Error("import.file.failed", "path", file.Path, "error", err)
			continue
		}
		result.Converted = append(result.Converted, name)
		runLogger.Info("import.file.converted", "path", file.Path, "output", name)
	}

	runLogger.Info("import.completed",
		"converted_count", len(result.Converted),
		"skipped_count", len(result.Skipped),
		"error_count", len(result.Errors),
		"dry_run", opts.DryRun,
	)

	return result, firstError(result.Errors)
}

// ImportFile converts a single loaded file and writes its output document,
// returning the emitted file name.
func (i *Importer) ImportFile(ctx context.Context, file *File, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := i.converter.Convert(file.Body)
	if err != nil {
		return "", err
	}

	var data []byte
	if opts.Pretty {
		data, err = doc.JSONIndent()
	} else {
		data, err = doc.JSON()
	}
	if err != nil {
		return "", err
	}

	if opts.Validate {
		if err := schema.Validate(data); err != nil {
			return "", err
		}
	}

	name := outputName(file) + ".json"
	if opts.DryRun {
		return name, nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("importer: create output dir: %w", err)
	}
	target := filepath.Join(opts.OutputDir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("importer: write %s: %w", target, err)
	}
	return name, nil
}

// outputName derives the emitted file name: an explicit frontmatter slug
// wins, then the slugified title, then the source file stem.
func outputName(file *File) string {
	if s := strings.TrimSpace(file.Meta.Slug); s != "" && slug.IsValid(s) {
		return s
	}
	if title := strings.TrimSpace(file.Meta.Title); title != "" {
		if normalized, err := slug.Normalize(title); err == nil && normalized != "" {
			return normalized
		}
	}
	stem := strings.TrimSuffix(filepath.Base(file.Path), filepath.Ext(file.Path))
	if normalized, err := slug.Normalize(stem); err == nil && normalized != "" {
		return normalized
	}
	return stem
}

func firstError(errs []FileError) error {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}
