package commands

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-adf/importer"
	"github.com/goliatone/go-adf/internal/logging"
	"github.com/goliatone/go-adf/pkg/interfaces"
)

const (
	importDirectoryMessageType = "adf.markdown.import_directory"
	importOperation            = "markdown.import_directory"
)

var _ command.Commander[ImportDirectoryCommand] = (*ImportDirectoryHandler)(nil)

// ImportDirectoryCommand triggers a filesystem walk for Markdown documents
// under Directory, converting each into an ADF JSON file under OutputDir.
type ImportDirectoryCommand struct {
	// Directory selects the path (relative to the importer's filesystem) to
	// load Markdown files from.
	Directory string `json:"directory"`
	// OutputDir receives the emitted JSON files. Required unless DryRun.
	OutputDir string `json:"output_dir,omitempty"`
	// Pretty indents the emitted JSON.
	Pretty bool `json:"pretty,omitempty"`
	// ValidateOutput checks every emitted document against the embedded ADF schema.
	ValidateOutput bool `json:"validate_output,omitempty"`
	// DryRun converts without writing any file.
	DryRun bool `json:"dry_run,omitempty"`
	// IncludeDrafts converts documents marked draft in frontmatter.
	IncludeDrafts bool `json:"include_drafts,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("adf.markdown.import_directory.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.OutputDir, validation.Required.When(!cmd.DryRun).Error("output_dir is required unless dry_run is set")),
	)
}

// ImportDirectoryHandler orchestrates directory imports via the shared
// handler foundation.
type ImportDirectoryHandler struct {
	inner *Handler[ImportDirectoryCommand]
}

// NewImportDirectoryHandler creates a handler bound to the supplied importer.
func NewImportDirectoryHandler(imp *importer.Importer, logger interfaces.Logger, opts ...HandlerOption[ImportDirectoryCommand]) *ImportDirectoryHandler {
	if imp == nil {
		// A loaderless importer reports ErrLoaderRequired at execution time,
		// which beats a nil dereference.
		imp = importer.New(importer.Config{})
	}
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportDirectoryCommand) error {
		result, err := imp.ImportDirectory(ctx, msg.Directory, importer.Options{
			OutputDir:     msg.OutputDir,
			Pretty:        msg.Pretty,
			Validate:      msg.ValidateOutput,
			DryRun:        msg.DryRun,
			IncludeDrafts: msg.IncludeDrafts,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"converted_count": len(result.Converted),
				"skipped_count":   len(result.Skipped),
				"error_count":     len(result.Errors),
				"dry_run":         msg.DryRun,
			}).Info("markdown.command.import_directory.completed")
		}
		return nil
	}

	handlerOpts := append([]HandlerOption[ImportDirectoryCommand]{
		WithLogger[ImportDirectoryCommand](baseLogger),
		WithOperation[ImportDirectoryCommand](importOperation),
		WithMessageFields(func(msg ImportDirectoryCommand) map[string]any {
			return map[string]any{"directory": msg.Directory, "dry_run": msg.DryRun}
		}),
	}, opts...)

	return &ImportDirectoryHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *ImportDirectoryHandler) Execute(ctx context.Context, msg ImportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
