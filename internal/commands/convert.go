package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-adf/converter"
	"github.com/goliatone/go-adf/internal/logging"
	"github.com/goliatone/go-adf/internal/schema"
	"github.com/goliatone/go-adf/pkg/interfaces"
)

const (
	convertFileMessageType = "adf.markdown.convert_file"
	convertOperation       = "markdown.convert_file"
)

// StdinPath selects standard input as the conversion source.
const StdinPath = "-"

var _ command.Commander[ConvertFileCommand] = (*ConvertFileHandler)(nil)

// ConvertFileCommand converts a single Markdown file (or stdin) into ADF JSON
// written to the handler's output.
type ConvertFileCommand struct {
	// Path selects the Markdown source file; "-" reads standard input.
	Path string `json:"path"`
	// Pretty indents the emitted JSON.
	Pretty bool `json:"pretty,omitempty"`
	// ValidateOutput checks the emitted document against the embedded ADF schema.
	ValidateOutput bool `json:"validate_output,omitempty"`
}

// Type implements command.Message.
func (ConvertFileCommand) Type() string { return convertFileMessageType }

// Validate ensures a source path is present before the handler executes.
func (cmd ConvertFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("adf.markdown.convert_file.path_required", "path is required")
			}
			return nil
		})),
	)
}

// ConvertConfig wires the conversion handler's collaborators.
type ConvertConfig struct {
	Converter *converter.Converter
	Output    io.Writer
	Stdin     io.Reader
	Logger    interfaces.Logger
}

// ConvertFileHandler executes ConvertFileCommand through the shared handler
// foundation.
type ConvertFileHandler struct {
	inner *Handler[ConvertFileCommand]
}

// NewConvertFileHandler creates a handler bound to the supplied converter and
// output writer.
func NewConvertFileHandler(cfg ConvertConfig, opts ...HandlerOption[ConvertFileCommand]) *ConvertFileHandler {
	conv := cfg.Converter
	if conv == nil {
		conv = converter.New()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ConvertFileCommand) error {
		source, err := readSource(msg.Path, stdin)
		if err != nil {
			return err
		}

		doc, err := conv.Convert(source)
		if err != nil {
			return err
		}

		var data []byte
		if msg.Pretty {
			data, err = doc.JSONIndent()
		} else {
			data, err = doc.JSON()
		}
		if err != nil {
			return err
		}

		if msg.ValidateOutput {
			if err := schema.Validate(data); err != nil {
				return err
			}
		}

		if _, err := out.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		logging.WithFields(logger, map[string]any{
			"path":  msg.Path,
			"bytes": len(data),
		}).Info("markdown.command.convert_file.completed")
		return nil
	}

	handlerOpts := append([]HandlerOption[ConvertFileCommand]{
		WithLogger[ConvertFileCommand](logger),
		WithOperation[ConvertFileCommand](convertOperation),
		WithMessageFields(func(msg ConvertFileCommand) map[string]any {
			return map[string]any{"path": msg.Path}
		}),
	}, opts...)

	return &ConvertFileHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *ConvertFileHandler) Execute(ctx context.Context, msg ConvertFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
