package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/goliatone/go-adf/converter"
	"github.com/goliatone/go-adf/importer"
	"github.com/goliatone/go-adf/internal/commands"
	"github.com/goliatone/go-adf/internal/logging"
	"github.com/goliatone/go-adf/internal/logging/gologger"
)

func main() {
	var (
		contentDir    = flag.String("content-dir", "content", "Path to the markdown content root")
		outDir        = flag.String("out-dir", "", "Directory receiving the emitted ADF JSON files")
		pattern       = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		recursive     = flag.Bool("recursive", true, "Traverse sub-directories of the content root")
		pretty        = flag.Bool("pretty", false, "Indent the emitted JSON")
		validate      = flag.Bool("validate", false, "Validate every document against the embedded ADF schema")
		dryRun        = flag.Bool("dry-run", false, "Convert without writing any file")
		includeDrafts = flag.Bool("include-drafts", false, "Convert documents marked draft in frontmatter")
		logLevel      = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
		logFormat     = flag.String("log-format", "console", "Log format (json, console, pretty)")
	)

	flag.Parse()

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  *logLevel,
		Format: *logFormat,
	})
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}
	logger := logging.ImportLogger(provider)

	loader := importer.NewLoader(os.DirFS(*contentDir), importer.LoaderConfig{
		Pattern:   *pattern,
		Recursive: *recursive,
	})

	imp := importer.New(importer.Config{
		Loader:    loader,
		Converter: converter.New(),
		Logger:    logger,
	})

	handler := commands.NewImportDirectoryHandler(imp, logger)

	msg := commands.ImportDirectoryCommand{
		Directory:      ".",
		OutputDir:      *outDir,
		Pretty:         *pretty,
		ValidateOutput: *validate,
		DryRun:         *dryRun,
		IncludeDrafts:  *includeDrafts,
	}

	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("import markdown directory: %v", err)
	}
}
