package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/goliatone/go-adf/converter"
	"github.com/goliatone/go-adf/internal/commands"
	"github.com/goliatone/go-adf/internal/logging"
	"github.com/goliatone/go-adf/internal/logging/gologger"
)

func main() {
	var (
		filePath  = flag.String("file", commands.StdinPath, "Markdown file to convert (\"-\" reads stdin)")
		pretty    = flag.Bool("pretty", false, "Indent the emitted JSON")
		validate  = flag.Bool("validate", false, "Validate the output against the embedded ADF schema")
		logLevel  = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
		logFormat = flag.String("log-format", "console", "Log format (json, console, pretty)")
	)

	flag.Parse()

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  *logLevel,
		Format: *logFormat,
	})
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}

	handler := commands.NewConvertFileHandler(commands.ConvertConfig{
		Converter: converter.New(),
		Output:    os.Stdout,
		Stdin:     os.Stdin,
		Logger:    logging.ConvertLogger(provider),
	})

	msg := commands.ConvertFileCommand{
		Path:           *filePath,
		Pretty:         *pretty,
		ValidateOutput: *validate,
	}

	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("convert markdown: %v", err)
	}
}
