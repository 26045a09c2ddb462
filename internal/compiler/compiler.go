package compiler

import (
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"mathlang/pkg/lines"
	"mathlang/pkg/source"
)

// Version of the MathLang compiler
const Version = "0.0.0"

// OutputSuffix is appended to the input path when no output file is given
const OutputSuffix = "_buildfile"

type Compiler struct {
	Debug       bool   // Enable debug logging
	NoColor     bool   // Disable colored output
	ShowVersion bool   // Print the version string
	SourceFile  string // Path to the source file
	OutputFile  string // Path to the output file
	LineLimit   int    // Longest accepted source line, 0 for the default
}

// DefaultOutputFile derives the output path from the input path
func DefaultOutputFile(sourceFile string) string {
	return sourceFile + OutputSuffix
}

// Compile loads the source file. The collection is returned to the caller,
// which owns it; no later stages consume it yet.
func (opts *Compiler) Compile() (*lines.Lines, error) {
	log.Info("Processing file", "file", opts.SourceFile, "output", opts.OutputFile)

	loader := source.New(
		source.WithLogger(log.Default()),
		source.WithLineLimit(opts.LineLimit),
	)

	src, count, err := loader.Load(opts.SourceFile)
	if err != nil {
		return nil, err
	}

	log.Info("Loaded source",
		"file", opts.SourceFile,
		"lines", count,
		"size", humanize.Bytes(uint64(src.Bytes())))

	return src, nil
}
