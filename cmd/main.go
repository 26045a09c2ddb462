package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"mathlang/internal/cli"
	"mathlang/internal/logger"
	"mathlang/pkg/color"
	"mathlang/pkg/source"
)

// Main entry point for the MathLang compiler.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// run parses args and loads the input file. Every failure is returned so
// that main alone decides the exit status.
func run(outW io.Writer, args []string) error {
	logger.Init(false, false)

	options, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger.Init(options.Debug, options.NoColor)

	src, err := options.Compile()
	if err != nil {
		return err
	}
	defer src.Release()

	return nil
}

// report prints the diagnostic for err and returns the exit status
func report(w io.Writer, err error) int {
	if exitErr, ok := err.(*cli.ExitError); ok {
		if exitErr.Message != "" {
			fmt.Fprintln(w, color.Error(exitErr.Message))
		}
		return exitErr.Code
	}

	if source.IsNotFound(err) {
		fmt.Fprintln(w, color.Error("No such file or directory found, exiting..."))
		log.Debug("Input missing", "error", err)
		return 1
	}

	if tooLong, ok := source.AsLineTooLong(err); ok {
		fmt.Fprintln(w, color.LineDiagnostic(tooLong.Line, "too long, exiting...", tooLong.Content))
		return 1
	}

	log.Error("Compilation failed", "error", err)
	return 1
}
