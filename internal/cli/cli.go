// Package cli turns command-line arguments into compiler options.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"mathlang/internal/compiler"
	"mathlang/pkg/color"
)

// ExitError carries the exit status the process should end with.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// ErrNoInput is reported when neither -f nor -v is given
var ErrNoInput = errors.New("No input file specified, exiting...")

// Parse processes args (without the program name). It returns the options,
// whether the program should stop with status 0, or an *ExitError.
func Parse(args []string, output io.Writer) (*compiler.Compiler, bool, error) {
	if len(args) < 1 {
		Banner(output)
		return nil, false, &ExitError{Code: 1}
	}

	opts := &compiler.Compiler{}

	flagSet := flag.NewFlagSet("mathlang", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, "Usage: mathlang -f <input> [-o <output>] [-v]\n\nOptions:\n")
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(&opts.SourceFile, "f", "", "Input source file")
	flagSet.StringVar(&opts.OutputFile, "o", "", "Output file (default <input>"+compiler.OutputSuffix+")")
	flagSet.BoolVar(&opts.ShowVersion, "v", false, "Print the compiler version")
	flagSet.BoolVar(&opts.Debug, "d", false, "Debug logging")
	flagSet.BoolVar(&opts.NoColor, "n", false, "No color")
	flagSet.IntVar(&opts.LineLimit, "line-limit", 0, "Longest accepted line in bytes, terminator included (0 = default)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}
	log.Debug("Arguments parsed", "args", args)

	if opts.NoColor {
		color.EnableColor(false)
	}

	if opts.ShowVersion {
		fmt.Fprintf(output, "MathLang compiler version: %s\n", compiler.Version)
	}

	if opts.SourceFile == "" {
		if opts.ShowVersion {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 1, Message: ErrNoInput.Error()}
	}

	if opts.OutputFile == "" {
		opts.OutputFile = compiler.DefaultOutputFile(opts.SourceFile)
	}

	log.Debug("Resolved paths", "input", opts.SourceFile, "output", opts.OutputFile)
	return opts, false, nil
}

// Banner prints the welcome line shown when the compiler is run without arguments
func Banner(output io.Writer) {
	fmt.Fprintf(output, "%s Version: %s\n",
		color.BoldText("Welcome to the MathLang compiler!"), compiler.Version)
	fmt.Fprintln(output, "Usage: mathlang -f <input> [-o <output>] [-v]")
}
