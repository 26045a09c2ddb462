package color

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	red       = color.New(color.FgRed)
	brightRed = color.New(color.FgHiRed, color.Bold)
	green     = color.New(color.FgGreen)
	yellow    = color.New(color.FgYellow)
	cyan      = color.New(color.FgCyan)
	gray      = color.New(color.FgHiBlack)
	bold      = color.New(color.Bold)
)

var colorEnabled = true

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stderr.Fd()) {
		EnableColor(false)
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// EnableColor switches colored output on or off for the whole process
func EnableColor(enable bool) {
	colorEnabled = enable
	color.NoColor = !enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func RedText(text string) string {
	return red.Sprint(text)
}

func BrightRedText(text string) string {
	return brightRed.Sprint(text)
}

func GreenText(text string) string {
	return green.Sprint(text)
}

func YellowText(text string) string {
	return yellow.Sprint(text)
}

func CyanText(text string) string {
	return cyan.Sprint(text)
}

func GrayText(text string) string {
	return gray.Sprint(text)
}

func BoldText(text string) string {
	return bold.Sprint(text)
}

// Error prefixes message with a highlighted "Error: " label when color is on
func Error(message string) string {
	if !colorEnabled {
		return message
	}
	return BrightRedText("Error: ") + message
}

// LineDiagnostic renders a diagnostic attached to a source line, followed by the line itself
func LineDiagnostic(line int, message, content string) string {
	if !colorEnabled {
		return fmt.Sprintf("Line #%d %s\n%s", line, message, content)
	}

	return fmt.Sprintf("%s %s\n%s",
		BrightRedText(fmt.Sprintf("Line #%d", line)),
		message,
		GrayText(content))
}
