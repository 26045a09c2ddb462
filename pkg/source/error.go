package source

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when the input path does not exist. It is
// reported before any attempt to open the file.
var ErrNotFound = errors.New("no such file or directory")

// LineTooLongError reports a line whose length, terminator included,
// exceeds the loader's limit.
type LineTooLongError struct {
	Line    int    // 1-based line number
	Content string // the text read for that line, at most limit+1 bytes
	Limit   int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("line #%d too long: %d bytes, limit is %d", e.Line, len(e.Content), e.Limit)
}

// IsNotFound reports whether err is, or wraps, ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsLineTooLong extracts a LineTooLongError from err
func AsLineTooLong(err error) (*LineTooLongError, bool) {
	var tooLong *LineTooLongError
	if errors.As(err, &tooLong) {
		return tooLong, true
	}
	return nil, false
}
