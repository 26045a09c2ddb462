// Package source loads a source file into memory as a sequence of length-bounded lines.
package source

import (
	"bufio"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"mathlang/pkg/lines"
)

type Loader struct {
	limit int
	log   *log.Logger

	stat func(string) (fs.FileInfo, error)
	open func(string) (io.ReadCloser, error)
}

// New creates a Loader with the default line limit
func New(opts ...Option) *Loader {
	l := &Loader{
		limit: DefaultLineLimit,
		log:   log.Default(),
		stat:  os.Stat,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads path with a default Loader
func Load(path string) (*lines.Lines, int, error) {
	return New().Load(path)
}

// Limit returns the configured line limit
func (l *Loader) Limit() int {
	return l.limit
}

// Load checks that path exists, then reads it line by line. On success the
// returned collection belongs to the caller and the count equals its Len.
func (l *Loader) Load(path string) (*lines.Lines, int, error) {
	if _, err := l.stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, 0, errors.Wrapf(err, "cannot access %s", path)
	}

	l.log.Debug("Opening source", "file", path, "limit", l.limit)
	f, err := l.open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "cannot open %s", path)
	}
	defer func() {
		f.Close()
		l.log.Debug("Closed source", "file", path)
	}()

	out, n, err := l.Read(f)
	if err != nil {
		if _, ok := AsLineTooLong(err); ok {
			return nil, 0, err
		}
		return nil, 0, errors.Wrapf(err, "cannot read %s", path)
	}

	return out, n, nil
}

// Read collects lines from r until EOF. Each stored line keeps its
// terminator, and a final line without one is still collected.
func (l *Loader) Read(r io.Reader) (*lines.Lines, int, error) {
	// One byte past the limit is enough to tell an overlong line apart.
	br := bufio.NewReaderSize(r, l.limit+1)

	out := lines.New()
	out.OnGrow(func(from, to int) {
		l.log.Debug("Growing line buffer", "from", from, "to", to)
	})

	lineNum := 1
	for {
		chunk, err := br.ReadSlice('\n')

		if len(chunk) > l.limit || errors.Is(err, bufio.ErrBufferFull) {
			return nil, 0, &LineTooLongError{
				Line:    lineNum,
				Content: string(chunk),
				Limit:   l.limit,
			}
		}

		if len(chunk) > 0 {
			out.Append(string(chunk))
			lineNum++
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
	}

	return out, out.Len(), nil
}
