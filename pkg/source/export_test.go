package source

import (
	"io"
	"io/fs"
)

func (l *Loader) SetOpen(fn func(string) (io.ReadCloser, error)) {
	l.open = fn
}

func (l *Loader) SetStat(fn func(string) (fs.FileInfo, error)) {
	l.stat = fn
}
