package lines

import "strings"

// InitialCapacity is the number of slots a new collection starts with.
const InitialCapacity = 2

// Lines is an append-only, ordered collection of source lines.
// It owns every string it holds.
type Lines struct {
	a        []string
	size     int
	capacity int
	grown    func(from, to int)
}

// New creates an empty collection with the initial capacity
func New() *Lines {
	return NewWithCapacity(InitialCapacity)
}

// NewWithCapacity creates an empty collection with room for n lines.
// A capacity below one is raised to one so doubling always makes progress.
func NewWithCapacity(n int) *Lines {
	if n < 1 {
		n = 1
	}

	return &Lines{
		a:        make([]string, n),
		size:     0,
		capacity: n,
	}
}

// OnGrow registers a hook called after every reallocation
func (l *Lines) OnGrow(fn func(from, to int)) {
	l.grown = fn
}

// Append copies s to the end of the collection, doubling the capacity first if it is full
func (l *Lines) Append(s string) {
	if l.size >= l.capacity {
		l.grow()
	}

	l.a[l.size] = strings.Clone(s)
	l.size++
}

func (l *Lines) grow() {
	from := l.capacity
	to := from * 2
	if to < 1 {
		to = 1
	}

	a := make([]string, to)
	copy(a, l.a[:l.size])

	l.a = a
	l.capacity = to

	if l.grown != nil {
		l.grown(from, to)
	}
}

// Len returns the number of lines in use
func (l *Lines) Len() int {
	return l.size
}

// Cap returns the number of allocated slots
func (l *Lines) Cap() int {
	return l.capacity
}

// At returns the line at index i (0-based). It panics if i is out of range.
func (l *Lines) At(i int) string {
	if i < 0 || i >= l.size {
		panic("lines: index out of range")
	}

	return l.a[i]
}

// All returns a copy of the lines in insertion order
func (l *Lines) All() []string {
	out := make([]string, l.size)
	copy(out, l.a[:l.size])
	return out
}

// Bytes returns the total length of all stored lines
func (l *Lines) Bytes() int {
	n := 0
	for _, s := range l.a[:l.size] {
		n += len(s)
	}
	return n
}

// Release drops every line held by the collection
func (l *Lines) Release() {
	l.a = nil
	l.size = 0
	l.capacity = 0
}
