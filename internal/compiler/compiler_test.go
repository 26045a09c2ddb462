package compiler_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathlang/internal/compiler"
	"mathlang/pkg/source"
)

func TestDefaultOutputFile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.ml_buildfile", compiler.DefaultOutputFile("a.ml"))
	assert.Equal(t, "dir/prog_buildfile", compiler.DefaultOutputFile("dir/prog"))
}

func TestCompileLoadsSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prog.ml")
	require.NoError(t, os.WriteFile(path, []byte("print 1\nprint 2\n"), 0600))

	opts := compiler.Compiler{SourceFile: path, OutputFile: compiler.DefaultOutputFile(path)}
	src, err := opts.Compile()
	require.NoError(t, err)

	assert.Equal(t, []string{"print 1\n", "print 2\n"}, src.All())
}

func TestCompileHonoursLineLimit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prog.ml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("y", 40)+"\n"), 0600))

	opts := compiler.Compiler{SourceFile: path, LineLimit: 20}
	_, err := opts.Compile()

	tooLong, ok := source.AsLineTooLong(err)
	require.True(t, ok)
	assert.Equal(t, 1, tooLong.Line)
	assert.Equal(t, 20, tooLong.Limit)
}

func TestCompileMissingSource(t *testing.T) {
	t.Parallel()

	opts := compiler.Compiler{SourceFile: filepath.Join(t.TempDir(), "nope.ml")}
	_, err := opts.Compile()

	assert.True(t, source.IsNotFound(err))
}
