package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	E "github.com/shaldengeki/crafting-interpreters/common/exceptions"
	"github.com/shaldengeki/crafting-interpreters/common/list"
	"github.com/shaldengeki/crafting-interpreters/shell"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()
	var output bytes.Buffer
	s := shell.New(list.New(), &output)
	script := strings.Join([]string{
		"# build",
		"insert a",
		"insert b",
		"insert a",
		"",
		"find b",
		"remove a",
		"find a",
		"remove z",
		"list",
		"reverse",
		"len",
	}, "\n")
	require.NoError(t, s.Run(context.Background(), strings.NewReader(script)))
	require.Equal(t, strings.Join([]string{
		`inserted "a"`,
		`inserted "b"`,
		`inserted "a"`,
		`found "b"`,
		`removed "a"`,
		`found "a"`,
		`not found "z"`,
		"[b a]",
		"[a b]",
		"2",
	}, "\n")+"\n", output.String())
	require.Equal(t, []string{"b", "a"}, s.List().Array())
}

func TestRunEmptyList(t *testing.T) {
	t.Parallel()
	var output bytes.Buffer
	s := shell.New(list.New(), &output)
	require.NoError(t, s.Run(context.Background(), strings.NewReader("find x\nremove x\nlist\nlen\n")))
	require.Equal(t, "not found \"x\"\nnot found \"x\"\n[]\n0\n", output.String())
}

func TestRunStopsAtError(t *testing.T) {
	t.Parallel()
	var output bytes.Buffer
	s := shell.New(list.New(), &output)
	err := s.Run(context.Background(), strings.NewReader("insert x\npush y\ninsert z\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
	require.Equal(t, []string{"x"}, s.List().Array())
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := shell.New(list.New(), new(bytes.Buffer))
	require.ErrorIs(t, s.Run(ctx, strings.NewReader("insert x\n")), context.Canceled)
	require.True(t, s.List().IsEmpty())
}

func TestExecute(t *testing.T) {
	t.Parallel()
	var output bytes.Buffer
	s := shell.New(list.New(), &output)
	require.NoError(t, s.Execute(shell.Command{}))
	require.NoError(t, s.Execute(shell.Command{Verb: shell.VerbInsert, Argument: "x"}))
	require.NoError(t, s.Execute(shell.Command{Verb: shell.VerbClear}))
	require.Error(t, s.Execute(shell.Command{Verb: "pop"}))
	require.Equal(t, "inserted \"x\"\ncleared\n", output.String())
	require.Nil(t, s.List().Head())
	require.Nil(t, s.List().Tail())
}

func TestRunLongLine(t *testing.T) {
	t.Parallel()
	value := strings.Repeat("x", 70000)
	var output bytes.Buffer
	s := shell.New(list.New(), &output)
	require.NoError(t, s.Run(context.Background(), strings.NewReader("insert "+value+"\nlen")))
	require.NotNil(t, s.List().Find(value))
	require.True(t, strings.HasSuffix(output.String(), "\n1\n"))
}

func TestRunLineError(t *testing.T) {
	t.Parallel()
	s := shell.New(list.New(), new(bytes.Buffer))
	err := s.Run(context.Background(), strings.NewReader("insert a\n\ninsert\n"))
	lineErr, loaded := E.Cast[*shell.LineError](err)
	require.True(t, loaded)
	require.Equal(t, 3, lineErr.Line)
	require.Equal(t, "line 3: missing value for insert", err.Error())
}

func TestRunReadError(t *testing.T) {
	t.Parallel()
	readErr := errors.New("disk failure")
	s := shell.New(list.New(), new(bytes.Buffer))
	script := io.MultiReader(strings.NewReader("insert a\n"), iotest.ErrReader(readErr))
	err := s.Run(context.Background(), script)
	require.ErrorIs(t, err, readErr)
	lineErr, loaded := E.Cast[*shell.LineError](err)
	require.True(t, loaded)
	require.Equal(t, 2, lineErr.Line)
	require.Equal(t, []string{"a"}, s.List().Array())
}
