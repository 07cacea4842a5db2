package main

import (
	"context"
	"io"
	"os"

	crafting "github.com/shaldengeki/crafting-interpreters"
	E "github.com/shaldengeki/crafting-interpreters/common/exceptions"
	"github.com/shaldengeki/crafting-interpreters/common/list"
	"github.com/shaldengeki/crafting-interpreters/common/log"
	"github.com/shaldengeki/crafting-interpreters/shell"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Flags struct {
	File     string
	Stdin    bool
	LogLevel string
}

func MainCmd() *cobra.Command {
	flags := new(Flags)

	cmd := &cobra.Command{
		Use:     "dll [values...]",
		Short:   "insert, find and remove strings in a doubly linked list",
		Version: crafting.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), flags, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "Execute commands from a script file.")
	cmd.Flags().BoolVar(&flags.Stdin, "stdin", false, "Execute commands read from standard input.")
	cmd.Flags().StringVarP(&flags.LogLevel, "log-level", "l", logrus.GetLevel().String(), `Set the log level.

Script commands:

insert <value>
find <value>
remove <value>
list
reverse
len
clear`)

	return cmd
}

func Run(ctx context.Context, flags *Flags, values []string, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := log.SetLevel(flags.LogLevel); err != nil {
		return err
	}
	if flags.File != "" && flags.Stdin {
		return E.New("--file and --stdin are mutually exclusive")
	}

	s := shell.New(list.New(), stdout)
	for _, value := range values {
		s.List().Insert(value)
	}

	var script io.Reader
	if flags.File != "" {
		scriptFile, err := os.Open(flags.File)
		if err != nil {
			return E.Cause(err, "open script")
		}
		defer scriptFile.Close()
		script = scriptFile
	} else if flags.Stdin {
		script = stdin
	}
	if script != nil {
		if err := s.Run(ctx, script); err != nil {
			return E.Cause(err, "run script")
		}
	}
	return s.Execute(shell.Command{Verb: shell.VerbList})
}

// errorFields splits a script line error into log fields and its cause.
func errorFields(err error) (logrus.Fields, error) {
	if lineErr, loaded := E.Cast[*shell.LineError](err); loaded {
		return logrus.Fields{"line": lineErr.Line}, lineErr.Err
	}
	return nil, err
}
