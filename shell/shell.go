// Package shell drives a string list from line-oriented scripts.
package shell

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/shaldengeki/crafting-interpreters/common"
	E "github.com/shaldengeki/crafting-interpreters/common/exceptions"
	"github.com/shaldengeki/crafting-interpreters/common/list"
	"github.com/shaldengeki/crafting-interpreters/common/log"

	"github.com/sirupsen/logrus"
)

type Shell struct {
	list   *list.List
	output io.Writer
	logger *logrus.Entry
}

func New(l *list.List, output io.Writer) *Shell {
	return &Shell{
		list:   l,
		output: output,
		logger: log.NewLogger("shell"),
	}
}

func (s *Shell) List() *list.List {
	return s.list
}

// Execute applies command to the list and writes one result line.
func (s *Shell) Execute(command Command) error {
	if command.IsEmpty() {
		return nil
	}
	s.logger.WithField("verb", command.Verb).Debug("execute ", strconv.Quote(command.Argument))
	var result string
	switch command.Verb {
	case VerbInsert:
		s.list.Insert(command.Argument)
		result = "inserted " + strconv.Quote(command.Argument)
	case VerbFind:
		if s.list.Find(command.Argument) == nil {
			result = "not found " + strconv.Quote(command.Argument)
		} else {
			result = "found " + strconv.Quote(command.Argument)
		}
	case VerbRemove:
		if s.list.Remove(command.Argument) == nil {
			result = "not found " + strconv.Quote(command.Argument)
		} else {
			result = "removed " + strconv.Quote(command.Argument)
		}
	case VerbList:
		result = s.list.String()
	case VerbReverse:
		result = "[" + strings.Join(s.list.ReverseArray(), " ") + "]"
	case VerbLen:
		result = strconv.Itoa(s.list.Len())
	case VerbClear:
		s.list.Clear()
		result = "cleared"
	default:
		return E.New("unknown command: ", command.Verb)
	}
	_, err := io.WriteString(s.output, result+"\n")
	return err
}

// LineError reports the script line a command failed on.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Run executes script line by line and stops at the first failing line.
// Lines have no length limit.
func (s *Shell) Run(ctx context.Context, script io.Reader) error {
	reader := bufio.NewReader(script)
	var lineNumber int
	for {
		if common.Done(ctx) {
			return ctx.Err()
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return &LineError{Line: lineNumber + 1, Err: E.Cause(readErr, "read script")}
		}
		if line == "" && readErr == io.EOF {
			return nil
		}
		lineNumber++
		command, err := Parse(line)
		if err == nil {
			err = s.Execute(command)
		}
		if err != nil {
			return &LineError{Line: lineNumber, Err: err}
		}
		if readErr == io.EOF {
			return nil
		}
	}
}
