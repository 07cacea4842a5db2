package shell

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shaldengeki/crafting-interpreters/common"
	E "github.com/shaldengeki/crafting-interpreters/common/exceptions"
)

const (
	VerbInsert  = "insert"
	VerbFind    = "find"
	VerbRemove  = "remove"
	VerbList    = "list"
	VerbReverse = "reverse"
	VerbLen     = "len"
	VerbClear   = "clear"
)

// Command is one parsed script line. The zero Command is a no-op.
type Command struct {
	Verb     string
	Argument string
}

func (c Command) IsEmpty() bool {
	return c.Verb == ""
}

func takesArgument(verb string) (bool, bool) {
	switch verb {
	case VerbInsert, VerbFind, VerbRemove:
		return true, true
	case VerbList, VerbReverse, VerbLen, VerbClear:
		return false, true
	}
	return false, false
}

// Parse reads a line of the form `verb [value]`. The value is the rest of the
// line with surrounding whitespace trimmed; a double-quoted value is unquoted
// with Go string literal rules. Blank lines and lines starting with # parse
// to the zero Command.
func Parse(line string) (Command, error) {
	if common.IsBlank(line) {
		return Command{}, nil
	}
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#") {
		return Command{}, nil
	}
	verb, argument := line, ""
	if index := strings.IndexFunc(line, unicode.IsSpace); index >= 0 {
		verb, argument = line[:index], line[index:]
	}
	verb = strings.ToLower(verb)
	argument = strings.TrimSpace(argument)
	hasArgument, known := takesArgument(verb)
	if !known {
		return Command{}, E.New("unknown command: ", verb)
	}
	if !hasArgument {
		if argument != "" {
			return Command{}, E.New("unexpected argument for ", verb, ": ", argument)
		}
		return Command{Verb: verb}, nil
	}
	if argument == "" {
		return Command{}, E.New("missing value for ", verb)
	}
	if strings.HasPrefix(argument, `"`) {
		unquoted, err := strconv.Unquote(argument)
		if err != nil {
			return Command{}, E.Cause(err, "unquote ", argument)
		}
		argument = unquoted
	}
	return Command{Verb: verb, Argument: argument}, nil
}
