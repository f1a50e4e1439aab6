package cmd

import (
	"fmt"
	"strings"

	"IdeaEnv/internal/constants"
	"IdeaEnv/internal/version"
)

// Options is the parsed command line.
type Options struct {
	Help       bool
	Version    bool
	ConfigShow bool
	Verbose    bool
	Debug      bool
	Quiet      bool
	DryRun     bool
	Settings   string
	EnvFile    string
	Folder     string // empty means the current directory
}

// UsageError reports a command line that parsed but cannot be acted on.
// It is a warning: nothing is done and the exit status is 0.
type UsageError struct {
	Args []string // positional arguments given
}

func (e *UsageError) Error() string {
	return fmt.Sprintf(
		"'{{_UserCommand_}}%s{{|-|}}' only accepts the folder where you want to run (got {{_Count_}}%d{{|-|}}). It assumes '{{_Folder_}}%s/{{|-|}}' and '{{_File_}}%s{{|-|}}' are in that folder.",
		version.CommandName, len(e.Args), constants.IdeaDirName, constants.EnvFileName,
	)
}

// ParseError wraps argument parsing errors to provide rich output
type ParseError struct {
	Args    []string // The full argument list passed to Parse
	Index   int      // The index where the error occurred
	Message string   // The specific error message
}

func (e *ParseError) Error() string {
	indent := "   "

	cmdLineParts := []string{fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName)}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		if i == e.Index {
			// Highlight failing option
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", e.Args[i]))
		} else {
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", e.Args[i]))
		}
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	// Indent + ' + command + space + previous args
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandError_}}^{{|-|}}"

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, e.Message)

	failing := ""
	if e.Index < len(e.Args) {
		failing, _, _ = strings.Cut(e.Args[e.Index], "=")
	}
	if usage := GetUsage(failing); failing != "" && usage != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(strings.TrimSuffix(usage, "\n"), "\n") {
			out += indent + line + "\n"
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}
	return out
}

// Parse parses the raw command line arguments.
// More than one positional argument gives a *UsageError alongside the
// parsed flags; anything pflag rejects gives a *ParseError.
func Parse(args []string) (Options, error) {
	var opts Options
	fs := newFlagSet(&opts)

	if err := fs.Parse(args); err != nil {
		return opts, &ParseError{Args: args, Index: failingIndex(args, err.Error()), Message: err.Error()}
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		opts.Folder = rest[0]
	default:
		return opts, &UsageError{Args: rest}
	}
	return opts, nil
}

// failingIndex guesses which argument pflag complained about.
func failingIndex(args []string, msg string) int {
	words := make(map[string]bool)
	for _, w := range strings.Fields(msg) {
		words[strings.Trim(w, `"',:`)] = true
	}
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, _, _ := strings.Cut(arg, "=")
		if words[name] {
			return i
		}
	}
	return max(len(args)-1, 0)
}
