package cmd

import (
	"fmt"
	"io"
	"strings"

	"IdeaEnv/internal/console"
	"IdeaEnv/internal/paths"
	"IdeaEnv/internal/version"
)

// PrintHelp prints usage information to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, console.Parse(GetUsage("")))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag, or "" if
// there is no such flag.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName
	showAll := target == ""

	if showAll {
		printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}] [{{_UsageFile_}}<folder>{{|-|}}]", appCmd))
		printStr("")
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
		printStr("Copies the variables of a '{{_UsageFile_}}.env{{|-|}}' file into every run configuration of")
		printStr("'{{_UsageFile_}}.idea/workspace.xml{{|-|}}', adding the Django defaults that are missing.")
		printStr("The original file is saved as '{{_UsageFile_}}.idea/workspace_backup.xml{{|-|}}' first.")
		printStr("")
		printStr("The folder defaults to the current directory and must hold both '{{_UsageFile_}}.idea/{{|-|}}'")
		printStr("and '{{_UsageFile_}}.env{{|-|}}'. Run configurations of type")
		printStr("'{{_UsageVar_}}GoApplicationRunConfiguration{{|-|}}' are never changed.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	match := func(opts ...string) bool {
		if showAll {
			return true
		}
		for _, o := range opts {
			if o == target {
				return true
			}
		}
		return false
	}

	if match("-s", "--settings") {
		printStr("{{_UsageCommand_}}-s --settings{{|-|}} {{_UsageOption_}}<name>{{|-|}}")
		printStr("	Value of '{{_UsageVar_}}DJANGO_SETTINGS_MODULE{{|-|}}' when the '{{_UsageFile_}}.env{{|-|}}' file does not set it.")
		printStr("	'{{_UsageOption_}}.settings{{|-|}}' is appended to names without a dot. Asked for when not given.")
	}
	if match("-e", "--env-file") {
		printStr("{{_UsageCommand_}}-e --env-file{{|-|}} {{_UsageFile_}}<path>{{|-|}}")
		printStr("	Read variables from this file instead of '{{_UsageFile_}}<folder>/.env{{|-|}}'")
	}
	if match("-n", "--dry-run") {
		printStr("{{_UsageCommand_}}-n --dry-run{{|-|}}")
		printStr("	Show the patched file without writing anything")
	}
	if match("-q", "--quiet") {
		printStr("{{_UsageCommand_}}-q --quiet{{|-|}}")
		printStr("	Do not print the patched file")
	}
	if match("-v", "--verbose") {
		printStr("{{_UsageCommand_}}-v --verbose{{|-|}}")
		printStr("	Verbose")
	}
	if match("-x", "--debug") {
		printStr("{{_UsageCommand_}}-x --debug{{|-|}}")
		printStr("	Debug, includes the changes made to the file")
	}
	if match("--config-show") {
		printStr("{{_UsageCommand_}}--config-show{{|-|}}")
		printStr(fmt.Sprintf("	Show the settings read from '{{_UsageFile_}}%s{{|-|}}'", paths.GetConfigFilePath()))
	}
	if match("-V", "--version") {
		printStr("{{_UsageCommand_}}-V --version{{|-|}}")
		printStr("	Display version information")
	}
	if match("-h", "--help") {
		printStr("{{_UsageCommand_}}-h --help{{|-|}}")
		printStr("	Show this usage information")
	}

	return sb.String()
}
