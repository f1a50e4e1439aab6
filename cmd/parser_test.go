package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"IdeaEnv/internal/console"
	"IdeaEnv/internal/testutils"
)

func TestParse(t *testing.T) {
	tests := []struct {
		args     []string
		expected Options
	}{
		{nil, Options{}},
		{[]string{"proj"}, Options{Folder: "proj"}},
		{[]string{"-s", "shop", "proj"}, Options{Settings: "shop", Folder: "proj"}},
		{[]string{"proj", "--settings=shop.dev"}, Options{Settings: "shop.dev", Folder: "proj"}},
		{[]string{"-vn", "-e", "local.env"}, Options{Verbose: true, DryRun: true, EnvFile: "local.env"}},
		{[]string{"-xq"}, Options{Debug: true, Quiet: true}},
		{[]string{"--config-show"}, Options{ConfigShow: true}},
		{[]string{"-V"}, Options{Version: true}},
		{[]string{"--", "-odd-folder"}, Options{Folder: "-odd-folder"}},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		got, err := Parse(tt.args)
		actual := fmt.Sprintf("%+v", got)
		if err != nil {
			actual = err.Error()
		}
		cases = append(cases, testutils.TestCase{
			Name:     "Parse",
			Input:    strings.Join(tt.args, " "),
			Expected: fmt.Sprintf("%+v", tt.expected),
			Actual:   actual,
			Pass:     err == nil && got == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestParseTooManyFolders(t *testing.T) {
	opts, err := Parse([]string{"-s", "shop", "a", "b"})

	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("Parse() error = %v; want *UsageError", err)
	}
	if len(usageErr.Args) != 2 {
		t.Errorf("UsageError.Args = %v", usageErr.Args)
	}
	if opts.Settings != "shop" {
		t.Errorf("flags should still be parsed, got %+v", opts)
	}
	if !strings.Contains(console.Strip(err.Error()), ".idea/") {
		t.Errorf("UsageError message = %q", err.Error())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantIndex int
		wantUsage string
	}{
		{"UnknownLong", []string{"-v", "--bogus"}, 1, ""},
		{"UnknownShort", []string{"proj", "-z"}, 1, ""},
		{"MissingArgument", []string{"-v", "--settings"}, 1, "--settings"},
		{"MissingShortArgument", []string{"-q", "-e"}, 1, "--env-file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse() error = %v; want *ParseError", err)
			}
			if parseErr.Index != tt.wantIndex {
				t.Errorf("Index = %d; want %d (%s)", parseErr.Index, tt.wantIndex, parseErr.Message)
			}

			msg := console.Strip(err.Error())
			if !strings.Contains(msg, "^") {
				t.Errorf("missing caret in %q", msg)
			}
			if tt.wantUsage != "" && !strings.Contains(msg, tt.wantUsage) {
				t.Errorf("usage for %s missing from %q", tt.wantUsage, msg)
			}
		})
	}
}

func TestGetUsage(t *testing.T) {
	all := console.Strip(GetUsage(""))
	for _, flag := range []string{"--settings", "--env-file", "--dry-run", "--quiet", "--verbose", "--debug", "--config-show", "--version", "--help"} {
		if !strings.Contains(all, flag) {
			t.Errorf("usage is missing %s", flag)
		}
	}

	one := console.Strip(GetUsage("-n"))
	if !strings.HasPrefix(one, "-n --dry-run") || strings.Contains(one, "--quiet") {
		t.Errorf("GetUsage(-n) = %q", one)
	}
	if GetUsage("--bogus") != "" {
		t.Error("GetUsage of an unknown flag should be empty")
	}
}
