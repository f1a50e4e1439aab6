package cmd

import (
	"io"

	"IdeaEnv/internal/version"

	"github.com/spf13/pflag"
)

// newFlagSet defines the command line flags and binds them to opts.
func newFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(version.CommandName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	// Modifiers
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&opts.Debug, "debug", "x", false, "Debug output")
	fs.BoolVarP(&opts.Quiet, "quiet", "q", false, "Do not print the patched file")
	fs.BoolVarP(&opts.DryRun, "dry-run", "n", false, "Patch in memory only")

	// Inputs
	fs.StringVarP(&opts.Settings, "settings", "s", "", "Django settings module")
	fs.StringVarP(&opts.EnvFile, "env-file", "e", "", "Path of the .env file")

	// Information
	fs.BoolVarP(&opts.Help, "help", "h", false, "Show help")
	fs.BoolVarP(&opts.Version, "version", "V", false, "Show version")
	fs.BoolVar(&opts.ConfigShow, "config-show", false, "Show configuration")

	return fs
}
