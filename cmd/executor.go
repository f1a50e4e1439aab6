package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"IdeaEnv/internal/config"
	"IdeaEnv/internal/console"
	"IdeaEnv/internal/defaults"
	"IdeaEnv/internal/dotenv"
	"IdeaEnv/internal/logger"
	"IdeaEnv/internal/paths"
	"IdeaEnv/internal/version"
	"IdeaEnv/internal/workspace"
)

// SettingsPrompt is the question asked when no settings name is configured.
const SettingsPrompt = "Enter settings filename: "

// Runner carries everything one invocation reads from outside the folder.
type Runner struct {
	Config config.AppConfig
	In     io.Reader       // answers to prompts
	Out    io.Writer       // patched XML, help and version
	Prompt io.Writer       // prompt text
	Env    dotenv.Lookuper // fallback for ${VAR} references; nil means the process environment
}

// Execute runs opts against the process streams and returns the exit status.
func Execute(ctx context.Context, opts Options, conf config.AppConfig) int {
	r := &Runner{
		Config: conf,
		In:     os.Stdin,
		Out:    os.Stdout,
		Prompt: os.Stderr,
	}
	return r.Execute(ctx, opts)
}

// Execute handles the informational flags, then patches the workspace.
// Failures end in logger.Fatal.
func (r *Runner) Execute(ctx context.Context, opts Options) int {
	switch {
	case opts.Help:
		PrintHelp(r.Out)
		return 0
	case opts.Version:
		r.showVersion()
		return 0
	case opts.ConfigShow:
		r.showConfig(ctx)
		return 0
	}

	err := r.Run(ctx, opts)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, console.ErrNoInput):
		logger.Warn(ctx, "No settings name given, nothing was changed.")
		return 0
	}
	logger.Fatal(ctx, "%v", err)
	return 1
}

// Run reads the .env file, adds the missing defaults and patches the
// workspace file. The patched XML is printed unless opts.Quiet is set.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = r.Config.Workspace.EnvFile
	}
	targets := paths.ForFolder(opts.Folder, envFile)

	var lookup dotenv.Lookuper = dotenv.OSEnv{}
	if r.Env != nil {
		lookup = r.Env
	}
	env, err := dotenv.ReadFile(ctx, targets.EnvFile, dotenv.WithEnv(lookup))
	if err != nil {
		return err
	}

	settings, err := r.settingsName(ctx, opts)
	if err != nil {
		return err
	}
	for _, key := range env.MergeMissing(defaults.Generate(settings, r.Config.Defaults.SettingsSuffix)) {
		logger.Info(ctx, "Added default '{{_Var_}}%s{{|-|}}=\"{{_Value_}}%s{{|-|}}\"'", key, env.Get(key))
	}

	report, err := workspace.Apply(ctx, env, workspace.Options{
		Targets:   targets,
		SkipTypes: workspace.NewTypeSet(r.Config.Workspace.AllSkipTypes()...),
		DryRun:    opts.DryRun,
	})
	if err != nil {
		return err
	}

	if !opts.Quiet {
		fmt.Fprint(r.Out, report.XML)
		if !strings.HasSuffix(report.XML, "\n") {
			fmt.Fprintln(r.Out)
		}
	}
	return nil
}

// settingsName picks the settings name from the flag, then the config file,
// then asks for it. An empty answer returns console.ErrNoInput, which ends
// the run without writing anything instead of generating ".settings".
func (r *Runner) settingsName(ctx context.Context, opts Options) (string, error) {
	if opts.Settings != "" {
		return opts.Settings, nil
	}
	if name := r.Config.Defaults.Settings; name != "" {
		logger.Info(ctx, "Using settings '{{_Value_}}%s{{|-|}}' from '{{_File_}}%s{{|-|}}'", name, paths.GetConfigFilePath())
		return name, nil
	}

	in := r.In
	if in == nil {
		in = strings.NewReader("")
	}
	prompt := r.Prompt
	if prompt == nil {
		prompt = io.Discard
	}
	return console.TextPrompt(ctx, logger.Notice, prompt, in, SettingsPrompt)
}

func (r *Runner) showVersion() {
	fmt.Fprintln(r.Out, console.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	fmt.Fprintln(r.Out, console.Sprintf("Commit: {{_Version_}}%s{{|-|}}  Built: {{_Version_}}%s{{|-|}}", version.Commit, version.BuildDate))
}

func (r *Runner) showConfig(ctx context.Context) {
	out, err := config.Marshal(r.Config)
	if err != nil {
		logger.Error(ctx, "Could not render configuration: %v", err)
		return
	}
	fmt.Fprintln(r.Out, console.Sprintf("Configuration file: '{{_File_}}%s{{|-|}}'", paths.GetConfigFilePath()))
	fmt.Fprintln(r.Out)
	fmt.Fprint(r.Out, out)
}
