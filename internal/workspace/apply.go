package workspace

import (
	"context"
	"fmt"
	"os"
	"strings"

	"IdeaEnv/internal/envmap"
	"IdeaEnv/internal/logger"
	"IdeaEnv/internal/paths"
	"IdeaEnv/internal/system"
)

// Options controls Apply.
type Options struct {
	Targets   paths.Targets
	SkipTypes TypeSet // nil means DefaultSkipTypes
	DryRun    bool    // patch in memory only
}

// Report is the outcome of Apply.
type Report struct {
	Result
	XML     string // the patched document
	Changed bool
}

// Apply patches the workspace file named in opts with env.
// The original bytes are written to the backup file before the workspace
// file is overwritten, so a failed save always leaves a backup behind.
func Apply(ctx context.Context, env *envmap.Map, opts Options) (Report, error) {
	t := opts.Targets
	if _, err := os.Stat(t.WorkspaceFile); err != nil {
		return Report{}, fmt.Errorf("reading workspace: %w", err)
	}

	if !opts.DryRun {
		lock, err := AcquireLock(t.LockFile)
		if err != nil {
			return Report{}, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn(ctx, "%v", err)
			}
		}()
	}

	doc, err := Load(t.WorkspaceFile)
	if err != nil {
		return Report{}, err
	}

	skip := opts.SkipTypes
	if skip == nil {
		skip = DefaultSkipTypes()
	}
	res := Patch(doc.Tree(), env, skip)

	for _, typ := range res.Skipped {
		logger.Info(ctx, "Skipping run configuration of type '{{_Type_}}%s{{|-|}}'", typ)
	}
	for _, conf := range res.Patched {
		logger.Notice(ctx, "%s", conf.String())
		logger.Notice(ctx, strings.Repeat("=", 80))
	}

	out, err := doc.Render()
	if err != nil {
		return Report{}, fmt.Errorf("serializing %s: %w", t.WorkspaceFile, err)
	}
	report := Report{Result: res, XML: out}

	if diff := LineDiff(string(doc.Original()), out); len(diff) > 0 {
		report.Changed = true
		logger.Debug(ctx, "Changes to '{{_File_}}%s{{|-|}}':", t.WorkspaceFile)
		for _, line := range diff {
			if strings.HasPrefix(line, "+") {
				logger.Debug(ctx, "{{_DiffAdd_}}%s{{|-|}}", line)
			} else {
				logger.Debug(ctx, "{{_DiffRemove_}}%s{{|-|}}", line)
			}
		}
	}

	if opts.DryRun {
		logger.Notice(ctx, "Dry run, not writing '{{_File_}}%s{{|-|}}'", t.WorkspaceFile)
		return report, nil
	}

	if err := doc.WriteBackup(t.BackupFile); err != nil {
		return report, err
	}
	system.TakeOwnership(ctx, t.BackupFile)
	logger.Info(ctx, "Saved backup to '{{_File_}}%s{{|-|}}'", t.BackupFile)

	if err := doc.Save(out); err != nil {
		return report, err
	}
	logger.Notice(ctx, "Patched {{_Count_}}%d{{|-|}} run configurations in '{{_File_}}%s{{|-|}}'", len(res.Patched), t.WorkspaceFile)
	return report, nil
}
