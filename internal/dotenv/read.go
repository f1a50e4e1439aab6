package dotenv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"IdeaEnv/internal/envmap"
	"IdeaEnv/internal/logger"
)

// ErrMissingFile is returned by Load when the dotenv file does not exist.
var ErrMissingFile = errors.New("dotenv file does not exist")

// Load reads and parses the file at path.
// A missing file yields an empty mapping and an error wrapping ErrMissingFile.
func Load(path string, opts ...Option) (*envmap.Map, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return envmap.New(), nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	env, warnings := Parse(string(data), opts...)
	return env, warnings, nil
}

// ReadFile is Load with the recoverable conditions turned into log warnings.
// Only unexpected read failures are returned.
func ReadFile(ctx context.Context, path string, opts ...Option) (*envmap.Map, error) {
	env, warnings, err := Load(path, opts...)
	if errors.Is(err, ErrMissingFile) {
		logger.Warn(ctx, "Not reading '{{_File_}}%s{{|-|}}' - it doesn't exist.", path)
		return env, nil
	}
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		logger.Warn(ctx, "'{{_File_}}%s{{|-|}}': %s", path, w.String())
	}
	logger.Info(ctx, "Read {{_Var_}}%d{{|-|}} variables from '{{_File_}}%s{{|-|}}'", env.Len(), path)
	return env, nil
}
