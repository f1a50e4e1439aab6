package workspace

import (
	"fmt"
	"io/fs"
	"os"
)

// Document is a workspace file read once from disk.
type Document struct {
	path     string
	mode     fs.FileMode
	original []byte
	tree     Tree
}

// Load reads and parses the workspace file at path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading workspace: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workspace: %w", err)
	}
	tree, err := ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Document{
		path:     path,
		mode:     info.Mode().Perm(),
		original: data,
		tree:     tree,
	}, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string { return d.path }

// Tree returns the editable tree.
func (d *Document) Tree() Tree { return d.tree }

// Original returns the bytes as they were read.
func (d *Document) Original() []byte { return d.original }

// Render serializes the tree in its current state.
func (d *Document) Render() (string, error) {
	return d.tree.Serialize()
}

// WriteBackup writes the original bytes, unchanged, to path.
func (d *Document) WriteBackup(path string) error {
	if err := os.WriteFile(path, d.original, d.mode); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

// Save writes content over the file the document was loaded from.
func (d *Document) Save(content string) error {
	if err := os.WriteFile(d.path, []byte(content), d.mode); err != nil {
		return fmt.Errorf("writing workspace: %w", err)
	}
	return nil
}
