// Package meta builds the in-memory forest of filesystem entries that the
// rest of the pipeline sorts and renders. The fetch pass is the only place
// that touches the filesystem; everything downstream operates on the forest.
package meta

import (
	"os"
	"path/filepath"
	"time"
)

// Kind classifies a filesystem entry.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// Entry is one filesystem object plus, for recursed directories, its
// children. Content is nil for non-directories and for directories that
// were not recursed into; when non-nil it is itself a valid forest.
type Entry struct {
	// Name is the base name used for display and sorting.
	Name string
	// Path is the path as given or joined, used in diagnostics.
	Path string
	// AbsPath is the canonical absolute path.
	AbsPath string

	Kind    Kind
	Mode    os.FileMode
	Size    int64
	ModTime time.Time
	Owner   string
	Group   string

	// LinkTarget is the symlink destination, empty for non-symlinks.
	LinkTarget string

	Content []*Entry
}

// Forest is an ordered sequence of root entries.
type Forest []*Entry

// FromPath builds an Entry for a single path without recursing. Symlinks
// are not followed; their target is recorded instead.
func FromPath(path string) (*Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return fromInfo(path, filepath.Base(path), info), nil
}

func fromInfo(path, name string, info os.FileInfo) *Entry {
	e := &Entry{
		Name:    name,
		Path:    path,
		Mode:    info.Mode(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	if abs, err := filepath.Abs(path); err == nil {
		e.AbsPath = abs
	} else {
		e.AbsPath = path
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		e.Kind = KindSymlink
		if target, err := os.Readlink(path); err == nil {
			e.LinkTarget = target
		}
	case info.IsDir():
		e.Kind = KindDir
	default:
		e.Kind = KindFile
	}

	e.Owner, e.Group = ownership(info)
	return e
}

// IsDir reports whether the entry is a directory, following symlinks so
// that a symlink argument pointing at a directory can still be listed.
func (e *Entry) IsDir() bool {
	if e.Kind == KindDir {
		return true
	}
	if e.Kind == KindSymlink {
		if info, err := os.Stat(e.Path); err == nil {
			return info.IsDir()
		}
	}
	return false
}

// CalculateTotalSize folds the recursively summed sizes of all descendants
// into each directory's Size, children before parents. It operates purely
// on the already-built forest and never touches the filesystem.
func (e *Entry) CalculateTotalSize() {
	for _, child := range e.Content {
		child.CalculateTotalSize()
	}
	if e.Kind == KindDir {
		for _, child := range e.Content {
			e.Size += child.Size
		}
	}
}
