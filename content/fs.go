package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/tiles"
)

// FS reads YAML property lists from a directory on disk, falling back to an
// embedded file system when the directory is unset or missing. Files are read
// in lexical path order.
type FS struct {
	Dir      string
	Fallback fs.FS
	Registry *tiles.Registry
}

func NewFS(dir string, fallback fs.FS, reg *tiles.Registry) *FS {
	return &FS{Dir: dir, Fallback: fallback, Registry: reg}
}

func (s *FS) FetchAllTagged(ctx context.Context, tag string) ([]*proplist.List, error) {
	fsys, origin, err := s.open()
	if err != nil {
		return nil, err
	}

	var out []*proplist.List
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !IsListFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("content: read %s: %w", filepath.Join(origin, path), err)
		}
		l, err := proplist.Decode(data, s.Registry)
		if err != nil {
			return fmt.Errorf("content: decode %s: %w", filepath.Join(origin, path), err)
		}
		if l.Name == "" {
			l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		if Tagged(l, tag) {
			out = append(out, l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FS) open() (fs.FS, string, error) {
	if s.Dir != "" {
		if info, err := os.Stat(s.Dir); err == nil && info.IsDir() {
			return os.DirFS(s.Dir), s.Dir, nil
		}
	}
	if s.Fallback != nil {
		return s.Fallback, "embedded", nil
	}
	return nil, "", fmt.Errorf("content: list directory %q not found and no fallback", s.Dir)
}

// IsListFile reports whether path looks like a YAML property list.
func IsListFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
