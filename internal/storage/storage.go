package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrUnsafePath is returned for paths that would escape the store's root.
var ErrUnsafePath = errors.New("unsafe storage path")

// AferoStore implements Store on top of an afero filesystem. Production uses a
// base path filesystem rooted at the data directory; tests use a memory map.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewDiskStore creates a store rooted at dir on the OS filesystem, creating
// the directory if needed.
func NewDiskStore(dir string) (*AferoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

func cleanPath(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) || strings.Contains(path, "..") {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, path)
	}
	return filepath.Clean(path), nil
}

// Save writes the content of the reader to the given path, replacing any
// existing file. The content is written to a temporary file first and renamed
// into place so readers never observe a partial file.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	path, err := cleanPath(path)
	if err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}

	tmp := path + ".tmp"
	f, err := s.fs.Create(tmp)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, reader)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(tmp)
		return 0, err
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return 0, err
	}
	return n, nil
}

// Open opens a file for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

// Delete removes a file.
func (s *AferoStore) Delete(ctx context.Context, path string) error {
	path, err := cleanPath(path)
	if err != nil {
		return err
	}
	return s.fs.Remove(path)
}

// List returns the paths of the regular files directly inside dir, sorted.
// A missing directory yields an empty list.
func (s *AferoStore) List(ctx context.Context, dir string) ([]string, error) {
	dir, err := cleanPath(dir)
	if err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var paths []string
	for _, info := range infos {
		if info.IsDir() || strings.HasSuffix(info.Name(), ".tmp") {
			continue
		}
		paths = append(paths, filepath.Join(dir, info.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
