package ddg

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

// Store is the working directory shared by every stage of the run. FoldX
// executes with this directory as its cwd, so the directory's contents are
// the only state that crosses a stage boundary. All names passed to and
// returned from a Store are bare file names, never paths.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir is the absolute-or-relative directory this store wraps.
func (s *Store) Dir() string {
	return s.dir
}

// Glob returns the names of files in the store matching pattern, in
// lexical order.
func (s *Store) Glob(pattern string) (names []string, err error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad file pattern %s: %v", pattern, err)
	}

	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	return names, nil
}

// Exists reports whether name is present in the store.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

// Read returns the contents of name.
func (s *Store) Read(name string) ([]byte, error) {
	return ioutil.ReadFile(filepath.Join(s.dir, name))
}

// Write creates or replaces name with data.
func (s *Store) Write(name string, data []byte) error {
	return ioutil.WriteFile(filepath.Join(s.dir, name), data, 0644)
}

// RenameIfAbsent renames oldName to newName unless newName already exists,
// in which case nothing happens. It reports whether a rename took place.
// An existing file is never overwritten: tagging a mutant model is a
// one-time operation and reruns must leave prior tags alone.
func (s *Store) RenameIfAbsent(oldName, newName string) (bool, error) {
	if s.Exists(newName) {
		return false, nil
	}

	if err := os.Rename(filepath.Join(s.dir, oldName), filepath.Join(s.dir, newName)); err != nil {
		return false, fmt.Errorf("failed to rename %s to %s: %v", oldName, newName, err)
	}
	return true, nil
}
