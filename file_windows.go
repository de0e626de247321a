package main

import (
	"os"
	"path/filepath"
)

// tempFile is written next to its target and renamed over it on commit.
type tempFile struct {
	*os.File
	path string
	done bool
}

func newPendingFile(path string) (pendingFile, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return nil, err
	}
	return &tempFile{File: f, path: path}, nil
}

// Cleanup removes the temporary file unless it has been committed.
func (t *tempFile) Cleanup() error {
	if t.done {
		return nil
	}
	t.done = true
	t.File.Close()
	return os.Remove(t.File.Name())
}

func (t *tempFile) CloseAtomicallyReplace() error {
	if err := t.Sync(); err != nil {
		return err
	}
	if err := t.Close(); err != nil {
		return err
	}
	if err := os.Rename(t.Name(), t.path); err != nil {
		return err
	}
	t.done = true
	return nil
}

func writeFile(path string, data []byte) error {
	pf, err := newPendingFile(path)
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if _, err := pf.Write(data); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}
