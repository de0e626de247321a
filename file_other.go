//go:build !windows

package main

import "github.com/google/renameio/v2"

func newPendingFile(path string) (pendingFile, error) {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(outputPerm))
	if err != nil {
		return nil, err
	}
	return pf, nil
}

func writeFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, outputPerm)
}
