// Package search recursively discovers ASD spectral files under a
// directory tree.
package search

import (
	"io/fs"
	"path/filepath"
)

// FindAsd recursively searches root for files matching *.asd. There is
// no object-store abstraction to route through here - unlike the
// codec's file driver, directory discovery stays on the local
// filesystem - so this walks with the standard library rather than any
// third-party VFS layer.
func FindAsd(root string) ([]string, error) {
	var items []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		match, err := filepath.Match("*.asd", filepath.Base(path))
		if err != nil {
			return err
		}
		if match {
			items = append(items, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
