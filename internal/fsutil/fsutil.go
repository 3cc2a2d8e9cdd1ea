// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CollectFiles gathers all files ending with the given extension from the
// provided paths. A path may be a single file, which is accepted as-is when
// its name matches, or a directory, which is searched recursively. The
// returned order follows the order of the given paths.
func CollectFiles(extension string, paths ...string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access path %s: %w", path, err)
		}

		if !info.IsDir() {
			if !strings.HasSuffix(info.Name(), extension) {
				return nil, fmt.Errorf("file %s does not have extension %s", path, extension)
			}
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
