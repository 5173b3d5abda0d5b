package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/hazyhaar/docroute/docpipe"
)

// FindFiles walks root recursively and returns the paths of every supported
// document (.pdf, .docx, .txt), sorted lexically so runs are deterministic.
// Hidden directories are descended into; only file extensions decide
// eligibility.
func FindFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if docpipe.Supported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: walk %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}
