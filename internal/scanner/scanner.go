// Package scanner collects lintable source files under a directory.
package scanner

import (
	"os"
	"path/filepath"
)

type FileInfo struct {
	Path string
	Size int64
}

// Filter rejects paths the caller wants excluded from the scan.
type Filter func(path string) bool

type Scanner struct {
	rootDir    string
	extensions []string
	filters    []Filter
}

func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// WithFilter adds an exclusion filter. A path is skipped when any
// filter returns true for it.
func (s *Scanner) WithFilter(f Filter) *Scanner {
	s.filters = append(s.filters, f)
	return s
}

// Scan walks the root directory and returns every regular file that
// matches the target extensions and passes all filters.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !s.isTargetFile(path) || s.isExcluded(path) {
			return nil
		}
		files = append(files, FileInfo{
			Path: path,
			Size: info.Size(),
		})
		return nil
	})
	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}

func (s *Scanner) isExcluded(path string) bool {
	for _, f := range s.filters {
		if f(path) {
			return true
		}
	}
	return false
}
