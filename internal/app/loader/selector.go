package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"logweave/internal/app/errors"
)

// Selector decides which log files under a directory tree are picked up
type Selector interface {
	Match(path string) bool
	SkipDir(dirPath string) bool
}

// selector implements the Selector interface
type selector struct {
	includes []glob.Glob
	ignores  []glob.Glob
}

// NewSelector compiles include and ignore glob patterns
func NewSelector(includes, ignores []string) (Selector, error) {
	s := &selector{}

	var err error

	if s.includes, err = compileGlobs(includes); err != nil {
		return nil, err
	}

	if s.ignores, err = compileGlobs(ignores); err != nil {
		return nil, err
	}

	return s, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	expanded := expandPatterns(patterns)
	globs := make([]glob.Glob, 0, len(expanded))

	for _, p := range expanded {
		g, err := glob.Compile(normalizePath(p), '/')
		if err != nil {
			return nil, fmt.Errorf("%w: '%s': %v", errors.ErrInvalidGlob, p, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

// expandPatterns makes patterns starting with **/ match at the root as well
func expandPatterns(patterns []string) []string {
	expanded := make([]string, 0, len(patterns)*2)

	for _, p := range patterns {
		expanded = append(expanded, p)

		if rest, ok := strings.CutPrefix(p, "**/"); ok {
			expanded = append(expanded, rest)
		}
	}

	return expanded
}

// Match reports whether path is included and not ignored
func (s *selector) Match(path string) bool {
	path = normalizePath(path)

	for _, ignore := range s.ignores {
		if ignore.Match(path) {
			return false
		}
	}

	for _, include := range s.includes {
		if include.Match(path) {
			return true
		}
	}

	return false
}

// SkipDir reports whether everything below dirPath is ignored
func (s *selector) SkipDir(dirPath string) bool {
	probe := normalizePath(dirPath + "/_probe")

	for _, ignore := range s.ignores {
		if ignore.Match(probe) {
			return true
		}
	}

	return false
}

func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	return path
}

// Collect resolves patterns to a sorted list of files below root.
// Patterns naming an existing file are taken as is; the rest are globs
// matched against paths relative to root.
func Collect(root string, patterns, ignores []string) ([]string, error) {
	seen := make(map[string]struct{})

	var globs []string

	for _, p := range patterns {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			seen[filepath.Clean(p)] = struct{}{}
			continue
		}

		globs = append(globs, p)
	}

	if len(globs) > 0 {
		sel, err := NewSelector(globs, ignores)
		if err != nil {
			return nil, err
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			if d.IsDir() {
				if rel != "." && sel.SkipDir(rel) {
					return filepath.SkipDir
				}

				return nil
			}

			if d.Type().IsRegular() && sel.Match(rel) {
				seen[filepath.Join(root, rel)] = struct{}{}
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrFailedToReadLog, err)
		}
	}

	if len(seen) == 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrNoFilesMatched, strings.Join(patterns, ", "))
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}

	sort.Strings(files)

	return files, nil
}
