package domain

import (
	"strings"

	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

// IncludeFilter gates records by their source path.
//
// Entries are already prefixed with the mount point and are matched as
// substrings of target.src_path, so a short entry such as "/code-copy/src"
// also matches "/code-copy/src-gen/x.rs".
type IncludeFilter struct {
	paths m.IncludePaths
}

// NewIncludeFilter creates an IncludeFilter for the given include paths.
func NewIncludeFilter(paths m.IncludePaths) *IncludeFilter {
	return &IncludeFilter{paths: paths}
}

// Includes reports whether the record's source path contains any include path.
func (f *IncludeFilter) Includes(record m.Record) (bool, error) {
	srcPath, err := sourcePath(record)
	if err != nil {
		return false, err
	}

	for _, path := range f.paths {
		if strings.Contains(srcPath, path) {
			return true, nil
		}
	}

	return false, nil
}
