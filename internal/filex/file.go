// Package filex holds small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path, including any
// missing parents, with owner/group-only permissions. Paths without a
// directory part, and in-memory or URI DSNs, are left alone.
func EnsureParentDir(path string) error {
	if path == "" || path == ":memory:" || len(path) >= 5 && path[:5] == "file:" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
