package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrSegmentNotFound is returned when no directory entry matches a path
// segment under any casing, i.e. the path does not exist at all.
var ErrSegmentNotFound = errors.New("no directory entry matches path segment")

// Cache resolves the true on-disk casing of paths and memoizes every result
// for the process lifetime. Results are only valid while the filesystem
// layout under the resolved prefixes does not change; nothing enforces that.
//
// Not safe for concurrent use.
type Cache struct {
	resolved map[string]string // full input path -> fully corrected path
	prefixes map[string]string // climb input -> corrected divergent prefix
}

// NewCache creates an empty resolution cache.
func NewCache() *Cache {
	return &Cache{
		resolved: make(map[string]string),
		prefixes: make(map[string]string),
	}
}

// Resolve returns path with every segment's casing corrected to match the
// filesystem. On case-insensitive filesystems lookup already ignores case,
// so the input is returned unchanged. Ties between entries that fold to the
// same name go to whichever the directory enumeration yields first.
func (c *Cache) Resolve(path string) (string, error) {
	path = strings.TrimRight(path, `\/`)
	if runtime.GOOS == "windows" {
		return path, nil
	}
	if hit, ok := c.resolved[path]; ok {
		return hit, nil
	}

	result, err := c.divergentPrefix(path)
	if err != nil {
		return "", err
	}
	// Each pass fixes the casing of one more segment: re-apply the prefix
	// search to the corrected prefix plus the remaining raw suffix until the
	// whole length is covered. A pass that makes no progress means the
	// fold-corrected path cannot grow further, so stop at the fixed point.
	for len(result) != len(path) {
		next, err := c.divergentPrefix(result + path[len(result):])
		if err != nil {
			return "", err
		}
		if next == result {
			break
		}
		result = next
	}
	c.resolved[path] = result
	return result, nil
}

// divergentPrefix climbs toward the root until it finds the deepest existing
// ancestor of path, then corrects the casing of the next segment down and
// returns the path up to and including that segment.
func (c *Cache) divergentPrefix(path string) (string, error) {
	if hit, ok := c.prefixes[path]; ok {
		return hit, nil
	}

	// The climb visits path, then its parent, and so on; every visited
	// input memoizes the same corrected prefix.
	var visited []string
	cur := path
	for {
		visited = append(visited, cur)
		head, tail := filepath.Dir(cur), filepath.Base(cur)
		if head == cur {
			// Hit the filesystem root without finding an existing parent.
			return "", fmt.Errorf("%s: %w", path, ErrSegmentNotFound)
		}
		if hit, ok := c.prefixes[cur]; ok {
			return c.memoize(visited, hit), nil
		}
		if _, err := os.Stat(head); err == nil {
			entries, err := os.ReadDir(head)
			if err != nil {
				return "", fmt.Errorf("scanning %s: %w", head, err)
			}
			for _, e := range entries {
				if strings.EqualFold(e.Name(), tail) {
					return c.memoize(visited, filepath.Join(head, e.Name())), nil
				}
			}
			return "", fmt.Errorf("%s: %w", cur, ErrSegmentNotFound)
		}
		cur = head
	}
}

// memoize records the corrected prefix for every input the climb passed
// through and returns it.
func (c *Cache) memoize(visited []string, fixed string) string {
	for _, v := range visited {
		c.prefixes[v] = fixed
	}
	return fixed
}
