package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mesh-intelligence/partslist/pkg/types"
)

// Catalog maps list names to files in a lists directory. It is built once
// per run by NewCatalog and passed to whoever needs to resolve names.
type Catalog struct {
	dir     string
	entries map[string]string // file name -> path
}

// NewCatalog scans dir (non-recursively) and records every regular file.
// An empty dir yields an empty catalog that resolves only existing paths.
func NewCatalog(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir, entries: make(map[string]string)}
	if dir == "" {
		return c, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scan lists dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan lists dir: %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan lists dir: %w", err)
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		c.entries[e.Name()] = filepath.Join(dir, e.Name())
	}
	return c, nil
}

// Dir returns the scanned directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Names returns the file names in the catalog, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for n := range c.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a list reference into a path. A reference naming an
// existing file is returned as is. Otherwise it is looked up by file name,
// then by file name with ".csv" appended. Returns ErrListNotFound when
// nothing matches.
func (c *Catalog) Resolve(ref string) (string, error) {
	if _, err := os.Stat(ref); err == nil {
		return ref, nil
	}
	if p, ok := c.entries[ref]; ok {
		return p, nil
	}
	if p, ok := c.entries[ref+".csv"]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %s", types.ErrListNotFound, ref)
}

