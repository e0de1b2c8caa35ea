package catalog

import (
	"fmt"
	"os"
)

// Catalog serves the externally maintained category document. The
// service owns no part of the document's lifecycle beyond reading it.
type Catalog struct {
	path string
}

func New(path string) *Catalog {
	return &Catalog{path: path}
}

// Read returns the raw document bytes. The file is read fresh on every
// call so external edits are visible without a restart; there is
// deliberately no caching and no fallback content — a missing or
// unreadable document is the caller's failure to surface.
func (c *Catalog) Read() ([]byte, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read categories document: %w", err)
	}
	return data, nil
}
