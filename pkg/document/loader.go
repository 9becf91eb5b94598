// Package document loads course material into the page-addressable form the
// segmenter consumes. One loader per supported file type; everything else is
// rejected before any parsing happens.
package document

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"study-planner-be/pkg/planner"
)

// Content is a loaded document: per-page text plus an optional outline.
// Implements planner.PageSource.
type Content struct {
	Filename string
	pages    []string
	outline  []planner.OutlineEntry
}

func (c *Content) TotalPages() int { return len(c.pages) }

// PageText returns the text of the given 1-indexed page, or "" when the page
// is out of range or could not be read.
func (c *Content) PageText(page int) string {
	if page < 1 || page > len(c.pages) {
		return ""
	}
	return c.pages[page-1]
}

func (c *Content) Outline() []planner.OutlineEntry { return c.outline }

// Loader parses one file format into Content.
type Loader interface {
	Load(r io.ReadSeeker, filename string) (*Content, error)
}

// ForFilename picks a loader by file extension. Unsupported extensions fail
// with planner.ErrUnsupportedFile.
func ForFilename(filename string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return &PDFLoader{}, nil
	case ".txt", ".md":
		return &TextLoader{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", planner.ErrUnsupportedFile, filename)
	}
}
