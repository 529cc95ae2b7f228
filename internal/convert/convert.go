// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates a single PDF page to SVG conversion: open the
// document, bounds-check the requested page, render, write the result once.
package convert

import (
	"fmt"
	"io"
)

// Renderer is the view of an open document the conversion needs. It is
// satisfied by *render.Document; tests substitute fakes.
type Renderer interface {
	// PageCount returns the number of pages in the document.
	PageCount() int
	// SVG renders the page at the given 0-based index.
	SVG(index int) ([]byte, error)
	// Close releases the document handle.
	Close() error
}

// OpenFunc opens the document at path. Production wiring passes render.Open;
// tests inject fakes or canned errors.
type OpenFunc func(path string) (Renderer, error)

// Request holds the validated conversion parameters. Page is the 1-based
// page number shown to users; the 0-based translation to the renderer's
// convention happens exactly once, inside Run.
type Request struct {
	Path string
	Page int
}

// PageRangeError reports a requested page outside [1, page count].
type PageRangeError struct {
	Path  string
	Page  int
	Count int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("invalid page number %d: %s has %d pages", e.Page, e.Path, e.Count)
}

// Run performs one conversion. The rendered SVG is written to w only after a
// fully successful render, so a failure never leaves partial output behind.
// The document handle is released on every exit path.
func Run(req Request, open OpenFunc, w io.Writer) error {
	doc, err := open(req.Path)
	if err != nil {
		return err
	}
	defer doc.Close()

	count := doc.PageCount()
	if req.Page < 1 || req.Page > count {
		return &PageRangeError{Path: req.Path, Page: req.Page, Count: count}
	}

	svg, err := doc.SVG(req.Page - 1)
	if err != nil {
		return err
	}

	if _, err := w.Write(svg); err != nil {
		return fmt.Errorf("writing SVG output: %w", err)
	}
	return nil
}
