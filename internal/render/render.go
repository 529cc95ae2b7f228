// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render is the boundary to the MuPDF rendering engine, reached
// through the go-fitz binding. It owns the document handle lifecycle and
// translates library failures into this tool's error types. No other
// package imports go-fitz.
package render

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// Document is an open PDF document. It must be released with Close when the
// caller is done, on success and failure alike.
type Document struct {
	doc  *fitz.Document
	path string
}

// OpenError reports that a file could not be opened as a PDF document:
// missing, unreadable, or rejected by the rendering engine.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open document %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// RenderError reports that the rendering engine failed to produce SVG for a
// page of an otherwise valid document. Page is 1-based, as shown to users.
type RenderError struct {
	Path string
	Page int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering page %d of %s: %v", e.Page, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Open opens the PDF at path and returns a handle to it. Failures of any
// kind (no such file, not a PDF, corrupt header) come back as *OpenError.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &Document{doc: doc, path: path}, nil
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string { return d.path }

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int { return d.doc.NumPage() }

// SVG renders the page at the given 0-based index to SVG markup. The
// caller is responsible for the 1-based to 0-based translation; the index
// here is the engine's convention.
func (d *Document) SVG(index int) ([]byte, error) {
	svg, err := d.doc.SVG(index)
	if err != nil {
		return nil, &RenderError{Path: d.path, Page: index + 1, Err: err}
	}
	return []byte(svg), nil
}

// Close releases the document handle. Safe to defer immediately after Open.
func (d *Document) Close() error {
	return d.doc.Close()
}
