// Package format identifies report file formats, by file name when saving
// and by content when inspecting.
package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
)

// Format is a document format the module reads or writes.
type Format int

const (
	Unknown Format = iota
	DOCX
	HTML
)

type formatInfo struct {
	name string
	ext  string   // canonical extension, appended by WithExtension
	alt  []string // other extensions accepted by Detect
}

var formats = map[Format]formatInfo{
	DOCX: {name: "DOCX", ext: ".docx"},
	HTML: {name: "HTML", ext: ".html", alt: []string{".htm", ".xhtml"}},
}

func (f Format) String() string {
	if info, ok := formats[f]; ok {
		return info.name
	}
	return "Unknown"
}

// Extension returns the canonical extension, with its dot. Unknown has none.
func (f Format) Extension() string {
	return formats[f].ext
}

// Detect maps a file name's extension, case-insensitively, to a Format.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return Unknown
	}
	for f, info := range formats {
		if ext == info.ext || slices.Contains(info.alt, ext) {
			return f
		}
	}
	return Unknown
}

// WithExtension returns path with f's extension appended when path has no
// extension of its own.
func WithExtension(path string, f Format) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return path + f.Extension()
}

// sniffLen is how much of a file DetectFromReader looks at.
const sniffLen = 512

var zipMagic = []byte("PK\x03\x04")

// DetectFromReader identifies a file by its content. A ZIP archive is DOCX
// only if it holds word/document.xml; anything else that sniffs as HTML,
// XHTML included, is HTML.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	if size <= 0 {
		return Unknown, nil
	}

	head := make([]byte, min(size, sniffLen))
	n, err := r.ReadAt(head, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return Unknown, fmt.Errorf("reading header: %w", err)
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return detectPackage(r, size)
	case looksLikeHTML(head):
		return HTML, nil
	}
	return Unknown, nil
}

func looksLikeHTML(head []byte) bool {
	if strings.HasPrefix(http.DetectContentType(head), "text/html") {
		return true
	}
	trimmed := bytes.ToLower(bytes.TrimSpace(head))
	return bytes.HasPrefix(trimmed, []byte("<?xml")) && bytes.Contains(trimmed, []byte("<html"))
}

func detectPackage(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, fmt.Errorf("reading ZIP directory: %w", err)
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return DOCX, nil
		}
	}
	return Unknown, nil
}
