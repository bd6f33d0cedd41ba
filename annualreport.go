// Package annualreport assembles word-processing reports block by block and
// saves them as DOCX, or as an HTML preview.
//
// Basic usage:
//
//	b := annualreport.New()
//	b.AddTitle("Quarterly Report")
//	b.AddHeading("Summary", 1)
//	b.AddParagraph("Everything went to plan.", 11)
//	if err := b.Save("report.docx"); err != nil {
//	    // handle error
//	}
//
// The fixed Bainum Project report is available through [BainumReport] and
// [BuildBainumReport].
package annualreport

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tsawler/annualreport/docx"
	"github.com/tsawler/annualreport/format"
	"github.com/tsawler/annualreport/htmldoc"
	"github.com/tsawler/annualreport/model"
)

// ErrUnsupportedFormat is returned by Save for output paths whose extension
// names a format this package cannot write.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// SaveDocument writes doc in the format chosen by the path's extension. A
// path without an extension is written as DOCX to OutputPath(path).
func SaveDocument(doc *model.Document, path string) error {
	path = OutputPath(path)
	switch format.Detect(path) {
	case format.DOCX:
		return docx.Save(doc, path)
	case format.HTML:
		return htmldoc.Save(doc, path)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// OutputPath returns the file SaveDocument writes for path: path itself, or
// path with the DOCX extension appended when it has none.
func OutputPath(path string) string {
	return format.WithExtension(path, format.DOCX)
}

// OutputFormat reports the format SaveDocument would use for path.
func OutputFormat(path string) format.Format {
	return format.Detect(OutputPath(path))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
