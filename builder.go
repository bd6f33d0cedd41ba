package annualreport

import (
	"fmt"

	"github.com/tsawler/annualreport/model"
)

// Builder appends blocks to a document in order. Blocks are never
// reordered; each Add method returns the block it appended so callers can
// adjust its formatting.
type Builder struct {
	doc      *model.Document
	warnings []Warning
}

// New returns a Builder holding an empty document.
func New() *Builder {
	b := &Builder{}
	b.CreateDocument()
	return b
}

// CreateDocument discards any blocks and warnings and starts a new, empty
// document.
func (b *Builder) CreateDocument() *model.Document {
	b.doc = model.NewDocument()
	b.warnings = nil
	return b.doc
}

// Document returns the document being built.
func (b *Builder) Document() *model.Document {
	return b.doc
}

// Warnings returns the adjustments made while building, and notes a
// document that has no title. None of them stop the document from being
// saved.
func (b *Builder) Warnings() []Warning {
	if b.doc.Len() > 0 && !b.hasTitle() {
		return append(b.warnings[:len(b.warnings):len(b.warnings)], Warning{Block: 0, Message: "document has no title"})
	}
	return b.warnings
}

// AddTitle appends a centered title block. The title also becomes the
// document's metadata title unless one is already set. A title that is not
// the first block, or a second title, is appended anyway and recorded as a
// warning.
func (b *Builder) AddTitle(text string) *model.Heading {
	switch {
	case b.hasTitle():
		b.warn(fmt.Sprintf("title %q added to a document that already has one", text))
	case b.doc.Len() > 0:
		b.warn(fmt.Sprintf("title %q is not the first block", text))
	}

	h := &model.Heading{
		Text:      text,
		Level:     model.TitleLevel,
		Alignment: model.AlignCenter,
	}
	if b.doc.Metadata.Title == "" {
		b.doc.Metadata.Title = text
	}
	b.doc.Append(h)
	return h
}

// AddHeading appends a section heading. Levels outside 1-9 are clamped and
// a warning is recorded; use AddTitle for the title.
func (b *Builder) AddHeading(text string, level int) *model.Heading {
	clamped := level
	if clamped < 1 {
		clamped = 1
	}
	if clamped > model.MaxHeadingLevel {
		clamped = model.MaxHeadingLevel
	}
	if clamped != level {
		b.warn(fmt.Sprintf("heading %q level %d clamped to %d", text, level, clamped))
	}

	h := &model.Heading{Text: text, Level: clamped}
	b.doc.Append(h)
	return h
}

// AddParagraph appends a paragraph holding one run of text at fontSize
// points.
func (b *Builder) AddParagraph(text string, fontSize float64) *model.Paragraph {
	p := model.NewParagraph(text, fontSize)
	b.doc.Append(p)
	return p
}

// AddSpacer appends an empty paragraph.
func (b *Builder) AddSpacer() *model.Paragraph {
	p := &model.Paragraph{}
	b.doc.Append(p)
	return p
}

// Save writes the document to path, replacing any existing file. The format
// follows the path's extension; see SaveDocument.
func (b *Builder) Save(path string) error {
	return SaveDocument(b.doc, path)
}

func (b *Builder) hasTitle() bool {
	for _, h := range b.doc.Headings() {
		if h.IsTitle() {
			return true
		}
	}
	return false
}

func (b *Builder) warn(msg string) {
	b.warnings = append(b.warnings, Warning{Block: b.doc.Len(), Message: msg})
}
