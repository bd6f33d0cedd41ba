package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Document represents a complete report as an ordered block sequence
type Document struct {
	Metadata Metadata
	Elements []Element
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Creator  string
	// Zero times are omitted on output so repeated saves stay byte-identical.
	CreationDate time.Time
	ModDate      time.Time
}

// Validation errors. Only ErrInvalidFontSize stops a document from being
// written; the title and level rules are checked by Validate for callers
// that want them.
var (
	ErrNoTitle         = errors.New("document has no title heading")
	ErrTitleNotFirst   = errors.New("title heading is not the first block")
	ErrMultipleTitles  = errors.New("document has more than one title heading")
	ErrHeadingLevel    = errors.New("heading level out of range")
	ErrInvalidFontSize = errors.New("text run font size is not a finite size of at least half a point")
)

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Elements: make([]Element, 0),
	}
}

// Append adds a block at the end of the document
func (d *Document) Append(elem Element) {
	d.Elements = append(d.Elements, elem)
}

// Len returns the number of blocks
func (d *Document) Len() int {
	return len(d.Elements)
}

// Headings returns all headings in document order
func (d *Document) Headings() []*Heading {
	var headings []*Heading
	for _, elem := range d.Elements {
		if h, ok := elem.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Paragraphs returns all paragraphs in document order
func (d *Document) Paragraphs() []*Paragraph {
	var paragraphs []*Paragraph
	for _, elem := range d.Elements {
		if p, ok := elem.(*Paragraph); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Title returns the title heading, or nil if the first block is not a title
func (d *Document) Title() *Heading {
	if len(d.Elements) == 0 {
		return nil
	}
	if h, ok := d.Elements[0].(*Heading); ok && h.IsTitle() {
		return h
	}
	return nil
}

// ExtractText returns all text content, one block per line
func (d *Document) ExtractText() string {
	var sb strings.Builder
	for i, elem := range d.Elements {
		if i > 0 {
			sb.WriteString("\n")
		}
		if te, ok := elem.(TextElement); ok {
			sb.WriteString(te.GetText())
		}
	}
	return sb.String()
}

// TableOfContents returns section headings as a document outline
func (d *Document) TableOfContents() []TOCEntry {
	var toc []TOCEntry
	for _, h := range d.Headings() {
		if h.IsTitle() {
			continue
		}
		toc = append(toc, TOCEntry{Level: h.Level, Text: h.Text})
	}
	return toc
}

// TOCEntry represents an entry in the table of contents
type TOCEntry struct {
	Level int    // Heading level (1-9)
	Text  string // Heading text
}

// ValidateRuns checks that every run has a size a writer can store.
func (d *Document) ValidateRuns() error {
	for i, elem := range d.Elements {
		p, ok := elem.(*Paragraph)
		if !ok {
			continue
		}
		for j, run := range p.Runs {
			if !run.HasValidSize() {
				return fmt.Errorf("block %d run %d: size %v: %w", i, j, run.FontSize, ErrInvalidFontSize)
			}
		}
	}
	return nil
}

// Validate checks the document's structure: exactly one title heading and
// it comes first, section headings within 1 to MaxHeadingLevel, and run
// sizes that ValidateRuns accepts. Writers do not require it.
func (d *Document) Validate() error {
	titles := 0
	for i, elem := range d.Elements {
		h, ok := elem.(*Heading)
		if !ok {
			continue
		}
		switch {
		case h.IsTitle() && titles > 0:
			return fmt.Errorf("block %d: %w", i, ErrMultipleTitles)
		case h.IsTitle() && i != 0:
			return fmt.Errorf("block %d: %w", i, ErrTitleNotFirst)
		case h.IsTitle():
			titles++
		case h.Level < 1 || h.Level > MaxHeadingLevel:
			return fmt.Errorf("block %d: level %d: %w", i, h.Level, ErrHeadingLevel)
		}
	}
	if titles == 0 {
		return ErrNoTitle
	}
	return d.ValidateRuns()
}
