package model

import "math"

// ElementType identifies the kind of a block.
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeHeading
)

var elementTypeNames = map[ElementType]string{
	ElementTypeParagraph: "Paragraph",
	ElementTypeHeading:   "Heading",
}

func (et ElementType) String() string {
	if name, ok := elementTypeNames[et]; ok {
		return name
	}
	return "Unknown"
}

// Element is a block of the document.
type Element interface {
	Type() ElementType
}

// TextElement is a block with plain text content.
type TextElement interface {
	Element
	GetText() string
}

// Heading levels. Level 0 is reserved for the document title; section
// headings use 1 through MaxHeadingLevel.
const (
	TitleLevel      = 0
	MaxHeadingLevel = 9
)

// Heading is a title or section heading.
type Heading struct {
	Text      string
	Level     int
	Alignment TextAlignment
}

func (h *Heading) Type() ElementType { return ElementTypeHeading }
func (h *Heading) GetText() string   { return h.Text }

// IsTitle reports whether the heading is the document title.
func (h *Heading) IsTitle() bool { return h.Level == TitleLevel }

// Paragraph is a sequence of runs. A paragraph without runs is a spacer.
type Paragraph struct {
	Runs      []TextRun
	Alignment TextAlignment
}

// NewParagraph returns a paragraph holding a single run.
func NewParagraph(text string, fontSize float64) *Paragraph {
	return &Paragraph{Runs: []TextRun{{Text: text, FontSize: fontSize}}}
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }

func (p *Paragraph) GetText() string {
	switch len(p.Runs) {
	case 0:
		return ""
	case 1:
		return p.Runs[0].Text
	}
	buf := make([]byte, 0, 64)
	for _, run := range p.Runs {
		buf = append(buf, run.Text...)
	}
	return string(buf)
}

// AddRun appends a run and returns a pointer to it. The pointer is only
// valid until the next AddRun.
func (p *Paragraph) AddRun(text string, fontSize float64) *TextRun {
	p.Runs = append(p.Runs, TextRun{Text: text, FontSize: fontSize})
	return &p.Runs[len(p.Runs)-1]
}

// IsEmpty reports whether the paragraph is a spacer.
func (p *Paragraph) IsEmpty() bool { return len(p.Runs) == 0 }

// MaxFontSize is the largest run size, in points, WordprocessingML can
// store (3276 half-points).
const MaxFontSize = 1638

// TextRun is text sharing one font size, in points.
type TextRun struct {
	Text     string
	FontSize float64
}

// HalfPoints returns the size rounded to half-points, the unit
// WordprocessingML stores. Only meaningful when HasValidSize is true.
func (r TextRun) HalfPoints() int {
	return int(math.Round(r.FontSize * 2))
}

// HasValidSize reports whether the size is finite and rounds to between one
// half-point and MaxFontSize.
func (r TextRun) HasValidSize() bool {
	if math.IsNaN(r.FontSize) || math.IsInf(r.FontSize, 0) || r.FontSize > MaxFontSize {
		return false
	}
	return r.HalfPoints() >= 1
}

// TextAlignment is the horizontal alignment of a block.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a TextAlignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	}
	return "left"
}
