package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Element Tests
// ============================================================================

func TestElementTypeString(t *testing.T) {
	tests := []struct {
		et   ElementType
		want string
	}{
		{ElementTypeParagraph, "Paragraph"},
		{ElementTypeHeading, "Heading"},
		{ElementTypeUnknown, "Unknown"},
		{ElementType(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.et.String())
		})
	}
}

func TestTextAlignmentString(t *testing.T) {
	assert.Equal(t, "left", AlignLeft.String())
	assert.Equal(t, "center", AlignCenter.String())
	assert.Equal(t, "right", AlignRight.String())
	assert.Equal(t, "justify", AlignJustify.String())
}

func TestParagraphRuns(t *testing.T) {
	p := NewParagraph("Hello ", 11)
	run := p.AddRun("World", 12)

	assert.Equal(t, ElementTypeParagraph, p.Type())
	assert.Equal(t, "Hello World", p.GetText())
	assert.Equal(t, 12.0, run.FontSize)
	assert.False(t, p.IsEmpty())
	assert.True(t, (&Paragraph{}).IsEmpty())
}

func TestTextRunHalfPoints(t *testing.T) {
	tests := []struct {
		size float64
		want int
	}{
		{11, 22},
		{10.5, 21},
		{28, 56},
		{0, 0},
		{0.25, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TextRun{FontSize: tt.size}.HalfPoints(), "size %v", tt.size)
	}
}

func TestTextRunHasValidSize(t *testing.T) {
	tests := []struct {
		name string
		size float64
		want bool
	}{
		{"body", 11, true},
		{"half point", 10.5, true},
		{"smallest", 0.25, true},
		{"largest", MaxFontSize, true},
		{"zero", 0, false},
		{"negative", -11, false},
		{"rounds to zero", 0.1, false},
		{"NaN", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
		{"too large", MaxFontSize + 0.5, false},
		{"huge", 1e300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextRun{FontSize: tt.size}.HasValidSize())
		})
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func sampleDocument() *Document {
	doc := NewDocument()
	doc.Append(&Heading{Text: "Report", Level: TitleLevel, Alignment: AlignCenter})
	doc.Append(&Paragraph{})
	doc.Append(NewParagraph("Intro", 11))
	doc.Append(&Heading{Text: "Section A", Level: 1})
	doc.Append(NewParagraph("Body A", 11))
	doc.Append(&Heading{Text: "Section B", Level: 1})
	doc.Append(NewParagraph("Body B", 11))
	return doc
}

func TestDocumentAccessors(t *testing.T) {
	doc := sampleDocument()

	assert.Equal(t, 7, doc.Len())
	require.NotNil(t, doc.Title())
	assert.Equal(t, "Report", doc.Title().Text)
	assert.Len(t, doc.Headings(), 3)
	assert.Len(t, doc.Paragraphs(), 4)

	toc := doc.TableOfContents()
	require.Len(t, toc, 2)
	assert.Equal(t, TOCEntry{Level: 1, Text: "Section A"}, toc[0])
	assert.Equal(t, TOCEntry{Level: 1, Text: "Section B"}, toc[1])
}

func TestDocumentExtractText(t *testing.T) {
	doc := sampleDocument()
	assert.Equal(t, "Report\n\nIntro\nSection A\nBody A\nSection B\nBody B", doc.ExtractText())
}

func TestDocumentTitle_NotFirst(t *testing.T) {
	doc := NewDocument()
	assert.Nil(t, doc.Title())

	doc.Append(NewParagraph("x", 11))
	doc.Append(&Heading{Text: "T", Level: TitleLevel})
	assert.Nil(t, doc.Title())
}

func TestDocumentValidate(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Document
		want  error
	}{
		{
			name:  "valid",
			build: sampleDocument,
			want:  nil,
		},
		{
			name:  "empty",
			build: NewDocument,
			want:  ErrNoTitle,
		},
		{
			name: "title not first",
			build: func() *Document {
				doc := NewDocument()
				doc.Append(NewParagraph("x", 11))
				doc.Append(&Heading{Text: "T", Level: TitleLevel})
				return doc
			},
			want: ErrTitleNotFirst,
		},
		{
			name: "two titles",
			build: func() *Document {
				doc := sampleDocument()
				doc.Append(&Heading{Text: "Again", Level: TitleLevel})
				return doc
			},
			want: ErrMultipleTitles,
		},
		{
			name: "negative level",
			build: func() *Document {
				doc := sampleDocument()
				doc.Append(&Heading{Text: "Bad", Level: -1})
				return doc
			},
			want: ErrHeadingLevel,
		},
		{
			name: "level too deep",
			build: func() *Document {
				doc := sampleDocument()
				doc.Append(&Heading{Text: "Bad", Level: MaxHeadingLevel + 1})
				return doc
			},
			want: ErrHeadingLevel,
		},
		{
			name: "run without size",
			build: func() *Document {
				doc := sampleDocument()
				doc.Append(NewParagraph("unsized", 0))
				return doc
			},
			want: ErrInvalidFontSize,
		},
		{
			name: "NaN size",
			build: func() *Document {
				doc := sampleDocument()
				doc.Append(NewParagraph("nan", math.NaN()))
				return doc
			},
			want: ErrInvalidFontSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "Validate() = %v, want %v", err, tt.want)
		})
	}
}

func TestDocumentValidateRuns(t *testing.T) {
	untitled := NewDocument()
	untitled.Append(&Heading{Text: "Section", Level: 1})
	untitled.Append(NewParagraph("Body", 11))
	untitled.Append(&Heading{Text: "One", Level: TitleLevel})
	untitled.Append(&Heading{Text: "Two", Level: TitleLevel})

	assert.NoError(t, untitled.ValidateRuns(), "title rules are not checked")
	assert.Error(t, untitled.Validate())

	for _, size := range []float64{math.NaN(), math.Inf(1), 0.1, 1e300} {
		doc := sampleDocument()
		doc.Append(NewParagraph("bad", size))
		err := doc.ValidateRuns()
		assert.True(t, errors.Is(err, ErrInvalidFontSize), "size %v: %v", size, err)
	}
}
