package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/annualreport/model"
)

func sampleDocument() *model.Document {
	doc := model.NewDocument()
	doc.Metadata.Title = "Sample Report"
	doc.Metadata.Author = "Reports Team"
	doc.Append(&model.Heading{Text: "Sample Report", Level: model.TitleLevel, Alignment: model.AlignCenter})
	doc.Append(&model.Paragraph{})
	doc.Append(model.NewParagraph("Introduction with a trailing space. ", 11))
	doc.Append(&model.Heading{Text: "First Section", Level: 1})
	doc.Append(model.NewParagraph("Body of the first section.", 11))
	doc.Append(&model.Heading{Text: "Detail", Level: 2})
	doc.Append(model.NewParagraph("Children's <data> & \"quotes\".", 11))
	return doc
}

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}

	t.Fatalf("part %s not found", name)
	return ""
}

func TestWrite_PackageParts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleDocument()))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		assert.True(t, f.Modified.Equal(zipEpoch), "%s modified = %v", f.Name, f.Modified)
	}

	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/settings.xml",
	}, names)
}

func TestWrite_DocumentXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleDocument()))

	body := readPart(t, buf.Bytes(), "word/document.xml")

	assert.True(t, strings.HasPrefix(body, xmlDeclaration))
	assert.Contains(t, body, `<w:document xmlns:w="`+nsW+`"`)
	assert.Contains(t, body, `<w:pPr><w:pStyle w:val="Title"></w:pStyle><w:jc w:val="center"></w:jc></w:pPr>`)
	assert.Contains(t, body, `<w:pStyle w:val="Heading1"></w:pStyle>`)
	assert.Contains(t, body, `<w:pStyle w:val="Heading2"></w:pStyle>`)
	assert.Contains(t, body, `<w:rPr><w:sz w:val="22"></w:sz></w:rPr>`)
	assert.Contains(t, body, `<w:t xml:space="preserve">Introduction with a trailing space. </w:t>`)
	assert.Contains(t, body, `Children&#39;s &lt;data&gt; &amp; &#34;quotes&#34;.`)
	assert.Contains(t, body, `<w:pgSz w:w="12240" w:h="15840"></w:pgSz>`)
}

func TestWrite_CoreProperties(t *testing.T) {
	doc := sampleDocument()
	doc.Metadata.Keywords = []string{"annual", "report"}
	doc.Metadata.CreationDate = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))

	core := readPart(t, buf.Bytes(), "docProps/core.xml")
	assert.Contains(t, core, `<dc:title>Sample Report</dc:title>`)
	assert.Contains(t, core, `<dc:creator>Reports Team</dc:creator>`)
	assert.Contains(t, core, `<cp:keywords>annual, report</cp:keywords>`)
	assert.Contains(t, core, `<dcterms:created xsi:type="dcterms:W3CDTF">2024-05-01T12:00:00Z</dcterms:created>`)
	assert.NotContains(t, core, "dcterms:modified")

	app := readPart(t, buf.Bytes(), "docProps/app.xml")
	assert.Contains(t, app, "<Application>annualreport</Application>")
	assert.Contains(t, app, "<Paragraphs>7</Paragraphs>")
}

func TestWrite_Styles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleDocument()))

	styles := readPart(t, buf.Bytes(), "word/styles.xml")
	assert.Contains(t, styles, `w:styleId="Title"`)
	for level := 1; level <= model.MaxHeadingLevel; level++ {
		assert.Contains(t, styles, `w:styleId="`+StyleID(level)+`"`)
	}
	assert.Contains(t, styles, `<w:sz w:val="22"></w:sz>`)
}

func TestWrite_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Write(&first, sampleDocument()))
	require.NoError(t, Write(&second, sampleDocument()))

	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()), "repeated writes should be byte-identical")
}

func TestWrite_NormalizesText(t *testing.T) {
	composed := model.NewDocument()
	composed.Append(&model.Heading{Text: "Caf\u00e9", Level: model.TitleLevel})

	decomposed := model.NewDocument()
	decomposed.Append(&model.Heading{Text: "Cafe\u0301", Level: model.TitleLevel})

	var a, b bytes.Buffer
	require.NoError(t, Write(&a, composed))
	require.NoError(t, Write(&b, decomposed))

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWrite_InvalidDocument(t *testing.T) {
	withRun := func(size float64) *model.Document {
		doc := sampleDocument()
		doc.Append(model.NewParagraph("bad size", size))
		return doc
	}

	tests := []struct {
		name string
		doc  *model.Document
		want error
	}{
		{"nil", nil, ErrInvalidDocument},
		{"unsized run", withRun(0), model.ErrInvalidFontSize},
		{"NaN", withRun(math.NaN()), model.ErrInvalidFontSize},
		{"infinite", withRun(math.Inf(1)), model.ErrInvalidFontSize},
		{"rounds to zero", withRun(0.1), model.ErrInvalidFontSize},
		{"huge", withRun(1e300), model.ErrInvalidFontSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tt.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDocument))
			assert.True(t, errors.Is(err, tt.want))
			assert.Zero(t, buf.Len())
		})
	}
}

func TestWrite_TitleStructureNotEnforced(t *testing.T) {
	twoTitles := sampleDocument()
	twoTitles.Append(&model.Heading{Text: "Second Title", Level: model.TitleLevel})

	untitled := model.NewDocument()
	untitled.Append(&model.Heading{Text: "Section", Level: 1})
	untitled.Append(model.NewParagraph("Body.", 11))

	tests := []struct {
		name   string
		doc    *model.Document
		blocks int
	}{
		{"empty", model.NewDocument(), 0},
		{"untitled", untitled, 2},
		{"two titles", twoTitles, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report.docx")
			require.NoError(t, Save(tt.doc, path))

			r, err := Open(path)
			require.NoError(t, err)
			defer r.Close()
			assert.Len(t, r.Blocks(), tt.blocks)
		})
	}
}

func TestWrite_RunSizesInRange(t *testing.T) {
	doc := sampleDocument()
	doc.Append(model.NewParagraph("smallest", 0.25))
	doc.Append(model.NewParagraph("largest", model.MaxFontSize))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))

	body := readPart(t, buf.Bytes(), "word/document.xml")
	assert.Contains(t, body, `<w:sz w:val="1"></w:sz>`)
	assert.Contains(t, body, `<w:sz w:val="3276"></w:sz>`)
	assert.NotContains(t, body, `<w:sz w:val="-`)
	assert.NotContains(t, body, `<w:sz w:val="0"></w:sz>`)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	original := sampleDocument()

	require.NoError(t, Save(original, path))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	doc := r.Document()

	assert.Equal(t, original.Elements, doc.Elements)
	assert.Equal(t, "Sample Report", doc.Metadata.Title)
	assert.Equal(t, "Reports Team", doc.Metadata.Author)
	assert.Equal(t, Application, doc.Metadata.Creator)

	blocks := r.Blocks()
	require.Len(t, blocks, 7)
	assert.Equal(t, KindTitle, blocks[0].Kind)
	assert.Equal(t, "center", blocks[0].Alignment)
	for _, block := range blocks {
		if block.Kind != KindParagraph {
			continue
		}
		for _, run := range block.Runs {
			assert.True(t, run.ExplicitSize)
			assert.Equal(t, 11.0, run.FontSize)
		}
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, Save(sampleDocument(), path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Save(sampleDocument(), path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotEqual(t, "stale", string(first))
	assert.Equal(t, first, second)
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.docx")

	err := Save(sampleDocument(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist))
}

func TestStyleID(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Title"},
		{1, "Heading1"},
		{3, "Heading3"},
		{9, "Heading9"},
		{12, "Heading9"},
		{-2, "Heading1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StyleID(tt.level), "level %d", tt.level)
	}
}
