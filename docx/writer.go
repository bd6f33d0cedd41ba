package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/annualreport/internal/atomicfile"
	"github.com/tsawler/annualreport/model"
)

// ErrInvalidDocument is returned for a nil document or one holding a run
// whose size cannot be stored. Title placement is not checked.
var ErrInvalidDocument = errors.New("invalid document")

// Application is recorded in docProps/app.xml.
const Application = "annualreport"

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Content and relationship types for the package parts.
const (
	ctRels      = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML       = "application/xml"
	ctDocument  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles    = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctSettings  = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctCoreProps = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps  = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relAppProps       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
)

// zipEpoch is stamped on every archive entry so output is reproducible.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// part is a single file inside the package.
type part struct {
	name string
	body any
}

// Save serializes doc as a .docx package at path, replacing any existing
// file. Nothing is left at path if the write fails.
func Save(doc *model.Document, path string) error {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return err
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("saving DOCX: %w", err)
	}
	return nil
}

// Write serializes doc as a .docx package to w. The output depends only on
// the document contents.
func Write(w io.Writer, doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	if err := doc.ValidateRuns(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	parts := []part{
		{"[Content_Types].xml", buildContentTypes()},
		{"_rels/.rels", buildPackageRels()},
		{"docProps/core.xml", buildCoreProperties(doc.Metadata)},
		{"docProps/app.xml", buildAppProperties(doc)},
		{"word/_rels/document.xml.rels", buildDocumentRels()},
		{"word/document.xml", buildDocument(doc)},
		{"word/styles.xml", buildStyles()},
		{"word/settings.xml", buildSettings()},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		if err := writePart(zw, p); err != nil {
			zw.Close()
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing ZIP archive: %w", err)
	}
	return nil
}

// writePart adds one XML part to the archive.
func writePart(zw *zip.Writer, p part) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     p.name,
		Method:   zip.Deflate,
		Modified: zipEpoch,
	})
	if err != nil {
		return err
	}
	if _, err := io.WriteString(fw, xmlDeclaration); err != nil {
		return err
	}
	return xml.NewEncoder(fw).Encode(p.body)
}

func buildContentTypes() ctTypes {
	return ctTypes{
		Xmlns: nsTypes,
		Defaults: []ctDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []ctOverride{
			{PartName: "/word/document.xml", ContentType: ctDocument},
			{PartName: "/word/styles.xml", ContentType: ctStyles},
			{PartName: "/word/settings.xml", ContentType: ctSettings},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctAppProps},
		},
	}
}

func buildPackageRels() pkgRelationships {
	return pkgRelationships{
		Xmlns: nsPkgRels,
		Relationships: []pkgRelationship{
			{ID: "rId1", Type: relOfficeDocument, Target: "word/document.xml"},
			{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relAppProps, Target: "docProps/app.xml"},
		},
	}
}

func buildDocumentRels() pkgRelationships {
	return pkgRelationships{
		Xmlns: nsPkgRels,
		Relationships: []pkgRelationship{
			{ID: "rId1", Type: relStyles, Target: "styles.xml"},
			{ID: "rId2", Type: relSettings, Target: "settings.xml"},
		},
	}
}

func buildSettings() wSettings {
	return wSettings{
		XmlnsW:                  nsW,
		DefaultTabStop:          wVal{Val: "720"},
		CharacterSpacingControl: wVal{Val: "doNotCompress"},
	}
}

func buildCoreProperties(meta model.Metadata) cpCoreProperties {
	props := cpCoreProperties{
		XmlnsCP:      nsCP,
		XmlnsDC:      nsDC,
		XmlnsDCTerms: nsDCTerms,
		XmlnsXSI:     nsXSI,
		Title:        normalize(meta.Title),
		Subject:      normalize(meta.Subject),
		Creator:      normalize(meta.Author),
		Keywords:     normalize(strings.Join(meta.Keywords, ", ")),
	}
	if !meta.CreationDate.IsZero() {
		props.Created = &w3cdtf{Type: "dcterms:W3CDTF", Value: meta.CreationDate.UTC().Format(time.RFC3339)}
	}
	if !meta.ModDate.IsZero() {
		props.Modified = &w3cdtf{Type: "dcterms:W3CDTF", Value: meta.ModDate.UTC().Format(time.RFC3339)}
	}
	return props
}

func buildAppProperties(doc *model.Document) epAppProperties {
	application := doc.Metadata.Creator
	if application == "" {
		application = Application
	}

	return epAppProperties{
		Xmlns:       nsExtProps,
		Application: application,
		Paragraphs:  doc.Len(),
		Words:       len(strings.Fields(doc.ExtractText())),
	}
}

// buildDocument converts the block sequence into word/document.xml.
func buildDocument(doc *model.Document) wDocument {
	out := wDocument{
		XmlnsW: nsW,
		XmlnsR: nsR,
		Body: wBody{
			Paragraphs: make([]wParagraph, 0, doc.Len()),
			SectPr: wSectPr{
				// US Letter, 1 inch margins.
				PageSize:    wPageSize{W: 12240, H: 15840},
				PageMargins: wPageMargins{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
			},
		},
	}

	for _, elem := range doc.Elements {
		switch e := elem.(type) {
		case *model.Heading:
			out.Body.Paragraphs = append(out.Body.Paragraphs, headingParagraph(e))
		case *model.Paragraph:
			out.Body.Paragraphs = append(out.Body.Paragraphs, bodyParagraph(e))
		}
	}

	return out
}

// headingParagraph renders a heading. Heading runs inherit their size from
// the heading style.
func headingParagraph(h *model.Heading) wParagraph {
	p := wParagraph{
		Props: &wParagraphProps{
			Style:         val(StyleID(h.Level)),
			Justification: justification(h.Alignment),
		},
	}
	if h.Text != "" {
		p.Runs = []wRun{newRun(h.Text, nil)}
	}
	return p
}

// bodyParagraph renders a paragraph; every run carries its size explicitly.
func bodyParagraph(para *model.Paragraph) wParagraph {
	p := wParagraph{}
	if jc := justification(para.Alignment); jc != nil {
		p.Props = &wParagraphProps{Justification: jc}
	}
	for _, run := range para.Runs {
		size := val(strconv.Itoa(run.HalfPoints()))
		p.Runs = append(p.Runs, newRun(run.Text, &wRunProps{Size: size}))
	}
	return p
}

func newRun(text string, props *wRunProps) wRun {
	text = normalize(text)
	r := wRun{
		Props: props,
		Text:  wText{Value: text},
	}
	if text != strings.TrimSpace(text) {
		r.Text.Space = "preserve"
	}
	return r
}

// justification maps an alignment to a w:jc value; left is the default and
// is not written.
func justification(a model.TextAlignment) *wVal {
	switch a {
	case model.AlignCenter:
		return val("center")
	case model.AlignRight:
		return val("right")
	case model.AlignJustify:
		return val("both")
	default:
		return nil
	}
}

// normalize puts text into Unicode NFC so composed and decomposed input
// serialize identically.
func normalize(s string) string {
	return norm.NFC.String(s)
}
