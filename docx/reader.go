// Package docx reads and writes DOCX (Office Open XML WordprocessingML)
// documents.
//
// [Save] and [Write] serialize a [model.Document] as a minimal, valid
// package: content types, relationships, the document body, a style sheet
// declaring Title and Heading1-9, settings, and core/app properties. Output
// is reproducible: the same document always yields the same bytes.
//
// [Open] reads a package back into an ordered list of [Block] values with
// their resolved formatting, which is how saved reports are inspected and
// verified.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/tsawler/annualreport/model"
)

// Block kinds reported by the Reader.
const (
	KindTitle     = "title"
	KindHeading   = "heading"
	KindParagraph = "paragraph"
)

// Package parts the Reader looks at.
const (
	partContentTypes = "[Content_Types].xml"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
)

// Block is one paragraph of a reopened document with its resolved
// formatting. Spacing is in points.
type Block struct {
	Kind        string  `yaml:"kind"`
	Style       string  `yaml:"style,omitempty"`
	Level       int     `yaml:"level,omitempty"`
	Alignment   string  `yaml:"alignment"`
	SpaceBefore float64 `yaml:"space_before,omitempty"`
	SpaceAfter  float64 `yaml:"space_after,omitempty"`
	Text        string  `yaml:"text"`
	Runs        []Run   `yaml:"runs,omitempty"`
}

// Run is a text run of a reopened paragraph. ExplicitSize reports whether
// the run carries its own w:sz rather than inheriting one from its style.
type Run struct {
	Text         string  `yaml:"text"`
	Font         string  `yaml:"font"`
	FontSize     float64 `yaml:"font_size"`
	ExplicitSize bool    `yaml:"explicit_size"`
	Bold         bool    `yaml:"bold,omitempty"`
	Italic       bool    `yaml:"italic,omitempty"`
	Color        string  `yaml:"color,omitempty"`
}

// Reader holds a parsed DOCX package. All parts are read by Open; the
// methods only return what was parsed.
type Reader struct {
	zr     *zip.ReadCloser
	parts  map[string]*zip.File
	blocks []Block
	core   *rCoreProps
	app    *rAppProps
}

// Open reads a DOCX package. [Content_Types].xml and word/document.xml must
// be present. The styles, core and app parts are optional, but a part that
// is present and malformed is an error.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}

	r := &Reader{zr: zr, parts: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		r.parts[f.Name] = f
	}

	if err := r.load(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return r, nil
}

// Close releases the underlying archive.
func (r *Reader) Close() error {
	if r.zr == nil {
		return nil
	}
	err := r.zr.Close()
	r.zr = nil
	return err
}

func (r *Reader) load() error {
	for _, name := range []string{partContentTypes, partDocument} {
		if _, ok := r.parts[name]; !ok {
			return fmt.Errorf("missing required part %s", name)
		}
	}

	var styles rStyles
	found, err := r.decode(partStyles, &styles)
	if err != nil {
		return err
	}
	sheet := newStyleSheet(nil)
	if found {
		sheet = newStyleSheet(&styles)
	}

	var doc rDocument
	if _, err := r.decode(partDocument, &doc); err != nil {
		return err
	}
	for _, p := range doc.Body.Paragraphs {
		r.blocks = append(r.blocks, newBlock(sheet, p))
	}

	var core rCoreProps
	if found, err = r.decode(partCore, &core); err != nil {
		return err
	} else if found {
		r.core = &core
	}

	var app rAppProps
	if found, err = r.decode(partApp, &app); err != nil {
		return err
	} else if found {
		r.app = &app
	}
	return nil
}

// decode unmarshals the named part into v. It reports false, and no error,
// when the package has no such part.
func (r *Reader) decode(name string, v any) (bool, error) {
	f, ok := r.parts[name]
	if !ok {
		return false, nil
	}
	rc, err := f.Open()
	if err != nil {
		return true, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	if err := xml.NewDecoder(rc).Decode(v); err != nil {
		return true, fmt.Errorf("parsing %s: %w", name, err)
	}
	return true, nil
}

func newBlock(sheet *styleSheet, p rParagraph) Block {
	var styleID string
	if p.Props != nil && p.Props.Style != nil {
		styleID = p.Props.Style.Val
	}
	format := sheet.paragraph(styleID)
	format.apply(p.Props)

	block := Block{
		Kind:        KindParagraph,
		Style:       styleID,
		Alignment:   format.Alignment.String(),
		SpaceBefore: format.SpaceBefore,
		SpaceAfter:  format.SpaceAfter,
	}
	switch level := format.headingLevel(); {
	case level == model.TitleLevel:
		block.Kind = KindTitle
	case level > 0:
		block.Kind = KindHeading
		block.Level = level
	}

	var text strings.Builder
	for _, run := range p.Runs {
		content := runText(run.Content)
		if content == "" {
			continue
		}
		f, explicit := resolveRun(format, run.Props)
		block.Runs = append(block.Runs, Run{
			Text:         content,
			Font:         f.Font,
			FontSize:     f.Size,
			ExplicitSize: explicit,
			Bold:         f.Bold,
			Italic:       f.Italic,
			Color:        f.Color,
		})
		text.WriteString(content)
	}
	block.Text = text.String()
	return block
}

// runText concatenates a run's text, tabs and breaks in document order.
func runText(content []rRunContent) string {
	var sb strings.Builder
	for _, c := range content {
		switch c.XMLName.Local {
		case "t":
			sb.WriteString(c.Text)
		case "tab":
			sb.WriteByte('\t')
		case "br", "cr":
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Parts returns the names of all parts in the package, in archive order.
func (r *Reader) Parts() []string {
	if r.zr == nil {
		return nil
	}
	names := make([]string, 0, len(r.zr.File))
	for _, f := range r.zr.File {
		names = append(names, f.Name)
	}
	return names
}

// Blocks returns the document's paragraphs in order.
func (r *Reader) Blocks() []Block {
	return r.blocks
}

// Text returns the document text, one block per line.
func (r *Reader) Text() string {
	return r.Document().ExtractText()
}

// Document rebuilds the model. Titles and headings carry their level and
// alignment; paragraphs carry their runs with resolved sizes.
func (r *Reader) Document() *model.Document {
	doc := model.NewDocument()
	doc.Metadata = r.Metadata()

	for _, block := range r.blocks {
		alignment := parseAlignment(block.Alignment)
		if block.Kind == KindParagraph {
			para := &model.Paragraph{Alignment: alignment}
			for _, run := range block.Runs {
				para.AddRun(run.Text, run.FontSize)
			}
			doc.Append(para)
			continue
		}
		doc.Append(&model.Heading{Text: block.Text, Level: block.Level, Alignment: alignment})
	}
	return doc
}

// Metadata returns the package properties. Author is the core creator;
// Creator is the producing application.
func (r *Reader) Metadata() model.Metadata {
	var meta model.Metadata
	if r.core != nil {
		meta.Title = r.core.Title
		meta.Author = r.core.Creator
		meta.Subject = r.core.Subject
		for _, kw := range strings.Split(r.core.Keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				meta.Keywords = append(meta.Keywords, kw)
			}
		}
	}
	if r.app != nil {
		meta.Creator = r.app.Application
	}
	return meta
}

// parseAlignment maps a Block alignment back to the model.
func parseAlignment(s string) model.TextAlignment {
	switch s {
	case model.AlignCenter.String():
		return model.AlignCenter
	case model.AlignRight.String():
		return model.AlignRight
	case model.AlignJustify.String():
		return model.AlignJustify
	}
	return model.AlignLeft
}
