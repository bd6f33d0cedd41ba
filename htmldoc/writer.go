// Package htmldoc renders documents as standalone HTML previews and reads
// those previews back.
//
// The title becomes an h1 with class "title", section headings become h2
// through h6 and carry their model level in a data-level attribute, and
// every paragraph run is a span with an explicit font-size.
package htmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/annualreport/internal/atomicfile"
	"github.com/tsawler/annualreport/model"
)

// ErrInvalidDocument is returned for a nil document or one holding a run
// whose size cannot be rendered.
var ErrInvalidDocument = errors.New("invalid document")

// TitleClass marks the h1 element holding the document title.
const TitleClass = "title"

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// Save renders doc as HTML at path, replacing any existing file.
func Save(doc *model.Document, path string) error {
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		return err
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("saving HTML: %w", err)
	}
	return nil
}

// Render writes doc to w as a complete HTML5 document.
func Render(w io.Writer, doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	if err := doc.ValidateRuns(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html, attr("lang", "en"))
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(buildHead(doc))

	body := element(atom.Body)
	htmlEl.AppendChild(body)
	for _, elem := range doc.Elements {
		switch e := elem.(type) {
		case *model.Heading:
			body.AppendChild(headingNode(e))
		case *model.Paragraph:
			body.AppendChild(paragraphNode(e))
		}
	}

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

func buildHead(doc *model.Document) *html.Node {
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))

	title := doc.Metadata.Title
	if title == "" {
		if h := doc.Title(); h != nil {
			title = h.Text
		}
	}
	titleEl := element(atom.Title)
	titleEl.AppendChild(text(title))
	head.AppendChild(titleEl)

	if doc.Metadata.Author != "" {
		head.AppendChild(element(atom.Meta, attr("name", "author"), attr("content", normalize(doc.Metadata.Author))))
	}
	if doc.Metadata.Creator != "" {
		head.AppendChild(element(atom.Meta, attr("name", "generator"), attr("content", normalize(doc.Metadata.Creator))))
	}
	return head
}

func headingNode(h *model.Heading) *html.Node {
	if h.IsTitle() {
		attrs := []html.Attribute{attr("class", TitleClass)}
		if h.Alignment != model.AlignLeft {
			attrs = append(attrs, alignStyle(h.Alignment))
		}
		n := element(atom.H1, attrs...)
		n.AppendChild(text(h.Text))
		return n
	}

	// h1 is reserved for the title, so level 1 maps to h2.
	idx := h.Level
	if idx < 1 {
		idx = 1
	}
	if idx > len(headingAtoms)-1 {
		idx = len(headingAtoms) - 1
	}

	attrs := []html.Attribute{attr("data-level", strconv.Itoa(h.Level))}
	if h.Alignment != model.AlignLeft {
		attrs = append(attrs, alignStyle(h.Alignment))
	}
	n := element(headingAtoms[idx], attrs...)
	n.AppendChild(text(h.Text))
	return n
}

func paragraphNode(p *model.Paragraph) *html.Node {
	var n *html.Node
	if p.Alignment != model.AlignLeft {
		n = element(atom.P, alignStyle(p.Alignment))
	} else {
		n = element(atom.P)
	}
	for _, run := range p.Runs {
		span := element(atom.Span, attr("style", "font-size:"+formatPoints(run.FontSize)))
		span.AppendChild(text(run.Text))
		n.AppendChild(span)
	}
	return n
}

func alignStyle(a model.TextAlignment) html.Attribute {
	return attr("style", "text-align:"+a.String())
}

func formatPoints(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64) + "pt"
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: normalize(s)}
}

func normalize(s string) string {
	return norm.NFC.String(s)
}
