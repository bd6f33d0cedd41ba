package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/annualreport/model"
)

// Open reads an HTML preview from filename.
func Open(filename string) (*model.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an HTML preview back into a document. Headings, paragraphs
// and their run sizes are recovered; other markup is ignored.
func Parse(r io.Reader) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	doc := model.NewDocument()
	if head := descendant(root, atom.Head); head != nil {
		readHead(head, &doc.Metadata)
	}

	body := descendant(root, atom.Body)
	if body == nil {
		body = root
	}
	for n := range children(body) {
		if n.DataAtom == atom.P {
			doc.Append(readParagraph(n))
		} else if _, ok := headingLevel(n.DataAtom); ok {
			doc.Append(readHeading(n))
		}
	}
	return doc, nil
}

func readHead(head *html.Node, meta *model.Metadata) {
	for n := range children(head) {
		switch n.DataAtom {
		case atom.Title:
			meta.Title = strings.TrimSpace(textContent(n))
		case atom.Meta:
			content := attrValue(n, "content")
			switch attrValue(n, "name") {
			case "author":
				meta.Author = content
			case "generator":
				meta.Creator = content
			}
		}
	}
}

// headingLevel maps h1 to the title and h2-h6 to levels 1-5.
func headingLevel(a atom.Atom) (int, bool) {
	for i, h := range headingAtoms {
		if h == a {
			return i, true
		}
	}
	return 0, false
}

func readHeading(n *html.Node) *model.Heading {
	level, _ := headingLevel(n.DataAtom)
	// data-level keeps levels deeper than h6 can express.
	if level != model.TitleLevel {
		if v, err := strconv.Atoi(attrValue(n, "data-level")); err == nil {
			level = v
		}
	}
	return &model.Heading{
		Text:      strings.TrimSpace(textContent(n)),
		Level:     level,
		Alignment: parseAlignment(attrValue(n, "style")),
	}
}

func readParagraph(n *html.Node) *model.Paragraph {
	p := &model.Paragraph{Alignment: parseAlignment(attrValue(n, "style"))}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && c.Data != "" {
			p.AddRun(c.Data, 0)
		} else if c.DataAtom == atom.Span {
			p.AddRun(textContent(c), parseFontSize(attrValue(c, "style")))
		}
	}
	return p
}

// styleProperty returns the value of prop in an inline style attribute.
func styleProperty(style, prop string) string {
	for _, decl := range strings.Split(style, ";") {
		key, value, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(key), prop) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

var alignments = map[string]model.TextAlignment{
	"left":    model.AlignLeft,
	"center":  model.AlignCenter,
	"right":   model.AlignRight,
	"justify": model.AlignJustify,
}

func parseAlignment(style string) model.TextAlignment {
	return alignments[strings.ToLower(styleProperty(style, "text-align"))]
}

// parseFontSize reads a font-size in points; other units yield 0.
func parseFontSize(style string) float64 {
	value, ok := strings.CutSuffix(styleProperty(style, "font-size"), "pt")
	if !ok {
		return 0
	}
	size, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return size
}

// children yields the element children of n.
func children(n *html.Node) func(yield func(*html.Node) bool) {
	return func(yield func(*html.Node) bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && !yield(c) {
				return
			}
		}
	}
}

// descendant returns the first element under n, in document order, with
// the given tag.
func descendant(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := descendant(c, a); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates the text under n without trimming.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
