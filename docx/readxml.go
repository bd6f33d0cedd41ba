package docx

import "encoding/xml"

// Namespaces declared by the writer.
const (
	nsW        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDC       = "http://purl.org/dc/elements/1.1/"
	nsDCTerms  = "http://purl.org/dc/terms/"
	nsCP       = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsXSI      = "http://www.w3.org/2001/XMLSchema-instance"
	nsExtProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsPkgRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsTypes    = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Read-side structures match on local names only, so documents written with
// any prefix for the main namespace decode the same way. Optional elements
// are pointers: nil means the property is not set at this level and is
// inherited.

// rVal is an element whose payload is its w:val attribute.
type rVal struct {
	Val string `xml:"val,attr"`
}

// rToggle is an on/off property such as w:b. Present without a value means on.
type rToggle struct {
	Val string `xml:"val,attr"`
}

func (t *rToggle) on() bool {
	switch t.Val {
	case "0", "false", "off":
		return false
	}
	return true
}

type rDocument struct {
	Body struct {
		Paragraphs []rParagraph `xml:"p"`
	} `xml:"body"`
}

type rParagraph struct {
	Props *rParagraphProps `xml:"pPr"`
	Runs  []rRun           `xml:"r"`
}

type rParagraphProps struct {
	Style      *rVal     `xml:"pStyle"`
	Jc         *rVal     `xml:"jc"`
	Spacing    *rSpacing `xml:"spacing"`
	OutlineLvl *rVal     `xml:"outlineLvl"`
}

type rSpacing struct {
	Before string `xml:"before,attr"`
	After  string `xml:"after,attr"`
}

// rRun keeps its content elements in document order so tabs and breaks
// land where they appear.
type rRun struct {
	Props   *rRunProps    `xml:"rPr"`
	Content []rRunContent `xml:",any"`
}

type rRunContent struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

type rRunProps struct {
	Fonts  *rFonts  `xml:"rFonts"`
	Bold   *rToggle `xml:"b"`
	Italic *rToggle `xml:"i"`
	Color  *rVal    `xml:"color"`
	Size   *rVal    `xml:"sz"`
}

type rFonts struct {
	ASCII string `xml:"ascii,attr"`
}

type rStyles struct {
	Defaults struct {
		Run       *rRunProps       `xml:"rPrDefault>rPr"`
		Paragraph *rParagraphProps `xml:"pPrDefault>pPr"`
	} `xml:"docDefaults"`
	Styles []rStyle `xml:"style"`
}

type rStyle struct {
	Type    string           `xml:"type,attr"`
	ID      string           `xml:"styleId,attr"`
	Name    *rVal            `xml:"name"`
	BasedOn *rVal            `xml:"basedOn"`
	PPr     *rParagraphProps `xml:"pPr"`
	RPr     *rRunProps       `xml:"rPr"`
}

type rCoreProps struct {
	Title    string `xml:"title"`
	Subject  string `xml:"subject"`
	Creator  string `xml:"creator"`
	Keywords string `xml:"keywords"`
}

type rAppProps struct {
	Application string `xml:"Application"`
}
