package docx

import "encoding/xml"

// Write-side structures. Element and attribute names carry their namespace
// prefix literally; the root element declares the prefixes it uses.

// wDocument represents word/document.xml on output.
type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    wBody    `xml:"w:body"`
}

// wBody holds paragraphs followed by the section properties.
type wBody struct {
	Paragraphs []wParagraph `xml:"w:p"`
	SectPr     wSectPr      `xml:"w:sectPr"`
}

type wParagraph struct {
	Props *wParagraphProps `xml:"w:pPr,omitempty"`
	Runs  []wRun           `xml:"w:r"`
}

// wParagraphProps fields are declared in schema order.
type wParagraphProps struct {
	Style         *wVal     `xml:"w:pStyle,omitempty"`
	KeepNext      *wEmpty   `xml:"w:keepNext,omitempty"`
	Spacing       *wSpacing `xml:"w:spacing,omitempty"`
	Justification *wVal     `xml:"w:jc,omitempty"`
	OutlineLvl    *wVal     `xml:"w:outlineLvl,omitempty"`
}

type wRun struct {
	Props *wRunProps `xml:"w:rPr,omitempty"`
	Text  wText      `xml:"w:t"`
}

// wRunProps fields are declared in schema order.
type wRunProps struct {
	Fonts  *wFonts `xml:"w:rFonts,omitempty"`
	Bold   *wEmpty `xml:"w:b,omitempty"`
	Italic *wEmpty `xml:"w:i,omitempty"`
	Color  *wVal   `xml:"w:color,omitempty"`
	Size   *wVal   `xml:"w:sz,omitempty"`
	SizeCS *wVal   `xml:"w:szCs,omitempty"`
}

type wText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type wVal struct {
	Val string `xml:"w:val,attr"`
}

type wEmpty struct{}

type wFonts struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
	CS       string `xml:"w:cs,attr,omitempty"`
}

type wSpacing struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type wSectPr struct {
	PageSize    wPageSize    `xml:"w:pgSz"`
	PageMargins wPageMargins `xml:"w:pgMar"`
}

// wPageSize is in twips.
type wPageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

// wPageMargins is in twips.
type wPageMargins struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// wStyles represents word/styles.xml on output.
type wStyles struct {
	XMLName     xml.Name     `xml:"w:styles"`
	XmlnsW      string       `xml:"xmlns:w,attr"`
	DocDefaults wDocDefaults `xml:"w:docDefaults"`
	Styles      []wStyle     `xml:"w:style"`
}

type wDocDefaults struct {
	RPrDefault wRPrDefault `xml:"w:rPrDefault"`
	PPrDefault wPPrDefault `xml:"w:pPrDefault"`
}

type wRPrDefault struct {
	RPr wRunProps `xml:"w:rPr"`
}

type wPPrDefault struct {
	PPr wParagraphProps `xml:"w:pPr"`
}

type wStyle struct {
	Type    string           `xml:"w:type,attr"`
	Default string           `xml:"w:default,attr,omitempty"`
	StyleID string           `xml:"w:styleId,attr"`
	Name    wVal             `xml:"w:name"`
	BasedOn *wVal            `xml:"w:basedOn,omitempty"`
	Next    *wVal            `xml:"w:next,omitempty"`
	QFormat *wEmpty          `xml:"w:qFormat,omitempty"`
	PPr     *wParagraphProps `xml:"w:pPr,omitempty"`
	RPr     *wRunProps       `xml:"w:rPr,omitempty"`
}

// wSettings represents word/settings.xml on output.
type wSettings struct {
	XMLName                 xml.Name `xml:"w:settings"`
	XmlnsW                  string   `xml:"xmlns:w,attr"`
	DefaultTabStop          wVal     `xml:"w:defaultTabStop"`
	CharacterSpacingControl wVal     `xml:"w:characterSpacingControl"`
}

// ctTypes represents [Content_Types].xml.
type ctTypes struct {
	XMLName   xml.Name     `xml:"Types"`
	Xmlns     string       `xml:"xmlns,attr"`
	Defaults  []ctDefault  `xml:"Default"`
	Overrides []ctOverride `xml:"Override"`
}

type ctDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// pkgRelationships represents a .rels part on output.
type pkgRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []pkgRelationship `xml:"Relationship"`
}

type pkgRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// cpCoreProperties represents docProps/core.xml on output.
type cpCoreProperties struct {
	XMLName      xml.Name `xml:"cp:coreProperties"`
	XmlnsCP      string   `xml:"xmlns:cp,attr"`
	XmlnsDC      string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms string   `xml:"xmlns:dcterms,attr"`
	XmlnsXSI     string   `xml:"xmlns:xsi,attr"`
	Title        string   `xml:"dc:title,omitempty"`
	Subject      string   `xml:"dc:subject,omitempty"`
	Creator      string   `xml:"dc:creator,omitempty"`
	Keywords     string   `xml:"cp:keywords,omitempty"`
	Created      *w3cdtf  `xml:"dcterms:created,omitempty"`
	Modified     *w3cdtf  `xml:"dcterms:modified,omitempty"`
}

type w3cdtf struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// epAppProperties represents docProps/app.xml on output.
type epAppProperties struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
	DocSecurity int      `xml:"DocSecurity"`
	Paragraphs  int      `xml:"Paragraphs"`
	Words       int      `xml:"Words"`
}
