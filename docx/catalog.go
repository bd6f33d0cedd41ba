package docx

import (
	"strconv"

	"github.com/tsawler/annualreport/model"
)

// Style IDs the writer declares in styles.xml.
const (
	StyleNormal = "Normal"
	StyleTitle  = "Title"
)

// Document defaults: Calibri 11pt body text.
const (
	defaultFont     = "Calibri"
	defaultHeadFont = "Calibri Light"
	defaultSizeHalf = 22
)

// StyleID returns the paragraph style ID used for a heading level.
// Level 0 is the title; levels outside 1-9 are clamped.
func StyleID(level int) string {
	if level == model.TitleLevel {
		return StyleTitle
	}
	if level < 1 {
		level = 1
	}
	if level > model.MaxHeadingLevel {
		level = model.MaxHeadingLevel
	}
	return "Heading" + strconv.Itoa(level)
}

// headingSizes holds half-point sizes for Heading1..Heading9.
var headingSizes = [model.MaxHeadingLevel]int{32, 26, 24, 22, 22, 22, 22, 22, 22}

func buildStyles() wStyles {
	styles := wStyles{
		XmlnsW: nsW,
		DocDefaults: wDocDefaults{
			RPrDefault: wRPrDefault{RPr: wRunProps{
				Fonts:  &wFonts{ASCII: defaultFont, HAnsi: defaultFont, EastAsia: defaultFont, CS: defaultFont},
				Size:   val(strconv.Itoa(defaultSizeHalf)),
				SizeCS: val(strconv.Itoa(defaultSizeHalf)),
			}},
			PPrDefault: wPPrDefault{PPr: wParagraphProps{
				Spacing: &wSpacing{After: "160", Line: "259", LineRule: "auto"},
			}},
		},
	}

	styles.Styles = append(styles.Styles,
		wStyle{
			Type:    "paragraph",
			Default: "1",
			StyleID: StyleNormal,
			Name:    wVal{Val: "Normal"},
			QFormat: &wEmpty{},
		},
		wStyle{
			Type:    "paragraph",
			StyleID: StyleTitle,
			Name:    wVal{Val: "Title"},
			BasedOn: val(StyleNormal),
			Next:    val(StyleNormal),
			QFormat: &wEmpty{},
			PPr: &wParagraphProps{
				Spacing: &wSpacing{After: "0", Line: "240", LineRule: "auto"},
			},
			RPr: &wRunProps{
				Fonts:  &wFonts{ASCII: defaultHeadFont, HAnsi: defaultHeadFont},
				Size:   val("56"),
				SizeCS: val("56"),
			},
		},
	)

	for level := 1; level <= model.MaxHeadingLevel; level++ {
		size := strconv.Itoa(headingSizes[level-1])
		styles.Styles = append(styles.Styles, wStyle{
			Type:    "paragraph",
			StyleID: StyleID(level),
			Name:    wVal{Val: "heading " + strconv.Itoa(level)},
			BasedOn: val(StyleNormal),
			Next:    val(StyleNormal),
			QFormat: &wEmpty{},
			PPr: &wParagraphProps{
				KeepNext:   &wEmpty{},
				Spacing:    &wSpacing{Before: headingSpaceBefore(level), After: "0"},
				OutlineLvl: val(strconv.Itoa(level - 1)),
			},
			RPr: &wRunProps{
				Fonts:  &wFonts{ASCII: defaultHeadFont, HAnsi: defaultHeadFont},
				Bold:   &wEmpty{},
				Color:  val("2F5496"),
				Size:   val(size),
				SizeCS: val(size),
			},
		})
	}

	return styles
}

func headingSpaceBefore(level int) string {
	if level == 1 {
		return "240"
	}
	return "40"
}

func val(s string) *wVal {
	return &wVal{Val: s}
}
