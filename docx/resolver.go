package docx

import (
	"strconv"
	"strings"

	"github.com/tsawler/annualreport/model"
)

// notHeading is the level of a paragraph style that is not a heading.
const notHeading = -1

// runFormat is the effective character formatting of a run.
type runFormat struct {
	Font   string
	Size   float64 // points
	Bold   bool
	Italic bool
	Color  string // RRGGBB, empty for automatic
}

// apply layers p over f; unset properties keep f's values.
func (f *runFormat) apply(p *rRunProps) {
	if p == nil {
		return
	}
	if p.Fonts != nil && p.Fonts.ASCII != "" {
		f.Font = p.Fonts.ASCII
	}
	if p.Bold != nil {
		f.Bold = p.Bold.on()
	}
	if p.Italic != nil {
		f.Italic = p.Italic.on()
	}
	if p.Color != nil {
		f.Color = p.Color.Val
		if strings.EqualFold(f.Color, "auto") {
			f.Color = ""
		}
	}
	if size := halfPointsToPoints(p.Size); size > 0 {
		f.Size = size
	}
}

// paraFormat is the effective formatting of a paragraph: document defaults,
// then its style's basedOn chain from the root down, then direct formatting.
type paraFormat struct {
	Alignment   model.TextAlignment
	SpaceBefore float64 // points
	SpaceAfter  float64 // points
	Run         runFormat

	// namedLevel is the heading level implied by the style's ID or name,
	// outline the 0-based w:outlineLvl. Either may be notHeading.
	namedLevel int
	outline    int
}

func (f *paraFormat) apply(p *rParagraphProps) {
	if p == nil {
		return
	}
	if p.Jc != nil {
		f.Alignment = alignmentFromJc(p.Jc.Val)
	}
	if p.Spacing != nil {
		if v, ok := twipsToPoints(p.Spacing.Before); ok {
			f.SpaceBefore = v
		}
		if v, ok := twipsToPoints(p.Spacing.After); ok {
			f.SpaceAfter = v
		}
	}
	if p.OutlineLvl != nil {
		f.outline = notHeading
		// Level 9 marks body text.
		if lvl, err := strconv.Atoi(strings.TrimSpace(p.OutlineLvl.Val)); err == nil && lvl >= 0 && lvl < model.MaxHeadingLevel {
			f.outline = lvl
		}
	}
}

// headingLevel returns 0 for the title, 1-9 for section headings and
// notHeading otherwise. A title or heading style name wins over the
// outline level.
func (f paraFormat) headingLevel() int {
	if f.namedLevel != notHeading {
		return f.namedLevel
	}
	if f.outline != notHeading {
		return f.outline + 1
	}
	return notHeading
}

// styleSheet resolves paragraph styles from word/styles.xml.
type styleSheet struct {
	defs  map[string]*rStyle
	base  paraFormat
	cache map[string]paraFormat
}

// newStyleSheet indexes the paragraph styles. A package without styles.xml
// resolves everything to the writer's own document defaults, and heading
// levels come from built-in style IDs alone.
func newStyleSheet(styles *rStyles) *styleSheet {
	s := &styleSheet{
		defs:  make(map[string]*rStyle),
		cache: make(map[string]paraFormat),
		base: paraFormat{
			Run:        runFormat{Font: defaultFont, Size: defaultSizeHalf / 2},
			namedLevel: notHeading,
			outline:    notHeading,
		},
	}
	if styles == nil {
		return s
	}

	s.base.Run.apply(styles.Defaults.Run)
	s.base.apply(styles.Defaults.Paragraph)
	for i := range styles.Styles {
		def := &styles.Styles[i]
		if def.Type == "" || def.Type == "paragraph" {
			s.defs[def.ID] = def
		}
	}
	return s
}

// paragraph returns the resolved format of a paragraph style. An unknown
// or empty ID resolves to the document defaults.
func (s *styleSheet) paragraph(id string) paraFormat {
	if f, ok := s.cache[id]; ok {
		return f
	}

	f := s.base
	chain := s.chain(id)
	for _, def := range chain {
		f.apply(def.PPr)
		f.Run.apply(def.RPr)
	}

	f.namedLevel = levelFromStyleName(id)
	if f.namedLevel == notHeading && len(chain) > 0 {
		if own := chain[len(chain)-1]; own.Name != nil {
			f.namedLevel = levelFromStyleName(own.Name.Val)
		}
	}

	s.cache[id] = f
	return f
}

// chain returns id's style and its ancestors, root first. Cycles in basedOn
// end the walk.
func (s *styleSheet) chain(id string) []*rStyle {
	var chain []*rStyle
	seen := make(map[string]bool)
	for id != "" && !seen[id] {
		seen[id] = true
		def, ok := s.defs[id]
		if !ok {
			break
		}
		chain = append(chain, def)
		if def.BasedOn == nil {
			break
		}
		id = def.BasedOn.Val
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// resolveRun layers a run's direct formatting over its paragraph's and
// reports whether the run sets its own size.
func resolveRun(para paraFormat, props *rRunProps) (runFormat, bool) {
	f := para.Run
	f.apply(props)
	explicit := props != nil && halfPointsToPoints(props.Size) > 0
	return f, explicit
}

// levelFromStyleName recognizes "Title", "Heading1" and "heading 1" style
// IDs and names, case-insensitively.
func levelFromStyleName(name string) int {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if key == "title" {
		return model.TitleLevel
	}
	digits, ok := strings.CutPrefix(key, "heading")
	if !ok {
		return notHeading
	}
	level, err := strconv.Atoi(digits)
	if err != nil || level < 1 || level > model.MaxHeadingLevel {
		return notHeading
	}
	return level
}

func alignmentFromJc(jc string) model.TextAlignment {
	switch jc {
	case "center":
		return model.AlignCenter
	case "right", "end":
		return model.AlignRight
	case "both", "distribute":
		return model.AlignJustify
	}
	return model.AlignLeft
}

// halfPointsToPoints converts a w:sz value; 0 when absent or malformed.
func halfPointsToPoints(v *rVal) float64 {
	if v == nil {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
	if err != nil || n <= 0 {
		return 0
	}
	return n / 2
}

func twipsToPoints(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n / 20, true
}
