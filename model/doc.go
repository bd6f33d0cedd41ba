// Package model provides the intermediate representation (IR) for report
// documents before they are serialized.
//
// A [Document] is an ordered sequence of blocks. Blocks are appended in
// reading order and never reordered; writers emit them exactly as stored.
//
// # Document Structure
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "Annual Report"
//	doc.Append(&model.Heading{Text: "Annual Report", Level: 0, Alignment: model.AlignCenter})
//	doc.Append(model.NewParagraph("Body text.", 11))
//
// # Elements
//
// All document content implements the [Element] interface. The concrete types are:
//
//   - [Heading] - headings; level 0 is the document title, 1-9 are sections
//   - [Paragraph] - a paragraph made of one or more [TextRun] values
//
// A [TextRun] is a contiguous span of text sharing a single font size.
//
// # Validation
//
// [Document.Validate] checks the structural rules writers rely on: exactly
// one title heading and it comes first, section headings at level 1 or
// deeper, and an explicit font size on every run.
package model
