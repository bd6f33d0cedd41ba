package format

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNames(t *testing.T) {
	assert.Equal(t, "DOCX", DOCX.String())
	assert.Equal(t, "HTML", HTML.String())
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "Unknown", Format(42).String())

	assert.Equal(t, ".docx", DOCX.Extension())
	assert.Equal(t, ".html", HTML.Extension())
	assert.Empty(t, Unknown.Extension())
}

func TestDetect(t *testing.T) {
	tests := map[string]Format{
		"report.docx":         DOCX,
		"REPORT.DOCX":         DOCX,
		"out/preview.html":    HTML,
		"preview.htm":         HTML,
		"preview.XHTML":       HTML,
		"report.pdf":          Unknown,
		"report":              Unknown,
		"report.":             Unknown,
		"archive.docx.backup": Unknown,
	}
	for name, want := range tests {
		assert.Equal(t, want, Detect(name), name)
	}
}

func TestWithExtension(t *testing.T) {
	assert.Equal(t, "report.docx", WithExtension("report", DOCX))
	assert.Equal(t, "out.v2/report.docx", WithExtension("out.v2/report", DOCX))
	assert.Equal(t, "report.html", WithExtension("report.html", DOCX))
	assert.Equal(t, "report.pdf", WithExtension("report.pdf", DOCX))
	assert.Equal(t, "report", WithExtension("report", Unknown))
}

func zipWith(t *testing.T, names ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte("<x/>"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"docx", zipWith(t, "[Content_Types].xml", "word/document.xml"), DOCX},
		{"word parts without a body", zipWith(t, "[Content_Types].xml", "word/styles.xml"), Unknown},
		{"spreadsheet", zipWith(t, "[Content_Types].xml", "xl/workbook.xml"), Unknown},
		{"doctype", []byte("  <!DOCTYPE html><html></html>"), HTML},
		{"bare tag", []byte("<HTML><body></body></HTML>"), HTML},
		{"xhtml", []byte(`<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml"></html>`), HTML},
		{"other xml", []byte(`<?xml version="1.0"?><feed></feed>`), Unknown},
		{"text", []byte("just some text"), Unknown},
		{"empty", []byte{}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFromReader(bytes.NewReader(tt.data), int64(len(tt.data)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFromReader_CorruptZip(t *testing.T) {
	data := []byte("PK\x03\x04 definitely not a zip")
	_, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading ZIP directory")
}
