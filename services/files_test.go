package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionToMimeType(t *testing.T) {
	assert.Equal(t, "application/pdf", ExtensionToMimeType("pdf"))
	assert.Equal(t, "image/jpeg", ExtensionToMimeType("jpeg"))
	assert.Equal(t, "image/jpeg", ExtensionToMimeType("jpg"))
	assert.Equal(t, "text/csv", ExtensionToMimeType("csv"))
	assert.Equal(t, "text/plain", ExtensionToMimeType("unknown"))
	assert.Equal(t, "text/plain", ExtensionToMimeType(""))
}

func TestMimeTypeToExtension(t *testing.T) {
	assert.Equal(t, "jpg", MimeTypeToExtension("image/jpeg"))
	assert.Equal(t, "html", MimeTypeToExtension("text/html"))
	assert.Equal(t, "pdf", MimeTypeToExtension("application/pdf"))
	assert.Equal(t, "type", MimeTypeToExtension("custom/type"))
	assert.Equal(t, "", MimeTypeToExtension(""))
	assert.Equal(t, "", MimeTypeToExtension("invalid"))
}

func TestMimeTableRoundTrip(t *testing.T) {
	for _, e := range mimeTable {
		assert.Equal(t, e.mime, ExtensionToMimeType(e.ext), e.ext)
		assert.Equal(t, e.mime, ExtensionToMimeType(MimeTypeToExtension(e.mime)), e.mime)
	}
}

func TestGetFileNameExtension(t *testing.T) {
	assert.Equal(t, "pdf", GetFileNameExtension("peticao.inicial.pdf"))
	assert.Equal(t, "gitignore", GetFileNameExtension(".gitignore"))
	assert.Equal(t, "", GetFileNameExtension("."))
	assert.Equal(t, "", GetFileNameExtension("README"))
}

func TestExtensionToUTI(t *testing.T) {
	uti, ok := ExtensionToUTI("docx")
	assert.True(t, ok)
	assert.Equal(t, "com.microsoft.word.document", uti)

	_, ok = ExtensionToUTI("png")
	assert.False(t, ok)
}

func TestFormatFileSize(t *testing.T) {
	const (
		kb = 1024.0
		tb = kb * kb * kb * kb
	)

	tests := []struct {
		bytes float64
		want  string
	}{
		{0, "0 B"},
		{-10, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{kb * 1.234, "1.23 KB"},
		{1048575, "1023.99 KB"},
		{kb * kb, "1 MB"},
		{tb * 0.25, "256 GB"},
		{tb - 1, "1023.99 GB"},
		{tb * 1.5, "1.5 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
		})
	}

	assert.Equal(t, "0 B", FormatFileSize(math.NaN()))
	assert.Equal(t, "0 B", FormatFileSize(math.Inf(1)))
}

func TestDetectMimeType(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

	assert.Equal(t, "application/pdf", DetectMimeType(pdf))
	assert.Equal(t, "pdf", DetectExtension(pdf))
	assert.Equal(t, "image/png", DetectMimeType(png))
	assert.Equal(t, "png", DetectExtension(png))
	assert.Equal(t, "text/plain", DetectMimeType([]byte("petição inicial")))
	assert.Equal(t, "txt", DetectExtension([]byte("petição inicial")))
}
