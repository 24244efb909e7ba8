package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfHead = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

func TestDescribeFile(t *testing.T) {
	info := DescribeFile("Peticao.PDF", 1536, pdfHead)

	assert.Equal(t, "pdf", info.Extension)
	assert.Equal(t, "application/pdf", info.MimeType)
	assert.Equal(t, "application/pdf", info.DetectedMime)
	assert.Equal(t, "pdf", info.DetectedExt)
	assert.Equal(t, "com.adobe.pdf", info.UTI)
	assert.Equal(t, "1.5 KB", info.FormattedSize)
}

func TestCheckFile(t *testing.T) {
	tests := []struct {
		name    string
		info    FileInfo
		rules   FileRules
		wantErr error
	}{
		{
			name:  "Valid PDF",
			info:  DescribeFile("inicial.pdf", 2048, pdfHead),
			rules: DocumentRules,
		},
		{
			name:    "Too large",
			info:    DescribeFile("inicial.pdf", MaxFileSize+1, pdfHead),
			rules:   DocumentRules,
			wantErr: ErrFileTooLarge,
		},
		{
			name:    "Default size limit",
			info:    DescribeFile("inicial.pdf", MaxFileSize+1, pdfHead),
			rules:   FileRules{},
			wantErr: ErrFileTooLarge,
		},
		{
			name:    "Extension not allowed",
			info:    DescribeFile("script.sh", 10, []byte("#!/bin/sh\necho hi\n")),
			rules:   DocumentRules,
			wantErr: ErrFileTypeNotAllowed,
		},
		{
			name:  "Allowed list with dots",
			info:  DescribeFile("foto.PNG", 10, nil),
			rules: FileRules{AllowedExtensions: []string{".png"}},
		},
		{
			name:    "PDF renamed to docx",
			info:    DescribeFile("contrato.docx", 2048, pdfHead),
			rules:   FileRules{RequireMatch: true},
			wantErr: ErrFileTypeMismatch,
		},
		{
			name:  "Plain text never mismatches",
			info:  DescribeFile("notas.csv", 20, []byte("a;b;c\n1;2;3\n")),
			rules: FileRules{RequireMatch: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFile(tt.info, tt.rules)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckFileTooLargeMessage(t *testing.T) {
	err := CheckFile(DescribeFile("big.pdf", 15*1024*1024, pdfHead), DocumentRules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "15 MB exceeds 10 MB")
}

func TestInspectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "procuracao.pdf")
	require.NoError(t, os.WriteFile(path, pdfHead, 0o644))

	info, err := InspectFile(path)
	require.NoError(t, err)
	assert.Equal(t, "procuracao.pdf", info.Name)
	assert.Equal(t, int64(len(pdfHead)), info.Size)
	assert.Equal(t, "application/pdf", info.DetectedMime)
	assert.NoError(t, CheckFile(info, DocumentRules))

	_, err = InspectFile(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}
