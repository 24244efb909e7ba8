package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// MaxFileSize is the default upper bound accepted by CheckFile
	MaxFileSize = 10 * 1024 * 1024 // 10MB

	// sniffLength is how much of a file is read to detect its type
	sniffLength = 3072
)

var (
	ErrFileTooLarge       = errors.New("file too large")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileTypeMismatch   = errors.New("file content does not match its extension")
)

// FileInfo describes a file by name and sniffed content
type FileInfo struct {
	Name          string
	Extension     string
	Size          int64
	MimeType      string
	DetectedMime  string
	DetectedExt   string
	UTI           string
	FormattedSize string
}

// FileRules restricts what CheckFile accepts. Zero values mean no restriction,
// except MaxSize which falls back to MaxFileSize.
type FileRules struct {
	MaxSize           int64
	AllowedExtensions []string
	// RequireMatch rejects files whose content sniffs to a different type than the extension says
	RequireMatch bool
}

// DocumentRules accepts the office, PDF and image formats exchanged in legal workflows
var DocumentRules = FileRules{
	MaxSize:           MaxFileSize,
	AllowedExtensions: []string{"pdf", "doc", "docx", "txt", "jpg", "jpeg", "png"},
}

// DescribeFile builds a FileInfo from a name, the total size and the first bytes of content
func DescribeFile(name string, size int64, head []byte) FileInfo {
	ext := strings.ToLower(GetFileNameExtension(name))
	info := FileInfo{
		Name:          name,
		Extension:     ext,
		Size:          size,
		MimeType:      ExtensionToMimeType(ext),
		DetectedMime:  DetectMimeType(head),
		DetectedExt:   DetectExtension(head),
		FormattedSize: FormatFileSize(float64(size)),
	}
	info.UTI, _ = ExtensionToUTI(ext)
	return info
}

// CheckFile validates info against rules
func CheckFile(info FileInfo, rules FileRules) error {
	maxSize := rules.MaxSize
	if maxSize <= 0 {
		maxSize = MaxFileSize
	}
	if info.Size > maxSize {
		return fmt.Errorf("%w: %s exceeds %s", ErrFileTooLarge, info.FormattedSize, FormatFileSize(float64(maxSize)))
	}

	if len(rules.AllowedExtensions) > 0 && !containsFold(rules.AllowedExtensions, info.Extension) {
		return fmt.Errorf("%w: .%s (accepted: %s)", ErrFileTypeNotAllowed, info.Extension, strings.Join(rules.AllowedExtensions, ", "))
	}

	// text/plain is the detector's answer for anything it cannot place, so it never proves a mismatch
	if rules.RequireMatch && info.DetectedMime != "text/plain" && info.DetectedMime != info.MimeType {
		return fmt.Errorf("%w: .%s is %s", ErrFileTypeMismatch, info.Extension, info.DetectedMime)
	}

	return nil
}

// InspectFile opens path, sniffs its content and returns its description
func InspectFile(path string) (FileInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to stat file: %w", err)
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return FileInfo{}, fmt.Errorf("failed to read file content: %w", err)
	}

	return DescribeFile(stat.Name(), stat.Size(), head[:n]), nil
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimPrefix(item, "."), value) {
			return true
		}
	}
	return false
}
