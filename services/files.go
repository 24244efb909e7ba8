package services

import (
	"math"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type mimeEntry struct {
	ext  string
	mime string
}

// mimeTable is ordered: reverse lookups return the first extension listed
// for a MIME type (image/jpeg -> jpg, text/html -> html).
var mimeTable = []mimeEntry{
	{"3g2", "video/3gpp2"},
	{"3gp", "video/3gpp"},
	{"7z", "application/x-7z-compressed"},
	{"aac", "audio/aac"},
	{"abw", "application/x-abiword"},
	{"arc", "application/x-freearc"},
	{"avi", "video/x-msvideo"},
	{"avif", "image/avif"},
	{"azw", "application/vnd.amazon.ebook"},
	{"bin", "application/octet-stream"},
	{"bmp", "image/bmp"},
	{"bz", "application/x-bzip"},
	{"bz2", "application/x-bzip2"},
	{"cda", "application/x-cdf"},
	{"cmx", "image/x-cmx"},
	{"cod", "image/cis-cod"},
	{"csh", "application/x-csh"},
	{"css", "text/css"},
	{"csv", "text/csv"},
	{"doc", "application/msword"},
	{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	{"eot", "application/vnd.ms-fontobject"},
	{"epub", "application/epub+zip"},
	{"gif", "image/gif"},
	{"gz", "application/gzip"},
	{"html", "text/html"},
	{"htm", "text/html"},
	{"ico", "image/x-icon"},
	{"ics", "text/calendar"},
	{"ief", "image/ief"},
	{"jar", "application/java-archive"},
	{"jfi", "image/pipeg"},
	{"jpg", "image/jpeg"},
	{"jpe", "image/jpeg"},
	{"jpeg", "image/jpeg"},
	{"js", "text/javascript"},
	{"json", "application/json"},
	{"jsonld", "application/ld+json"},
	{"mid", "audio/midi"},
	{"midi", "audio/midi"},
	{"mjs", "text/javascript"},
	{"mp3", "audio/mpeg"},
	{"mp4", "video/mp4"},
	{"mpeg", "video/mpeg"},
	{"mpkg", "application/vnd.apple.installer+xml"},
	{"odp", "application/vnd.oasis.opendocument.presentation"},
	{"ods", "application/vnd.oasis.opendocument.spreadsheet"},
	{"odt", "application/vnd.oasis.opendocument.text"},
	{"oga", "audio/ogg"},
	{"ogv", "video/ogg"},
	{"ogx", "application/ogg"},
	{"opus", "audio/opus"},
	{"otf", "font/otf"},
	{"pbm", "image/x-portable-bitmap"},
	{"pdf", "application/pdf"},
	{"pgm", "image/x-portable-graymap"},
	{"php", "application/x-httpd-php"},
	{"png", "image/png"},
	{"pnm", "image/x-portable-anymap"},
	{"ppm", "image/x-portable-pixmap"},
	{"ppt", "application/vnd.ms-powerpoint"},
	{"pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
	{"rar", "application/vnd.rar"},
	{"ras", "image/x-cmu-raster"},
	{"rgb", "image/x-rgb"},
	{"rtf", "application/rtf"},
	{"sh", "application/x-sh"},
	{"svg", "image/svg+xml"},
	{"tar", "application/x-tar"},
	{"tif", "image/tiff"},
	{"tiff", "image/tiff"},
	{"ts", "video/mp2t"},
	{"ttf", "font/ttf"},
	{"txt", "text/plain"},
	{"vsd", "application/vnd.visio"},
	{"wav", "audio/wav"},
	{"weba", "audio/webm"},
	{"webm", "video/webm"},
	{"webp", "image/webp"},
	{"woff", "font/woff"},
	{"woff2", "font/woff2"},
	{"xbm", "image/x-xbitmap"},
	{"xhtml", "application/xhtml+xml"},
	{"xls", "application/vnd.ms-excel"},
	{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{"xml", "application/xml"},
	{"xpm", "image/x-xpixmap"},
	{"xul", "application/vnd.mozilla.xul+xml"},
	{"xwd", "image/x-xwindowdump"},
	{"zip", "application/zip"},
}

var extensionIndex = func() map[string]string {
	m := make(map[string]string, len(mimeTable))
	for _, e := range mimeTable {
		m[e.ext] = e.mime
	}
	return m
}()

// utiTypes maps extensions to Apple Uniform Type Identifiers
var utiTypes = map[string]string{
	"pdf":  "com.adobe.pdf",
	"doc":  "com.microsoft.word.doc",
	"docx": "com.microsoft.word.document",
	"xls":  "com.microsoft.excel.xls",
	"xlsx": "com.microsoft.excel.spreadsheet",
	"ppt":  "com.microsoft.powerpoint.ppt",
	"pptx": "com.microsoft.powerpoint.presentation",
	"mobi": "com.amazon.mobi",
}

var fileSizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// ExtensionToMimeType returns the MIME type for a bare extension ("pdf"),
// falling back to text/plain
func ExtensionToMimeType(extension string) string {
	if mime, ok := extensionIndex[extension]; ok {
		return mime
	}
	return "text/plain"
}

// MimeTypeToExtension returns the first known extension for mimeType.
// Unknown types yield the subtype ("custom/type" -> "type"); input without a
// slash yields "".
func MimeTypeToExtension(mimeType string) string {
	for _, e := range mimeTable {
		if e.mime == mimeType {
			return e.ext
		}
	}
	_, subtype, found := strings.Cut(mimeType, "/")
	if !found {
		return ""
	}
	return subtype
}

// GetFileNameExtension returns the text after the last dot, or "" when there is none
func GetFileNameExtension(fileName string) string {
	i := strings.LastIndex(fileName, ".")
	if i < 0 {
		return ""
	}
	return fileName[i+1:]
}

// ExtensionToUTI returns the Uniform Type Identifier for an office or PDF extension
func ExtensionToUTI(extension string) (string, bool) {
	uti, ok := utiTypes[extension]
	return uti, ok
}

// FormatFileSize renders a byte count with 1024-based units, truncated to two
// decimals ("1.5 KB", "1023.99 KB")
func FormatFileSize(bytes float64) string {
	if bytes <= 0 || math.IsNaN(bytes) || math.IsInf(bytes, 0) {
		return "0 B"
	}

	i, scale := 0, 1.0
	for i < len(fileSizeUnits)-1 && bytes >= scale*1024 {
		scale *= 1024
		i++
	}

	value := truncDecimal(bytes/scale, 2)
	return value.String() + " " + fileSizeUnits[i]
}

// DetectMimeType sniffs the MIME type of content from its magic bytes,
// without parameters such as charset
func DetectMimeType(content []byte) string {
	m := mimetype.Detect(content)
	mime, _, _ := strings.Cut(m.String(), ";")
	return mime
}

// DetectExtension sniffs content and maps the result through the extension
// table, falling back to the detector's own extension
func DetectExtension(content []byte) string {
	m := mimetype.Detect(content)
	mime, _, _ := strings.Cut(m.String(), ";")
	for _, e := range mimeTable {
		if e.mime == mime {
			return e.ext
		}
	}
	return strings.TrimPrefix(m.Extension(), ".")
}
