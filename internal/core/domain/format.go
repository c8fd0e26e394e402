package domain

import (
	"fmt"
	"path"
	"strings"
)

// Format identifies how a document's bytes are decoded into text.
// The set is closed; decoders switch over it exhaustively.
type Format int

// Recognised document formats.
const (
	// FormatPlainText is UTF-8 text (.txt).
	FormatPlainText Format = iota + 1

	// FormatPDF is a PDF document (.pdf).
	FormatPDF

	// FormatWord is an Office Open XML word-processing document (.docx).
	FormatWord

	// FormatSpreadsheet is an Office Open XML workbook (.xlsx).
	FormatSpreadsheet
)

// formatExtensions maps a lower-case file extension to its format.
var formatExtensions = map[string]Format{
	"txt":  FormatPlainText,
	"pdf":  FormatPDF,
	"docx": FormatWord,
	"xlsx": FormatSpreadsheet,
}

// Formats returns all recognised formats in declaration order.
func Formats() []Format {
	return []Format{FormatPlainText, FormatPDF, FormatWord, FormatSpreadsheet}
}

// IsValid returns true if the format is recognised.
func (f Format) IsValid() bool {
	switch f {
	case FormatPlainText, FormatPDF, FormatWord, FormatSpreadsheet:
		return true
	default:
		return false
	}
}

// Extension returns the canonical file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPlainText:
		return "txt"
	case FormatPDF:
		return "pdf"
	case FormatWord:
		return "docx"
	case FormatSpreadsheet:
		return "xlsx"
	default:
		return ""
	}
}

// String returns the string representation.
func (f Format) String() string {
	switch f {
	case FormatPlainText:
		return "plain-text"
	case FormatPDF:
		return "pdf"
	case FormatWord:
		return "word-processing"
	case FormatSpreadsheet:
		return "spreadsheet"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFromFilename infers the format from the extension suffix of a
// document id or filename. Matching is case-insensitive.
func FormatFromFilename(name string) (Format, error) {
	ext := path.Ext(name)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, name)
	}
	format, ok := formatExtensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return format, nil
}
