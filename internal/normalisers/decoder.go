package normalisers

import (
	"fmt"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
	"github.com/topgunprogrammer/DocChat-AI/internal/normalisers/docx"
	"github.com/topgunprogrammer/DocChat-AI/internal/normalisers/pdf"
	"github.com/topgunprogrammer/DocChat-AI/internal/normalisers/plaintext"
	"github.com/topgunprogrammer/DocChat-AI/internal/normalisers/xlsx"
)

// Ensure Decoder implements the interface.
var _ driven.FormatDecoder = (*Decoder)(nil)

// Decoder dispatches document bytes to the normaliser for their format.
type Decoder struct {
	plaintext driven.Normaliser
	pdf       driven.Normaliser
	docx      driven.Normaliser
	xlsx      driven.Normaliser
}

// NewDecoder creates a decoder wired with the built-in normalisers.
func NewDecoder() *Decoder {
	return &Decoder{
		plaintext: plaintext.New(),
		pdf:       pdf.New(),
		docx:      docx.New(),
		xlsx:      xlsx.New(),
	}
}

// Decode extracts plain text from content according to format.
func (d *Decoder) Decode(content []byte, format domain.Format) (text string, err error) {
	n, err := d.normaliser(format)
	if err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("%s normaliser panicked: %v", format, r)
			text = ""
			err = fmt.Errorf("%w: %s normaliser failed: %v", domain.ErrCorruptInput, format, r)
		}
	}()

	logger.Debug("decoding %d bytes as %s", len(content), format)
	return n.Normalise(content)
}

// normaliser selects the normaliser for format.
func (d *Decoder) normaliser(format domain.Format) (driven.Normaliser, error) {
	switch format {
	case domain.FormatPlainText:
		return d.plaintext, nil
	case domain.FormatPDF:
		return d.pdf, nil
	case domain.FormatWord:
		return d.docx, nil
	case domain.FormatSpreadsheet:
		return d.xlsx, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
}

// defaultDecoder backs the package-level Decode.
var defaultDecoder = NewDecoder()

// Decode extracts plain text using the built-in normalisers.
func Decode(content []byte, format domain.Format) (string, error) {
	return defaultDecoder.Decode(content, format)
}
