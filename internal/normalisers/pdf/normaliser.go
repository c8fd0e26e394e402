// Package pdf provides the normaliser for PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// pageBreak separates the text of consecutive pages.
const pageBreak = "\n\n"

// Normaliser handles PDF documents.
type Normaliser struct{}

// New creates a new PDF normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise extracts the text of every page in page order.
func (n *Normaliser) Normalise(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCorruptInput, err)
	}

	total := reader.NumPage()
	if total == 0 {
		return "", fmt.Errorf("%w: pdf has no pages", domain.ErrCorruptInput)
	}

	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		text, err := pageText(reader.Page(i))
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", domain.ErrCorruptInput, i, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, pageBreak), nil
}

// pageText returns the plain text of one page.
// Font names are page-scoped resources, so each page resolves its own.
func pageText(page pdf.Page) (string, error) {
	if page.V.IsNull() {
		return "", nil
	}

	fonts := make(map[string]*pdf.Font)
	for _, name := range page.Fonts() {
		font := page.Font(name)
		fonts[name] = &font
	}

	text, err := page.GetPlainText(fonts)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\n"), nil
}
