// Package docx provides the normaliser for Office Open XML word-processing documents.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const (
	// documentPart is the main story of the document. Headers, footers,
	// footnotes and media live in other parts and are never read.
	documentPart = "word/document.xml"

	wordNS         = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	markupCompatNS = "http://schemas.openxmlformats.org/markup-compatibility/2006"
	paragraphBreak = "\n\n"
)

// Normaliser handles DOCX documents.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise extracts the body text of a DOCX document in document order.
func (n *Normaliser) Normalise(content []byte) (string, error) {
	// Open as ZIP archive
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: not a docx container: %v", domain.ErrCorruptInput, err)
	}

	return extractDocumentText(reader)
}

// extractDocumentText extracts text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != documentPart {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: open %s: %v", domain.ErrCorruptInput, documentPart, err)
		}
		defer rc.Close()

		return parseDocumentXML(rc)
	}
	return "", fmt.Errorf("%w: %s missing", domain.ErrCorruptInput, documentPart)
}

// parseDocumentXML walks the document tokens and collects run text.
// Only text inside runs (w:r) counts, so tab stops declared in paragraph
// properties are not mistaken for tab characters.
func parseDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		result strings.Builder
		runs   int
		inText bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", domain.ErrCorruptInput, documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == markupCompatNS && t.Name.Local == "Fallback" {
				// The Choice branch already carries the same text.
				if err := dec.Skip(); err != nil {
					return "", fmt.Errorf("%w: %s: %v", domain.ErrCorruptInput, documentPart, err)
				}
				continue
			}
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "r":
				runs++
			case "t":
				inText = runs > 0
			case "tab":
				if runs > 0 {
					result.WriteByte('\t')
				}
			case "br", "cr":
				if runs > 0 {
					result.WriteByte('\n')
				}
			}

		case xml.EndElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "r":
				if runs > 0 {
					runs--
				}
			case "t":
				inText = false
			case "p":
				result.WriteString(paragraphBreak)
			}

		case xml.CharData:
			if inText {
				result.Write(t)
			}
		}
	}

	return strings.TrimRight(result.String(), "\n"), nil
}
