package driven

import "github.com/topgunprogrammer/DocChat-AI/internal/core/domain"

// Normaliser decodes the bytes of one document format into plain text.
// Each normaliser is pure: the same bytes always yield the same text.
type Normaliser interface {
	// Normalise returns the extracted text.
	// It fails with domain.ErrCorruptInput when content is not valid for the format.
	Normalise(content []byte) (string, error)
}

// FormatDecoder dispatches document bytes to the normaliser for their format.
type FormatDecoder interface {
	// Decode returns the extracted text.
	// It fails with domain.ErrUnsupportedFormat for an unrecognised format and
	// with domain.ErrCorruptInput when content cannot be parsed.
	Decode(content []byte, format domain.Format) (string, error)
}
