// Package plaintext provides the normaliser for UTF-8 text documents.
package plaintext

import "github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise returns the bytes as a UTF-8 string without any transformation.
func (n *Normaliser) Normalise(content []byte) (string, error) {
	return string(content), nil
}
