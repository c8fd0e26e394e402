// Package driven declares the infrastructure the core calls out to:
//
//   - ObjectStore (and the narrower ByteFetcher) for uploaded bytes and
//     signed URLs
//   - ModelBackend for streaming chat completions
//   - Normaliser for turning one document format into plain text
//   - TextCache for extracted text keyed by document id
//   - ConfigStore for raw settings
//
// Adapters under internal/adapters/driven and internal/normalisers implement
// them. This package may import domain only.
package driven
