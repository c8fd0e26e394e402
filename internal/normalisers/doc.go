// Package normalisers turns uploaded document bytes into plain text.
//
// Each supported format has its own sub-package with a Normaliser that knows
// one container structure. The Decoder in this package is the single entry
// point: it dispatches on domain.Format with a closed switch and isolates each
// normaliser so a failure in one format never leaks into another.
package normalisers
