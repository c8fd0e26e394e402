package driven

// TextCache holds extracted document text keyed by document id.
// Implementations must be safe for concurrent use.
type TextCache interface {
	// Get returns the cached text and whether it was present.
	Get(documentID string) (string, bool)

	// Add stores text for a document id.
	Add(documentID string, text string)

	// Len returns the number of cached entries.
	Len() int
}
