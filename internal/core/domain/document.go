package domain

// Document is an uploaded document and, once extracted, its text.
// Text never changes after the first extraction.
type Document struct {
	// ID is the storage key assigned at upload time (e.g. "<uuid>-report.pdf").
	ID string

	// Format is inferred from the ID's extension.
	Format Format

	// Text is the extracted plain text.
	Text string
}

// Upload is the result of storing a new document.
type Upload struct {
	// Key is the document id under which the bytes were stored.
	Key string `json:"key"`

	// URL is a time-limited link for reading the stored bytes.
	URL string `json:"url"`
}
