package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Storage adapters return it; the document service translates it.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the model backend is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// Extraction Errors.

	// ErrUnsupportedFormat indicates the document format is not one of
	// plain text, PDF, DOCX or XLSX.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrCorruptInput indicates the payload cannot be parsed as its declared format.
	ErrCorruptInput = errors.New("corrupt input")

	// ErrDocumentNotFound indicates the byte fetcher has no object for the document id.
	ErrDocumentNotFound = errors.New("document not found")

	// Conversation Errors.

	// ErrUpstreamStream indicates the model stream failed, timed out or was cancelled.
	ErrUpstreamStream = errors.New("upstream stream error")

	// ErrNoDocument indicates an operation needs a document but none was given.
	ErrNoDocument = errors.New("no document")
)

// UserMessage returns the end-user facing message for an error.
// Each error kind has its own message so the UI never shows a bare failure.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedFormat):
		return "This file type is not supported. Upload a .txt, .pdf, .docx or .xlsx file."
	case errors.Is(err, ErrCorruptInput):
		return "The document could not be read. The file may be damaged or not match its extension."
	case errors.Is(err, ErrDocumentNotFound), errors.Is(err, ErrNotFound):
		return "The document could not be found. Try uploading it again."
	case errors.Is(err, ErrUpstreamStream):
		return "The assistant stopped responding before finishing. Please try again."
	case errors.Is(err, ErrNoDocument):
		return "No document uploaded."
	case errors.Is(err, ErrLLMUnavailable):
		return "The assistant is not configured. Check the llm settings."
	case errors.Is(err, ErrInvalidInput):
		return "The request was not valid."
	default:
		return "Something went wrong while handling the request."
	}
}
