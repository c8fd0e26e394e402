// Package domain holds DocChat's entities and errors:
//
//   - Document: an uploaded document and its extracted text
//   - Format: the closed set of document formats that can be decoded
//   - Message and Reply: conversation turns sent to and returned by the model
//   - AppSettings: typed configuration with defaults
//
// Sentinel errors carry a user-facing wording via UserMessage, which the web
// API, CLI, TUI and MCP server all show instead of internal detail.
//
// domain imports only the standard library; every other package depends
// on it.
package domain
