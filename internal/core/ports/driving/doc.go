// Package driving declares what the web API, CLI, TUI and MCP server may ask
// of the core: chat turns and summaries, document text, uploads and settings.
//
// internal/core/services provides the implementations.
package driving
