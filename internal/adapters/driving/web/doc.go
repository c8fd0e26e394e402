// Package web exposes the chat, upload and document services over HTTP.
//
// Routes:
//
//	GET  /health
//	POST /upload
//	GET  /documents/:key
//	GET  /documents/:key/text
//	GET  /files/:key
//	POST /api/chat
//	POST /api/documents/:key/chat
//	POST /api/documents/:key/summarize
//
// Failures are answered with {"error": "<message>"} where the message comes
// from domain.UserMessage and the status from the error kind.
package web
