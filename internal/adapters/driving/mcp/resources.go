package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

const (
	uriScheme         = "docchat://"
	documentURIPrefix = uriScheme + "documents/"
	formatsURI        = uriScheme + "formats"
)

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: documentURIPrefix + "{documentId}",
		Name:        "document-text",
		Description: "Plain text extracted from an uploaded document",
		MIMEType:    "text/plain",
	}, s.handleDocumentTextResource)

	s.server.AddResource(&mcp.Resource{
		URI:         formatsURI,
		Name:        "formats",
		Description: "File extensions DocChat can extract text from",
		MIMEType:    "text/plain",
	}, s.handleFormatsResource)
}

func (s *Server) handleDocumentTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	text, err := s.ports.Document.GetText(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("getting document text: %w", toolError(err))
	}
	return textResource(req.Params.URI, text), nil
}

// handleFormatsResource lists one ".ext  kind" line per decodable format.
func (s *Server) handleFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var b strings.Builder
	for _, f := range domain.Formats() {
		fmt.Fprintf(&b, ".%-5s %s\n", f.Extension(), f)
	}
	return textResource(req.Params.URI, b.String()), nil
}

func textResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}
}

// extractDocumentID returns the unescaped id from docchat://documents/{id},
// or "" when the URI does not name exactly one document.
func extractDocumentID(uri string) string {
	rest, ok := strings.CutPrefix(uri, documentURIPrefix)
	if !ok {
		return ""
	}
	id, err := url.PathUnescape(rest)
	if err != nil || strings.Contains(id, "/") {
		return ""
	}
	return id
}
