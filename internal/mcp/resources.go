package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// ── cvcanvas://designs ─────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"cvcanvas://designs",
		"All Designs",
		mcp.WithMIMEType("application/json"),
	), s.handleDesignsResource)

	// ── cvcanvas://design/current ──────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"cvcanvas://design/current",
		"Open Design Elements",
		mcp.WithMIMEType("application/json"),
	), s.handleCurrentDesignResource)
}

func (s *Server) handleDesignsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	designs, err := s.design.ListDesigns()
	if err != nil {
		return nil, err
	}

	type designSummary struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	var summaries []designSummary
	for _, d := range designs {
		summaries = append(summaries, designSummary{ID: d.ID, Name: d.Name})
	}

	data, _ := json.MarshalIndent(summaries, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "cvcanvas://designs",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleCurrentDesignResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	els, err := s.design.ListElements()
	if err != nil {
		return nil, err
	}

	data, _ := json.MarshalIndent(els, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "cvcanvas://design/current",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
