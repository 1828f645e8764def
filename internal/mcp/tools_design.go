package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerDesignTools() {
	// ── new_design ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("new_design",
		mcp.WithDescription("Create and open a blank CV design"),
		mcp.WithString("name",
			mcp.Description("Name for the new design"),
			mcp.Required(),
		),
	), s.handleNewDesign)

	// ── seed_design ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("seed_design",
		mcp.WithDescription("Create a design pre-populated from structured resume JSON (personal_info, sections)"),
		mcp.WithString("name",
			mcp.Description("Name for the new design"),
			mcp.Required(),
		),
		mcp.WithString("resumeJson",
			mcp.Description("Resume data as JSON"),
			mcp.Required(),
		),
		mcp.WithString("colorScheme",
			mcp.Description("Color scheme for headings (e.g. 'blue', optional)"),
		),
	), s.handleSeedDesign)

	// ── open_design ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("open_design",
		mcp.WithDescription("Open a saved design for editing. Unsaved changes to the current design are discarded."),
		mcp.WithString("designId",
			mcp.Description("ID of the design to open"),
			mcp.Required(),
		),
	), s.handleOpenDesign)

	// ── save_design ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("save_design",
		mcp.WithDescription("Persist the open design's current document"),
	), s.handleSaveDesign)

	// ── list_designs ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_designs",
		mcp.WithDescription("List all saved designs, most recently updated first"),
	), s.handleListDesigns)

	// ── delete_design ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_design",
		mcp.WithDescription("🛑 DESTRUCTIVE: Permanently delete a saved design and its snapshots."),
		mcp.WithString("designId",
			mcp.Description("ID of the design to delete"),
			mcp.Required(),
		),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteDesign)

	// ── snapshot_design ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("snapshot_design",
		mcp.WithDescription("Record a point-in-time snapshot of the open design"),
		mcp.WithString("label",
			mcp.Description("Label for the snapshot (optional)"),
		),
	), s.handleSnapshotDesign)

	// ── list_snapshots ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_snapshots",
		mcp.WithDescription("List the open design's snapshots, oldest first"),
	), s.handleListSnapshots)

	// ── restore_snapshot ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("restore_snapshot",
		mcp.WithDescription("🛑 DESTRUCTIVE: Replace the open design's canvas with its most recent snapshot."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleRestoreSnapshot)
}

func (s *Server) handleNewDesign(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	rec, err := s.design.NewDesign(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("new design: %w", err)
	}
	return jsonResult(rec)
}

func (s *Server) handleSeedDesign(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	resumeJSON := req.GetString("resumeJson", "")
	if name == "" || resumeJSON == "" {
		return nil, fmt.Errorf("name and resumeJson are required")
	}
	colorScheme := req.GetString("colorScheme", "")
	rec, err := s.design.NewFromResume(ctx, name, resumeJSON, colorScheme)
	if err != nil {
		return nil, fmt.Errorf("seed design: %w", err)
	}
	return jsonResult(rec)
}

func (s *Server) handleOpenDesign(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	designID := req.GetString("designId", "")
	if designID == "" {
		return nil, fmt.Errorf("designId is required")
	}
	if err := s.design.OpenDesign(ctx, designID); err != nil {
		return nil, fmt.Errorf("open design: %w", err)
	}
	return textResult(fmt.Sprintf("Design %s opened", designID)), nil
}

func (s *Server) handleSaveDesign(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.design.SaveDesign(ctx); err != nil {
		return nil, err
	}
	id, _ := s.design.OpenDesignID()
	return textResult(fmt.Sprintf("Design %s saved", id)), nil
}

func (s *Server) handleListDesigns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	designs, err := s.design.ListDesigns()
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	type designSummary struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		UpdatedAt string `json:"updatedAt"`
	}
	summaries := []designSummary{}
	for _, d := range designs {
		summaries = append(summaries, designSummary{
			ID:        d.ID,
			Name:      d.Name,
			UpdatedAt: d.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return jsonResult(summaries)
}

func (s *Server) handleDeleteDesign(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	designID := req.GetString("designId", "")
	if designID == "" {
		return nil, fmt.Errorf("designId is required")
	}
	if err := s.design.DeleteDesign(ctx, designID); err != nil {
		return nil, fmt.Errorf("delete design: %w", err)
	}
	return textResult(fmt.Sprintf("Design %s deleted", designID)), nil
}

func (s *Server) handleSnapshotDesign(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label := req.GetString("label", "manual")
	snap, err := s.design.Snapshot(ctx, label)
	if err != nil {
		return nil, fmt.Errorf("snapshot design: %w", err)
	}
	return jsonResult(map[string]string{
		"snapshotId": snap.ID,
		"label":      snap.Label,
	})
}

func (s *Server) handleListSnapshots(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snaps, err := s.design.ListSnapshots()
	if err != nil {
		return nil, err
	}
	type snapSummary struct {
		ID        string `json:"id"`
		Label     string `json:"label"`
		CreatedAt string `json:"createdAt"`
	}
	summaries := []snapSummary{}
	for _, sn := range snaps {
		summaries = append(summaries, snapSummary{
			ID:        sn.ID,
			Label:     sn.Label,
			CreatedAt: sn.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return jsonResult(summaries)
}

func (s *Server) handleRestoreSnapshot(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.design.RestoreLatestSnapshot(ctx); err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}
	return textResult("Latest snapshot restored"), nil
}
