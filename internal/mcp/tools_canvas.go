package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"cvcanvas/internal/domain"
)

func (s *Server) registerCanvasTools() {
	s.mcp.AddTool(mcp.NewTool("add_element",
		mcp.WithDescription("Add a text, rectangle, or circle element to the open design. The new element is placed on top and becomes the selection."),
		mcp.WithString("type", mcp.Description("Element type: text, rectangle, circle"), mcp.Required()),
		mcp.WithNumber("x", mcp.Description("X position (circle: center X)"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Y position (circle: center Y)"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("Width (rectangle; text: wrap width, 0 = single line)")),
		mcp.WithNumber("height", mcp.Description("Height (rectangle)")),
		mcp.WithNumber("radius", mcp.Description("Radius (circle)")),
		mcp.WithString("text", mcp.Description("Text content (text elements)")),
		mcp.WithString("fill", mcp.Description("Fill color hex (e.g. #2563eb)")),
		mcp.WithNumber("fontSize", mcp.Description("Font size (text elements)")),
		mcp.WithString("fontFamily", mcp.Description("Font family (text elements)")),
	), s.handleAddElement)

	s.mcp.AddTool(mcp.NewTool("select_element",
		mcp.WithDescription("Select an element by ID. Selecting replaces any previous selection."),
		mcp.WithString("elementId", mcp.Description("Element ID"), mcp.Required()),
	), s.handleSelectElement)

	s.mcp.AddTool(mcp.NewTool("clear_selection",
		mcp.WithDescription("Deselect the selected element"),
	), s.handleClearSelection)

	s.mcp.AddTool(mcp.NewTool("move_element",
		mcp.WithDescription("Move the selected element to new coordinates"),
		mcp.WithNumber("x", mcp.Description("New X position"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("New Y position"), mcp.Required()),
	), s.handleMoveElement)

	s.mcp.AddTool(mcp.NewTool("resize_element",
		mcp.WithDescription("Resize the selected element. Boxes smaller than 5x5 are rejected. Circles use the smaller side as diameter; text elements take the width as wrap width."),
		mcp.WithNumber("width", mcp.Description("New width"), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("New height"), mcp.Required()),
	), s.handleResizeElement)

	s.mcp.AddTool(mcp.NewTool("set_element_property",
		mcp.WithDescription("Set one property on the selected element. Numeric: x, y, width, height, radius, fontSize. String: text, fill, fontFamily."),
		mcp.WithString("field", mcp.Description("Property name"), mcp.Required()),
		mcp.WithString("stringValue", mcp.Description("Value for string properties")),
		mcp.WithNumber("numberValue", mcp.Description("Value for numeric properties")),
	), s.handleSetElementProperty)

	s.mcp.AddTool(mcp.NewTool("delete_element",
		mcp.WithDescription("🛑 DESTRUCTIVE: Remove the selected element from the canvas."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteElement)

	s.mcp.AddTool(mcp.NewTool("list_elements",
		mcp.WithDescription("List the open design's elements in paint order with their IDs, types, and positions"),
	), s.handleListElements)

	s.mcp.AddTool(mcp.NewTool("set_zoom",
		mcp.WithDescription("Set the viewport zoom level. Values are clamped to [0.1, 3.0]."),
		mcp.WithNumber("zoom", mcp.Description("Zoom factor (1.0 = 100%)"), mcp.Required()),
	), s.handleSetZoom)

	s.mcp.AddTool(mcp.NewTool("toggle_grid",
		mcp.WithDescription("Show or hide the alignment grid overlay"),
		mcp.WithBoolean("show", mcp.Description("true to show the grid"), mcp.Required()),
	), s.handleToggleGrid)

	s.mcp.AddTool(mcp.NewTool("export_png",
		mcp.WithDescription("Export the open design as a high-resolution PNG (2x, no grid or selection chrome). Returns base64 image data."),
	), s.handleExportPNG)

	s.mcp.AddTool(mcp.NewTool("render_preview",
		mcp.WithDescription("Render the current viewport as PNG, including grid and selection frame. Returns base64 image data."),
	), s.handleRenderPreview)
}

func (s *Server) handleAddElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	kind := req.GetString("type", "")
	switch domain.ElementType(kind) {
	case domain.ElementText, domain.ElementRectangle, domain.ElementCircle:
	default:
		return nil, fmt.Errorf("unknown element type %q", kind)
	}

	el := domain.Element{
		Type: domain.ElementType(kind),
		X:    floatArg(args, "x"),
		Y:    floatArg(args, "y"),
	}
	el.Width = floatArg(args, "width")
	el.Height = floatArg(args, "height")
	el.Radius = floatArg(args, "radius")
	el.FontSize = floatArg(args, "fontSize")
	if text, ok := args["text"].(string); ok {
		el.Text = text
	}
	if fill, ok := args["fill"].(string); ok {
		el.Fill = fill
	}
	if family, ok := args["fontFamily"].(string); ok {
		el.FontFamily = family
	}

	stored, err := s.design.AddElement(ctx, el)
	if err != nil {
		return nil, fmt.Errorf("add element: %w", err)
	}
	return jsonResult(stored)
}

func (s *Server) handleSelectElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	elementID := req.GetString("elementId", "")
	if elementID == "" {
		return nil, fmt.Errorf("elementId is required")
	}
	if err := s.design.SelectElement(ctx, elementID); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Element %s selected", elementID)), nil
}

func (s *Server) handleClearSelection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.design.ClearSelection(ctx); err != nil {
		return nil, err
	}
	return textResult("Selection cleared"), nil
}

func (s *Server) handleMoveElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	x := floatArg(args, "x")
	y := floatArg(args, "y")
	if err := s.design.MoveElement(ctx, x, y); err != nil {
		return nil, fmt.Errorf("move element: %w", err)
	}
	return textResult(fmt.Sprintf("Moved to (%.1f, %.1f)", x, y)), nil
}

func (s *Server) handleResizeElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	w := floatArg(args, "width")
	h := floatArg(args, "height")
	if err := s.design.ResizeElement(ctx, w, h); err != nil {
		return nil, fmt.Errorf("resize element: %w", err)
	}
	return textResult(fmt.Sprintf("Resized to %.1fx%.1f", w, h)), nil
}

func (s *Server) handleSetElementProperty(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	field := req.GetString("field", "")
	if field == "" {
		return nil, fmt.Errorf("field is required")
	}

	var value any
	if sv, ok := args["stringValue"].(string); ok {
		value = sv
	} else if nv, ok := args["numberValue"].(float64); ok {
		value = nv
	} else {
		return nil, fmt.Errorf("stringValue or numberValue is required")
	}

	if err := s.design.SetElementProperty(ctx, field, value); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Property %s updated", field)), nil
}

func (s *Server) handleDeleteElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.design.DeleteElement(ctx); err != nil {
		return nil, fmt.Errorf("delete element: %w", err)
	}
	return textResult("Element deleted"), nil
}

func (s *Server) handleListElements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	els, err := s.design.ListElements()
	if err != nil {
		return nil, err
	}
	return jsonResult(els)
}

func (s *Server) handleSetZoom(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	applied, err := s.design.SetZoom(ctx, floatArg(args, "zoom"))
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Zoom set to %.2f", applied)), nil
}

func (s *Server) handleToggleGrid(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	show, err := req.RequireBool("show")
	if err != nil {
		return nil, err
	}
	if err := s.design.SetGrid(ctx, show); err != nil {
		return nil, err
	}
	if show {
		return textResult("Grid shown"), nil
	}
	return textResult("Grid hidden"), nil
}

func (s *Server) handleExportPNG(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := s.design.ExportPNG()
	if err != nil {
		return nil, fmt.Errorf("export png: %w", err)
	}
	return imageResult(data), nil
}

func (s *Server) handleRenderPreview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := s.design.RenderPNG()
	if err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	return imageResult(data), nil
}
