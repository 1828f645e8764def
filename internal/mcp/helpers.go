package mcpserver

import (
	"encoding/base64"

	"github.com/mark3labs/mcp-go/mcp"
)

// floatArg reads a numeric tool argument, returning 0 when absent.
func floatArg(args map[string]any, name string) float64 {
	v, _ := args[name].(float64)
	return v
}

// imageResult wraps PNG bytes as a base64 image tool result.
func imageResult(pngData []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(pngData),
				MIMEType: "image/png",
			},
		},
	}
}
