package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ivanglie/kraken-mcp/internal/kraken"
)

// toolResult wraps the rendered report as a single text-content item.
func toolResult(s *kraken.Snapshot) *mcp.CallToolResult {
	return mcp.NewToolResultText(s.Text())
}

// promptResult wraps the rendered report as a single user-role message.
func promptResult(s *kraken.Snapshot) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(
		fmt.Sprintf("Kraken Ticker Information for %s", s.Pair),
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(s.Text())),
		},
	)
}
