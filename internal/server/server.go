// Package server registers the Kraken ticker pipeline as an MCP tool and
// prompt and attaches a stdio or streamable-HTTP transport.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ivanglie/kraken-mcp/internal/kraken"
)

const (
	serverName    = "kraken"
	serverVersion = "0.1.0"

	pairDescription = "Trading pair (e.g., BTCUSD, ETHUSD)"
)

// tickerService is the pipeline behind both MCP surfaces.
type tickerService interface {
	Ticker(ctx context.Context, pair string) (*kraken.Snapshot, error)
}

// Server exposes the ticker pipeline over MCP.
type Server struct {
	mcp    *server.MCPServer
	ticker tickerService
}

// New creates a Server backed by the given Kraken client and registers the
// get_ticker tool and kraken-ticker prompt.
func New(ticker tickerService) *Server {
	s := &Server{
		mcp: server.NewMCPServer(serverName, serverVersion,
			server.WithToolCapabilities(true),
			server.WithPromptCapabilities(true),
		),
		ticker: ticker,
	}

	s.mcp.AddTool(
		mcp.NewTool("get_ticker",
			mcp.WithDescription("Get ticker information for a trading pair from Kraken"),
			mcp.WithString("pair",
				mcp.Required(),
				mcp.Description(pairDescription),
			),
		),
		s.handleGetTicker,
	)

	s.mcp.AddPrompt(
		mcp.NewPrompt("kraken-ticker",
			mcp.WithPromptDescription("Get ticker information for a trading pair from Kraken"),
			mcp.WithArgument("pair",
				mcp.ArgumentDescription(pairDescription),
				mcp.RequiredArgument(),
			),
		),
		s.handleTickerPrompt,
	)

	return s
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// ServeHTTP blocks serving MCP over stateless streamable HTTP on addr.
func (s *Server) ServeHTTP(addr string) error {
	return server.NewStreamableHTTPServer(s.mcp, server.WithStateLess(true)).Start(addr)
}

func (s *Server) handleGetTicker(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pair, err := req.RequireString("pair")
	if err != nil || pair == "" {
		return nil, &kraken.UsageError{Argument: "pair"}
	}

	snapshot, err := s.ticker.Ticker(ctx, pair)
	if err != nil {
		return nil, err
	}

	return toolResult(snapshot), nil
}

func (s *Server) handleTickerPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	pair, ok := req.Params.Arguments["pair"]
	if !ok || pair == "" {
		return nil, &kraken.UsageError{Argument: "pair"}
	}

	snapshot, err := s.ticker.Ticker(ctx, pair)
	if err != nil {
		return nil, err
	}

	return promptResult(snapshot), nil
}
