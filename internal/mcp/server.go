// ABOUTME: MCP server exposing the note store to AI agents.
// ABOUTME: Provides tools, resources, and prompts over stdio.

package mcp

import (
	"context"
	"sync"

	"github.com/harper/notepad/internal/notepad"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Server wraps a single store. The SDK may run handlers concurrently, so
// every store access goes through mu.
type Server struct {
	server *mcp.Server
	log    zerolog.Logger

	mu    sync.Mutex
	store *notepad.Store
}

func NewServer(store *notepad.Store, log zerolog.Logger) *Server {
	s := &Server{store: store, log: log}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "notepad",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	s.log.Info().Msg("mcp server listening on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// withStore runs fn while holding the store lock.
func (s *Server) withStore(fn func(*notepad.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.store)
}
