// ABOUTME: MCP resources exposing the state snapshot and individual notes.
// ABOUTME: Notes are served as markdown, the state as JSON.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/notepad/internal/models"
	"github.com/harper/notepad/internal/notepad"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	stateURI        = "notepad://state"
	notePrefixURI   = "notepad://note/"
	noteURITemplate = notePrefixURI + "{id}"
)

func (s *Server) registerResources() {
	s.server.AddResource(
		&mcp.Resource{
			URI:         stateURI,
			Name:        "State",
			Description: "Current notes and editor state",
			MIMEType:    "application/json",
		},
		s.handleReadState,
	)

	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: noteURITemplate,
			Name:        "Note",
			Description: "Access individual notes by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadNote,
	)
}

func (s *Server) handleReadState(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var state models.State
	s.withStore(func(st *notepad.Store) {
		state = st.State()
	})

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

func (s *Server) handleReadNote(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	raw, ok := strings.CutPrefix(req.Params.URI, notePrefixURI)
	if !ok || raw == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	var state models.State
	s.withStore(func(st *notepad.Store) {
		state = st.State()
	})

	id, err := resolveID(state, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	note, found := state.Find(id)
	if !found {
		return nil, fmt.Errorf("failed to get note: %w", models.ErrNoteNotFound)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     noteMarkdown(note),
			},
		},
	}, nil
}

func noteMarkdown(note models.Note) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", note.Title))
	sb.WriteString(fmt.Sprintf("**Updated:** %s\n\n", note.FormattedDate()))
	sb.WriteString(note.Content)
	return sb.String()
}
