// ABOUTME: MCP tools mapping one-to-one onto note store transitions.
// ABOUTME: Each call returns the resulting state snapshot as JSON.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/harper/notepad/internal/models"
	"github.com/harper/notepad/internal/notepad"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var emptySchema = json.RawMessage(`{"type": "object", "properties": {}}`)

var idSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"id": {"type": "string", "description": "Note ID or prefix (6+ chars)"}
	},
	"required": ["id"]
}`)

var textSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"text": {"type": "string", "description": "Replacement buffer text"}
	},
	"required": ["text"]
}`)

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "new_note",
		Description: "Create an empty note and select it for editing",
		InputSchema: emptySchema,
	}, s.handleNewNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "select_note",
		Description: "Load a note into the editor. An unknown ID clears the selection",
		InputSchema: idSchema,
	}, s.handleSelectNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "update_note",
		Description: "Commit a title and content directly to a note. A blank title becomes \"New Note\"",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"title": {"type": "string", "description": "New title"},
				"content": {"type": "string", "description": "New content"}
			},
			"required": ["id"]
		}`),
	}, s.handleUpdateNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note",
		InputSchema: idSchema,
	}, s.handleDeleteNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "clear_selection",
		Description: "Commit the editor buffers to the selected note and close the editor",
		InputSchema: emptySchema,
	}, s.handleClearSelection)

	s.server.AddTool(&mcp.Tool{
		Name:        "set_title",
		Description: "Replace the editor title buffer (not committed until clear_selection)",
		InputSchema: textSchema,
	}, s.textHandler(func(st *notepad.Store, text string) { st.SetTitle(text) }))

	s.server.AddTool(&mcp.Tool{
		Name:        "set_content",
		Description: "Replace the editor content buffer (not committed until clear_selection)",
		InputSchema: textSchema,
	}, s.textHandler(func(st *notepad.Store, text string) { st.SetContent(text) }))

	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_bold",
		Description: "Toggle bold styling in the editor",
		InputSchema: emptySchema,
	}, s.simpleHandler(func(st *notepad.Store) { st.ToggleBold() }))

	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_italic",
		Description: "Toggle italic styling in the editor",
		InputSchema: emptySchema,
	}, s.simpleHandler(func(st *notepad.Store) { st.ToggleItalic() }))

	s.server.AddTool(&mcp.Tool{
		Name:        "change_font_size",
		Description: "Grow or shrink the editor font by 2sp, clamped to 12-30",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"increase": {"type": "boolean", "description": "true to grow, false to shrink"}
			},
			"required": ["increase"]
		}`),
	}, s.handleChangeFontSize)

	s.server.AddTool(&mcp.Tool{
		Name:        "reset_style",
		Description: "Clear bold and italic styling; font size is kept",
		InputSchema: emptySchema,
	}, s.simpleHandler(func(st *notepad.Store) { st.ResetStyle() }))

	s.server.AddTool(&mcp.Tool{
		Name:        "get_state",
		Description: "Get the full state: notes in display order plus the editor",
		InputSchema: emptySchema,
	}, s.handleGetState)

	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List notes, most recently modified first",
		InputSchema: emptySchema,
	}, s.handleListNotes)
}

// Tool handlers.
func (s *Server) handleNewNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var state models.State
	s.withStore(func(st *notepad.Store) {
		st.AddNewNote()
		state = st.State()
	})
	return stateResult(state)
}

func (s *Server) handleSelectNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	return s.withNoteID(params.ID, func(st *notepad.Store, id uuid.UUID) {
		st.SelectNote(id)
	})
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID      string  `json:"id"`
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	return s.withNoteID(params.ID, func(st *notepad.Store, id uuid.UUID) {
		// Omitted fields keep their committed value.
		current, _ := st.State().Find(id)
		title, content := current.Title, current.Content
		if params.Title != nil {
			title = *params.Title
		}
		if params.Content != nil {
			content = *params.Content
		}
		st.UpdateNote(id, title, content)
	})
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	return s.withNoteID(params.ID, func(st *notepad.Store, id uuid.UUID) {
		st.DeleteNote(id)
	})
}

func (s *Server) handleClearSelection(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var state models.State
	s.withStore(func(st *notepad.Store) {
		st.ClearSelectedNote()
		state = st.State()
	})
	return stateResult(state)
}

func (s *Server) handleChangeFontSize(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Increase bool `json:"increase"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return nil, err
	}

	var state models.State
	s.withStore(func(st *notepad.Store) {
		st.ChangeFontSize(params.Increase)
		state = st.State()
	})
	return stateResult(state)
}

func (s *Server) handleGetState(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var state models.State
	s.withStore(func(st *notepad.Store) {
		state = st.State()
	})
	return stateResult(state)
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var state models.State
	s.withStore(func(st *notepad.Store) {
		state = st.State()
	})

	type listItem struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Updated  string `json:"updated"`
		Selected bool   `json:"selected,omitempty"`
	}
	items := make([]listItem, 0, len(state.Notes))
	for _, n := range state.Notes {
		items = append(items, listItem{
			ID:       n.ID.String(),
			Title:    n.Title,
			Updated:  n.FormattedDate(),
			Selected: n.ID == state.Editor.SelectedID,
		})
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, err
	}
	return textResult(string(data)), nil
}

func (s *Server) textHandler(fn func(*notepad.Store, string)) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var params struct {
			Text string `json:"text"`
		}
		if err := decodeArgs(req, &params); err != nil {
			return nil, err
		}

		var state models.State
		s.withStore(func(st *notepad.Store) {
			fn(st, params.Text)
			state = st.State()
		})
		return stateResult(state)
	}
}

func (s *Server) simpleHandler(fn func(*notepad.Store)) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var state models.State
		s.withStore(func(st *notepad.Store) {
			fn(st)
			state = st.State()
		})
		return stateResult(state)
	}
}

// withNoteID resolves raw to a note id and applies fn. A well-formed UUID is
// passed through untouched so the store's unknown-id rules apply; a prefix
// that does not resolve is reported as a tool error.
func (s *Server) withNoteID(raw string, fn func(*notepad.Store, uuid.UUID)) (*mcp.CallToolResult, error) {
	var (
		state  models.State
		lookup error
	)
	s.withStore(func(st *notepad.Store) {
		id, err := resolveID(st.State(), raw)
		if err != nil {
			lookup = err
			return
		}
		fn(st, id)
		state = st.State()
	})
	if lookup != nil {
		return errorResult(fmt.Sprintf("failed to find note: %v", lookup)), nil
	}
	return stateResult(state)
}

func resolveID(state models.State, raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}
	note, err := state.FindByPrefix(raw)
	if err != nil {
		return uuid.Nil, err
	}
	return note.ID, nil
}

func decodeArgs(req *mcp.CallToolRequest, v any) error {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return nil
	}
	return json.Unmarshal(req.Params.Arguments, v)
}

func stateResult(state models.State) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, err
	}
	return textResult(string(data)), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: true,
	}
}
