// ABOUTME: MCP prompts for common note editing workflows.
// ABOUTME: Walks agents through the select/edit/commit tool sequence.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "summarize-note",
		Description: "Generate a summary of an existing note and prepend it",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "note_id",
				Description: "ID of the note to summarize",
				Required:    true,
			},
		},
	}, s.getSummarizeNotePrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "draft-note",
		Description: "Draft a new note on a topic",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "topic",
				Description: "What the note is about",
				Required:    false,
			},
		},
	}, s.getDraftNotePrompt)
}

func (s *Server) getSummarizeNotePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	noteID, ok := req.Params.Arguments["note_id"]
	if !ok || noteID == "" {
		return nil, fmt.Errorf("note_id argument is required")
	}

	template := fmt.Sprintf(`Please summarize the note with ID: %s

1. Use the select_note tool to open the note; the result contains its title and content
2. Read and analyze the note
3. Write a concise summary highlighting:
   - Main topic or theme
   - Key points or takeaways
   - Important details or action items
4. Use the set_content tool to put a "Summary" section above the existing content
5. Call clear_selection to commit the edit. Edits are lost if you select another note first`, noteID)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) getDraftNotePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic, ok := req.Params.Arguments["topic"]
	if !ok || topic == "" {
		topic = "anything on my mind"
	}

	template := fmt.Sprintf(`Draft a short note about %s.

1. Call new_note to create and open an empty note
2. Call set_title with a short title
3. Call set_content with the body
4. Call clear_selection to commit the note`, topic)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
