// ABOUTME: Run command replaying a YAML script of store transitions.
// ABOUTME: Prints the final snapshot so sessions can be scripted and diffed.

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/harper/notepad/internal/models"
	"github.com/harper/notepad/internal/notepad"
	"github.com/harper/notepad/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const selectedRef = "$selected"

var errNoSelection = errors.New("no note is selected")

// Script is a sequence of store transitions.
type Script struct {
	Steps []Step `yaml:"steps" validate:"required,dive"`
}

// Step is one transition. Note references are id prefixes, "$selected" or
// "$N" for the N-th note (from 0) in the current order.
type Step struct {
	Op      string  `yaml:"op" validate:"required,oneof=new select update delete clear title content bold italic bigger smaller reset"`
	Note    string  `yaml:"note,omitempty" validate:"required_if=Op select,required_if=Op update,required_if=Op delete"`
	Title   *string `yaml:"title,omitempty"`
	Content *string `yaml:"content,omitempty"`
	Text    string  `yaml:"text,omitempty"`
}

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Replay a script of edits",
	Long: `Apply a YAML script of transitions to the store and print the result.

Example script:

  steps:
    - op: new
    - op: title
      text: Groceries
    - op: content
      text: eggs, milk
    - op: clear
    - op: update
      note: $0
      title: Shopping`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		script, err := loadScript(args[0])
		if err != nil {
			return err
		}

		for i, step := range script.Steps {
			if err := applyStep(store, step); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
			}
			logger.Debug().Int("step", i+1).Str("op", step.Op).Msg("applied step")
		}

		out := cmd.OutOrStdout()
		switch format {
		case "text":
			state := store.State()
			fmt.Fprint(out, ui.FormatNoteList(state))
			fmt.Fprint(out, ui.Separator())
			fmt.Fprint(out, ui.FormatEditorStatus(state))
			return nil
		case "yaml":
			return yaml.NewEncoder(out).Encode(store.State())
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return parseScript(data)
}

func parseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := validator.New().Struct(script); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &script, nil
}

func applyStep(s *notepad.Store, step Step) error {
	switch step.Op {
	case "new":
		s.AddNewNote()
	case "select", "update", "delete":
		id, err := resolveNote(s.State(), step.Note)
		if err != nil {
			return err
		}
		switch step.Op {
		case "select":
			s.SelectNote(id)
		case "delete":
			s.DeleteNote(id)
		default:
			// An unknown id leaves title and content empty; the store ignores it.
			note, _ := s.State().Find(id)
			title, content := note.Title, note.Content
			if step.Title != nil {
				title = *step.Title
			}
			if step.Content != nil {
				content = *step.Content
			}
			s.UpdateNote(id, title, content)
		}
	case "clear":
		s.ClearSelectedNote()
	case "title":
		s.SetTitle(step.Text)
	case "content":
		s.SetContent(step.Text)
	case "bold":
		s.ToggleBold()
	case "italic":
		s.ToggleItalic()
	case "bigger":
		s.ChangeFontSize(true)
	case "smaller":
		s.ChangeFontSize(false)
	case "reset":
		s.ResetStyle()
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	return nil
}

// resolveNote turns a script note reference into an id. Full UUIDs pass
// through unchanged so the store's handling of unknown ids applies.
func resolveNote(state models.State, ref string) (uuid.UUID, error) {
	if ref == selectedRef {
		if !state.Editor.HasSelection() {
			return uuid.Nil, errNoSelection
		}
		return state.Editor.SelectedID, nil
	}

	if rest, ok := strings.CutPrefix(ref, "$"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return uuid.Nil, fmt.Errorf("bad note reference %q", ref)
		}
		if n < 0 || n >= len(state.Notes) {
			return uuid.Nil, fmt.Errorf("note index %d out of range (have %d notes)", n, len(state.Notes))
		}
		return state.Notes[n].ID, nil
	}

	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}

	note, err := state.FindByPrefix(ref)
	if err != nil {
		return uuid.Nil, err
	}
	return note.ID, nil
}

func init() {
	runCmd.Flags().StringP("format", "f", "text", "output format (text|yaml)")
	rootCmd.AddCommand(runCmd)
}
