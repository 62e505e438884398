// ABOUTME: Export command for dumping the note snapshot.
// ABOUTME: Supports JSON, YAML and markdown with YAML frontmatter.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/harper/notepad/internal/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ExportNote struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"-"`
	CreatedAt time.Time `json:"created_at" yaml:"created"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated"`
}

type ExportData struct {
	ExportedAt time.Time    `json:"exported_at" yaml:"exported_at"`
	Version    string       `json:"version" yaml:"version"`
	Notes      []ExportNote `json:"notes" yaml:"notes"`
}

// exportYAMLNote carries content for whole-snapshot YAML, where the body is
// not split out into markdown.
type exportYAMLNote struct {
	ExportNote `yaml:",inline"`
	Content    string `yaml:"content"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes",
	Long:  `Export the note snapshot to stdout as JSON, YAML or markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		notePrefix, _ := cmd.Flags().GetString("note")

		notes := store.State().Notes
		if notePrefix != "" {
			note, err := store.State().FindByPrefix(notePrefix)
			if err != nil {
				return fmt.Errorf("failed to get note: %w", err)
			}
			notes = []models.Note{note}
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			return exportJSON(out, notes)
		case "yaml":
			return exportYAML(out, notes)
		case "md":
			return exportMarkdown(out, notes)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func toExportNote(n models.Note) ExportNote {
	return ExportNote{
		ID:        n.ID.String(),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func newExportData(notes []models.Note) ExportData {
	export := ExportData{
		ExportedAt: time.Now(),
		Version:    "1.0",
		Notes:      make([]ExportNote, 0, len(notes)),
	}
	for _, n := range notes {
		export.Notes = append(export.Notes, toExportNote(n))
	}
	return export
}

func exportJSON(w io.Writer, notes []models.Note) error {
	data, err := json.MarshalIndent(newExportData(notes), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func exportYAML(w io.Writer, notes []models.Note) error {
	export := newExportData(notes)
	doc := struct {
		ExportedAt time.Time        `yaml:"exported_at"`
		Version    string           `yaml:"version"`
		Notes      []exportYAMLNote `yaml:"notes"`
	}{ExportedAt: export.ExportedAt, Version: export.Version}
	for _, n := range export.Notes {
		doc.Notes = append(doc.Notes, exportYAMLNote{ExportNote: n, Content: n.Content})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// exportMarkdown writes each note as a frontmatter document. Documents are
// separated by a blank line.
func exportMarkdown(w io.Writer, notes []models.Note) error {
	for i, n := range notes {
		frontmatter, err := yaml.Marshal(toExportNote(n))
		if err != nil {
			return err
		}

		var sb strings.Builder
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("---\n")
		sb.Write(frontmatter)
		sb.WriteString("---\n\n")
		sb.WriteString(n.Content)
		sb.WriteString("\n")

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|yaml|md)")
	exportCmd.Flags().StringP("note", "n", "", "single note ID prefix to export")
	rootCmd.AddCommand(exportCmd)
}
