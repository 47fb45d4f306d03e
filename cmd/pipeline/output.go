package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

// printResult writes the summary, bullet points and artifact paths of a run.
func printResult(w io.Writer, result *model.PipelineResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Summary:"))
	fmt.Fprintln(w, result.Summary)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Bullet Points:"))
	fmt.Fprintln(w, result.Bullets.String())

	fmt.Fprintln(w)
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Artifact", "Location"})
	tw.AppendRow(table.Row{"PDF Report", result.Document.Path})
	if result.Document.DocxPath != "" {
		tw.AppendRow(table.Row{"DOCX Report", result.Document.DocxPath})
	}
	tw.AppendRow(table.Row{"Audio Report", audioLocation(result)})
	fmt.Fprintln(w, tw.Render())
}

func audioLocation(result *model.PipelineResult) string {
	if result.Audio != nil {
		return result.Audio.Path
	}
	if result.AudioErr != nil {
		return fmt.Sprintf("not generated (%v)", result.AudioErr)
	}
	return "not generated"
}
