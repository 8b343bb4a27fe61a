package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cours-de-latin/es"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tagStyle    = cellStyle.Foreground(lipgloss.Color("39"))
)

var columnTitles = map[es.Field]string{
	es.FieldWord:  "WORD",
	es.FieldPOS:   "TAG",
	es.FieldLemma: "LEMMA",
}

// renderTable prints one row per token, sentences one after another,
// with a column per field of format.
func renderTable(text es.Text, format []es.Field) string {
	headers := make([]string, len(format))
	for i, f := range format {
		headers[i] = columnTitles[f]
	}

	var rows [][]string
	for _, s := range text {
		for _, t := range s {
			row := make([]string, len(format))
			for i, f := range format {
				switch f {
				case es.FieldWord:
					row[i] = t.Word
				case es.FieldPOS:
					row[i] = string(t.Tag)
				case es.FieldLemma:
					row[i] = t.Lemma
				}
			}
			rows = append(rows, row)
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col < len(format) && format[col] == es.FieldPOS:
				return tagStyle
			}
			return cellStyle
		}).
		String()
}
