// Package formatter provides markdown formatting utilities.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// alignment of one table column, parsed from the colon markers of its
// separator cell.
type alignment int

const (
	alignNone alignment = iota
	alignLeft
	alignCenter
	alignRight
)

// FormatMarkdown takes a raw markdown string and formats it, specifically
// focusing on fixing table formatting issues. Table cells are padded to a
// common display width per column and separator rows are rebuilt to match,
// keeping their alignment markers. Everything outside tables passes
// through untouched.
func FormatMarkdown(content string) string {
	lines := strings.Split(content, "\n")

	var formattedLines []string

	var tableBuffer []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmedLine := strings.TrimSpace(line)

		// Check if the line looks like a table row
		// Simple heuristic: starts and ends with |
		if strings.HasPrefix(trimmedLine, "|") && strings.HasSuffix(trimmedLine, "|") {
			tableBuffer = append(tableBuffer, line)

			continue
		}

		// If we were buffering a table and hit a non-table line, process the buffer
		if len(tableBuffer) > 0 {
			formattedLines = append(formattedLines, processTable(tableBuffer)...)
			tableBuffer = nil
		}

		formattedLines = append(formattedLines, line)
	}

	// Process any remaining table at the end of the file
	if len(tableBuffer) > 0 {
		formattedLines = append(formattedLines, processTable(tableBuffer)...)
	}

	return strings.Join(formattedLines, "\n")
}

func processTable(rows []string) []string {
	// If it's just one line, it's not really a table we can format nicely (needs header+separator)
	if len(rows) < 2 {
		return rows
	}

	// 1. Parse all cells
	var table [][]string

	for _, row := range rows {
		// Remove leading/trailing pipes for splitting, but keep them in mind for reconstruction
		// Standard markdown table: | cell1 | cell2 |
		parts := strings.Split(row, "|")

		// The split will result in empty strings at start/end if the line starts/ends with pipe
		if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
			parts = parts[1:]
		}

		if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
			parts = parts[:len(parts)-1]
		}

		var cells []string
		for _, p := range parts {
			cells = append(cells, strings.TrimSpace(p))
		}

		table = append(table, cells)
	}

	// 2. Validate table structure
	if len(table) == 0 {
		return rows
	}

	colCount := len(table[0])
	// Find max columns
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Identify separator row (usually 2nd row, index 1)
	separatorRowIdx := -1
	if len(table) > 1 && isSeparatorRow(table[1]) {
		separatorRowIdx = 1
	}

	// Parse alignment markers off the separator so they survive the rebuild
	alignments := make([]alignment, colCount)

	if separatorRowIdx >= 0 {
		for i, cell := range table[separatorRowIdx] {
			if i < colCount {
				alignments[i] = parseAlignment(cell)
			}
		}
	}

	// 3. Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for rIdx, row := range table {
		// Skip separator row for width calculation
		if rIdx == separatorRowIdx {
			continue
		}

		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Ensure the separator keeps at least three dashes next to its colons
	for i := range colWidths {
		if min := minSeparatorWidth(alignments[i]); colWidths[i] < min {
			colWidths[i] = min
		}
	}

	// 4. Reconstruct lines
	var result []string

	for i, row := range table {
		var sb strings.Builder

		sb.WriteString("|")

		isSeparator := (i == separatorRowIdx)

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			content := ""
			if j < len(row) {
				content = row[j]
			}

			if isSeparator {
				sb.WriteString(separatorCell(alignments[j], colWidths[j]))
			} else {
				sb.WriteString(content)
				// Pad with spaces based on display width
				contentWidth := runewidth.StringWidth(content)

				padding := colWidths[j] - contentWidth
				if padding > 0 {
					sb.WriteString(strings.Repeat(" ", padding))
				}
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())
	}

	return result
}

// isSeparatorRow reports whether every cell consists of dashes, colons and
// spaces only.
func isSeparatorRow(cells []string) bool {
	for _, cell := range cells {
		trim := strings.TrimSpace(cell)
		trim = strings.ReplaceAll(trim, "-", "")
		trim = strings.ReplaceAll(trim, ":", "")
		trim = strings.ReplaceAll(trim, " ", "")

		if trim != "" {
			return false
		}
	}

	return true
}

// parseAlignment reads the colon markers off a separator cell.
func parseAlignment(cell string) alignment {
	cell = strings.TrimSpace(cell)

	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")

	switch {
	case left && right:
		return alignCenter
	case left:
		return alignLeft
	case right:
		return alignRight
	default:
		return alignNone
	}
}

// minSeparatorWidth returns the narrowest cell that still holds three
// dashes plus the alignment colons.
func minSeparatorWidth(a alignment) int {
	switch a {
	case alignCenter:
		return 5
	case alignLeft, alignRight:
		return 4
	default:
		return 3
	}
}

// separatorCell rebuilds one separator cell at the given display width.
func separatorCell(a alignment, width int) string {
	switch a {
	case alignCenter:
		return ":" + strings.Repeat("-", width-2) + ":"
	case alignLeft:
		return ":" + strings.Repeat("-", width-1)
	case alignRight:
		return strings.Repeat("-", width-1) + ":"
	default:
		return strings.Repeat("-", width)
	}
}
