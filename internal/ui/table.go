package ui

import (
	"strings"
	"unicode/utf8"
)

const cellEllipsis = "..."

// Table accumulates rows and renders them as left-aligned columns
// separated by two spaces. Column widths track the widest cell seen so
// far, measured on visible characters, so styled cells line up with
// plain ones.
type Table struct {
	rows   [][]string
	widths []int
}

// NewTable returns a table with the given header row.
func NewTable(header ...string) *Table {
	table := &Table{}
	table.AddRow(header...)
	return table
}

// AddRow appends a row. Newlines and tabs inside cells are flattened to
// spaces.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = flattenCell(cell)
		if i >= len(t.widths) {
			t.widths = append(t.widths, 0)
		}
		if width := VisibleWidth(row[i]); width > t.widths[i] {
			t.widths[i] = width
		}
	}
	t.rows = append(t.rows, row)
}

// String renders the table, one line per row.
func (t *Table) String() string {
	var builder strings.Builder
	for _, row := range t.rows {
		for i, cell := range row {
			builder.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			builder.WriteString(strings.Repeat(" ", t.widths[i]-VisibleWidth(cell)+2))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Truncate caps a cell at max visible characters, appending an ellipsis
// when it was cut. ANSI color sequences pass through uncounted, so a
// styled cell truncates at the same point as its plain form.
func Truncate(value string, max int) string {
	value = flattenCell(value)
	if VisibleWidth(value) <= max {
		return value
	}

	budget := max - len(cellEllipsis)
	if budget <= 0 {
		return cellEllipsis
	}

	var builder strings.Builder
	visible := 0
	for i := 0; i < len(value); {
		if skip := ansiSequenceLen(value[i:]); skip > 0 {
			builder.WriteString(value[i : i+skip])
			i += skip
			continue
		}
		if visible == budget {
			break
		}
		_, size := utf8.DecodeRuneInString(value[i:])
		builder.WriteString(value[i : i+size])
		visible++
		i += size
	}
	return builder.String() + cellEllipsis
}

// VisibleWidth counts the characters a terminal would display, ignoring
// ANSI color sequences.
func VisibleWidth(value string) int {
	width := 0
	for i := 0; i < len(value); {
		if skip := ansiSequenceLen(value[i:]); skip > 0 {
			i += skip
			continue
		}
		_, size := utf8.DecodeRuneInString(value[i:])
		width++
		i += size
	}
	return width
}

// ansiSequenceLen returns the byte length of the color sequence at the
// start of s, or 0 when s does not start with one.
func ansiSequenceLen(s string) int {
	if len(s) < 2 || s[0] != '\x1b' || s[1] != '[' {
		return 0
	}
	for i := 2; i < len(s); i++ {
		if s[i] == 'm' {
			return i + 1
		}
	}
	return len(s)
}

func flattenCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}
