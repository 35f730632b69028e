// Package report prints parts lists for people reading a terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/partslist/pkg/types"
)

// Printer writes parts list reports to a single writer. Styling is
// resolved against that writer, so plain buffers and pipes get no escape
// codes.
type Printer struct {
	w       io.Writer
	title   lipgloss.Style
	totals  lipgloss.Style
	nothing lipgloss.Style
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true),
		totals:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		nothing: r.NewStyle().Faint(true),
	}
}

// Dump prints every part ordered by key as catalog number, quantity in
// parentheses, and color, followed by unique and total part counts.
func (p *Printer) Dump(title string, list *types.PartsList) error {
	if _, err := fmt.Fprintln(p.w, p.title.Render(title)); err != nil {
		return err
	}

	parts := list.Sorted()
	if len(parts) == 0 {
		if _, err := fmt.Fprintln(p.w, p.nothing.Render("No parts.")); err != nil {
			return err
		}
	} else {
		var sb strings.Builder
		tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		for _, part := range parts {
			fmt.Fprintf(tw, "%s\t(%d)\t%s\n", part.CatalogNo, part.Quantity, part.ColorName)
		}
		tw.Flush()

		// Trim the padding tabwriter leaves on the last column.
		for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
			if _, err := fmt.Fprintln(p.w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
	}

	totals := fmt.Sprintf("Unique parts: %d, total parts: %d", list.Len(), list.TotalQuantity())
	_, err := fmt.Fprintln(p.w, p.totals.Render(totals))
	return err
}
