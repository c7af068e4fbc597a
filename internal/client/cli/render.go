package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/studentboard/internal/client/client"
)

func printSummary(w io.Writer, p *client.PageData) {
	fmt.Fprintf(w, "Total: %d  With difficulty: %d  Psychological concern: %d\n", p.Total, p.Difficulty, p.Psych)
}

// printTable writes the page as aligned columns. Column order follows the
// first row, as on the web dashboard.
func printTable(w io.Writer, p *client.PageData) error {
	fmt.Fprintf(w, "Page %d of %d\n", p.Page, p.TotalPages)

	if len(p.Data) == 0 {
		_, err := fmt.Fprintln(w, "(no records)")
		return err
	}

	headers := p.Data[0].Keys

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	cells := make([]string, len(headers))
	for _, row := range p.Data {
		for i, h := range headers {
			cells[i] = cleanCell(row.Text(h))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func cleanCell(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
