package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"seehuhn.de/go/piechart"
)

// writeTable lists the slices of c in drawing order.
func writeTable(w io.Writer, c *piechart.Chart) error {
	series := c.Series()
	total := float64(series.Total())

	table := tablewriter.NewTable(w)
	table.Header("#", "Value", "Share", "Start", "Sweep", "Colour")
	var rows [][]string
	for _, s := range c.Slices() {
		rows = append(rows, []string{
			fmt.Sprint(s.Position),
			fmt.Sprint(s.Value),
			fmt.Sprintf("%.1f%%", 100*float64(s.Value)/total),
			fmt.Sprintf("%.1f°", s.StartAngle),
			fmt.Sprintf("%.1f°", s.SweepAngle),
			s.Color.String(),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return errors.Wrap(err, "adding table rows")
	}
	if err := table.Render(); err != nil {
		return errors.Wrap(err, "rendering table")
	}
	return nil
}
