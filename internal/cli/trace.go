package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/jarray/jarray"
)

// growthRow is one push observed by the trace command.
type growthRow struct {
	push, size, capacity int
	grew                 bool
}

func newTraceCmd(s *session) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show how capacity doubles as elements are pushed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("invalid --n %d: must not be negative", n)
			}

			a := jarray.New(jarray.Config[int]{
				Observer: s.observer("trace"),
				Logger:   s.log,
			})
			defer a.Free()

			return printGrowth(cmd.OutOrStdout(), traceGrowth(a, n))
		},
	}

	cmd.Flags().IntVar(&n, "n", 18, "Number of elements to push")
	return cmd
}

// traceGrowth pushes 0..n-1 into a and records size and capacity after
// each push.
func traceGrowth(a *jarray.Array[int], n int) []growthRow {
	rows := make([]growthRow, 0, n)
	for i := range n {
		prevCap := a.Cap()
		a.PushBack(i)
		rows = append(rows, growthRow{
			push:     i + 1,
			size:     a.Len(),
			capacity: a.Cap(),
			grew:     a.Cap() != prevCap,
		})
	}
	return rows
}

func printGrowth(w io.Writer, rows []growthRow) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Push", "Size", "Capacity", "Grew"})

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, r := range rows {
		grew := ""
		if r.grew {
			grew = "yes"
		}
		table.Append([]string{
			strconv.Itoa(r.push),
			strconv.Itoa(r.size),
			strconv.Itoa(r.capacity),
			grew,
		})
	}

	table.Render()
	return nil
}
