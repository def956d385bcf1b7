package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/jarray/jarray"
)

// defaultNames is the list pushed when sort is run without arguments.
var defaultNames = []string{
	"Kamiya Nao",
	"Tachibana Arisu",
	"Minase Iori",
	"Futaba An",
	"Hisakawa Hayate",
	"Igarashi Kyouko",
	"Futami Mami",
}

func newSortCmd(s *session) *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Push values, sort them in place and print them",
		Long: `Push each value into an array, print "<size>, <capacity>", sort the
range [begin, end) and print one value per line.

Without arguments a built-in list of seven names is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = defaultNames
			}

			a := jarray.New(jarray.Config[string]{
				Observer: s.observer("sort"),
				Logger:   s.log,
			})
			defer a.Free()

			for _, v := range args {
				a.PushBack(v)
			}

			w := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(w, "%d, %d\n\n", a.Len(), a.Cap()); err != nil {
				return err
			}

			if reverse {
				jarray.SortFunc(a.Begin(), a.End(), func(x, y string) bool { return x > y })
			} else {
				jarray.Sort(a.Begin(), a.End())
			}
			s.log.Debug("sorted values", "count", a.Len(), "reverse", reverse)

			for v := range a.Values() {
				if _, err := fmt.Fprintln(w, v); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Sort in descending order")
	return cmd
}
