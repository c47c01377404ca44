package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// OutputFormatter renders rows as text or yaml.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// WriteRows outputs rows in the configured format.
func (f *OutputFormatter) WriteRows(rows []Row) error {
	if f.Format == "yaml" {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPLAIN\tWIRE\tBYTES\tCLASS\tMIN\tMAX\tEPSILON")
	for _, r := range rows {
		minV, maxV, eps := "-", "-", "-"
		if r.Limits != nil {
			minV, maxV, eps = r.Limits.Min, r.Limits.Max, r.Limits.Epsilon
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.Plain, optionalInt(r.Wire, "-"), optionalInt(r.Bytes, "unsized"),
			r.Class, minV, maxV, eps)
	}
	return tw.Flush()
}

func optionalInt(v *int, missing string) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}
