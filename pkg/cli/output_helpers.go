package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"sheetregistry/internal/domain"
)

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintRecordsTable writes records as an aligned text table.
func PrintRecordsTable(w io.Writer, records []domain.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFULL NAME\tPOPULATION ID\tSTATUS\tLAST UPDATED")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.FullName, r.PopulationID, r.Status, r.LastUpdated)
	}
	return tw.Flush()
}
