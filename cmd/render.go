package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"tasklist/internal/domain"
)

func renderSnapshot(w io.Writer, snap domain.Snapshot) {
	fmt.Fprintf(w, "%s  [filter: %s]\n", snap.Summary, snap.Filter)

	if len(snap.Tasks) == 0 {
		fmt.Fprintf(w, "  %s\n", snap.Filter.EmptyMessage())
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range snap.Tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		due := ""
		if t.DueDate != "" {
			due = "due " + t.DueDate
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\tcreated %s\t%s\n", mark, t.ID, t.Title, t.Priority, t.CreatedAt, due)
	}
	_ = tw.Flush()
}
