package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/coursecat"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the archive command.
func (c *ArchiveCmd) Run(deps *Dependencies) error {
	archived, err := deps.Archive.FindArchivedResponses(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	if c.Export != "" {
		for _, a := range archived {
			if a.ID == c.Export {
				return writeJSON(deps.Stdout, a.Response)
			}
		}
		err := coursecat.Errorf(coursecat.ENOTFOUND, "archived response %s not found", c.Export)
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	if len(archived) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived responses.")
		return nil
	}

	if c.Format == FormatJSON {
		return writeJSON(deps.Stdout, archived)
	}
	renderArchive(deps.Stdout, archived)
	return nil
}

// renderArchive writes one row per archived response, newest first.
func renderArchive(w io.Writer, archived []*coursecat.ArchivedResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Archived", "Bytes", "Reason"})
	for _, a := range archived {
		var size int
		if a.Response != nil {
			size = len(a.Response.HTML)
		}
		t.AppendRow(table.Row{a.ID, a.CreatedAt.Local().Format("2006-01-02 15:04"), size, a.Reason})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
