package main

import (
	"fmt"

	"github.com/mjaros/pageblocks"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageblocks.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Source: %s\n", doc.SourceURL)
	if doc.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title: %s\n", doc.Title)
	}
	if doc.FilePath != "" {
		fmt.Fprintf(deps.Stdout, "File: %s\n", doc.FilePath)
	}
	fmt.Fprintf(deps.Stdout, "Imported: %s\n\n", doc.ImportedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(deps.Stdout, doc.Content)
	return nil
}
