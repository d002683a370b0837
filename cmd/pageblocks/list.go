package main

import (
	"fmt"

	"github.com/mjaros/pageblocks"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pageblocks.DocumentFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.SourceURL = &c.Source
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageblocks.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'pageblocks import' to import a page.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d blocks\n",
			d.ID, d.ImportedAt.Format("2006-01-02 15:04"), d.SourceURL, d.Blocks)
		if c.Full {
			fmt.Fprintln(deps.Stdout, d.Content)
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
