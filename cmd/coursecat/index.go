package main

import (
	"fmt"

	"github.com/fwojciec/coursecat"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	page, err := deps.Index.Index(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, page)
	return nil
}
