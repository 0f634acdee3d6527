package main

import (
	"fmt"

	"github.com/fwojciec/cardmill"
)

// Run executes the decks command.
func (c *DecksCmd) Run(deps *Dependencies) error {
	decks, err := deps.Publisher.ListDecks(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardmill.ErrorMessage(err))
		return err
	}

	if len(decks) == 0 {
		fmt.Fprintln(deps.Stdout, "No decks found.")
		return nil
	}

	for _, deck := range decks {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", deck.ID, deck.Name)
	}
	return nil
}
