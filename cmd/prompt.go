package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

var errCancelled = errors.New("cancelled")

// confirm asks a yes/no question unless yes is already set. Without a
// terminal there is nobody to ask, so it fails instead.
func confirm(title string, yes bool) error {
	if yes {
		return nil
	}
	if !stdinIsTerminal() {
		return errNeedConfirm
	}

	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return fmt.Errorf("confirmation prompt: %w", err)
	}
	if !ok {
		return errCancelled
	}
	return nil
}
