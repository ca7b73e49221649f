package commands

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
)

// Ensure runs Finally after Command whether or not Command succeeds. The
// error of Command takes precedence.
type Ensure struct {
	Command executor.Command
	Finally executor.Command
}

func (e Ensure) Execute(context executor.Context) error {
	err := e.Command.Execute(context)

	finallyErr := e.Finally.Execute(context)
	if err != nil {
		return err
	}

	if finallyErr != nil {
		return fmt.Errorf("cleanup: %s", finallyErr)
	}

	return nil
}

func (e Ensure) String() string {
	return fmt.Sprintf("%s; %s", e.Command, e.Finally)
}
