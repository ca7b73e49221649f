package commands

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/executor"
)

// BestEffort runs a command whose failure must not stop the caller.
type BestEffort struct {
	Command executor.Command
}

func (b BestEffort) Execute(context executor.Context) error {
	err := b.Command.Execute(context)
	if err != nil {
		context.Logger().Debug("best-effort-failed", lager.Data{
			"command": b.Command.String(),
			"error":   err.Error(),
		})
	}

	return nil
}

func (b BestEffort) String() string {
	return fmt.Sprintf("%s || true", b.Command)
}
