package commands

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/lib/debug"
)

// UnshareNamespace moves the calling thread into a new mount namespace
// holding a copy of its current mount table.
type UnshareNamespace struct{}

func (UnshareNamespace) Execute(context executor.Context) error {
	err := context.Namespacer().Unshare()
	if err != nil {
		return fmt.Errorf("create mount namespace: %s", err)
	}

	context.Logger().Debug("unshared", debug.MntNS())

	return nil
}

func (UnshareNamespace) String() string {
	return "unshare --mount"
}
