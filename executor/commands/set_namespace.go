package commands

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/lib/debug"
	"github.com/canonical/lxd-shmounts/lib/ns"
)

// SetNamespace attaches the calling thread to the mount namespace behind
// Handle. Name labels the namespace in logs and errors.
type SetNamespace struct {
	Name   string
	Handle ns.Handle
}

func (sn SetNamespace) Execute(context executor.Context) error {
	logger := context.Logger().Session("set-namespace", lager.Data{"name": sn.Name})

	err := context.Namespacer().Set(sn.Handle)
	if err != nil {
		return fmt.Errorf("attach to %s mount namespace: %s", sn.Name, err)
	}

	logger.Debug("attached", debug.MntNS())

	return nil
}

func (sn SetNamespace) String() string {
	return fmt.Sprintf("nsenter --mount=%s", sn.Handle.Name())
}
