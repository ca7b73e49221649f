package commands

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
)

type MountTmpfs struct {
	Target  string
	Options string
}

func (mt MountTmpfs) Execute(context executor.Context) error {
	err := context.Mounter().MountTmpfs(mt.Target, mt.Options)
	if err != nil {
		return fmt.Errorf("mount tmpfs on %s: %s", mt.Target, err)
	}

	return nil
}

func (mt MountTmpfs) String() string {
	return fmt.Sprintf("mount -t tmpfs -o %s tmpfs %s", mt.Options, mt.Target)
}
