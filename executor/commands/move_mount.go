package commands

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
)

type MoveMount struct {
	Source string
	Target string
}

func (mm MoveMount) Execute(context executor.Context) error {
	err := context.Mounter().Move(mm.Source, mm.Target)
	if err != nil {
		return fmt.Errorf("move %s to %s: %s", mm.Source, mm.Target, err)
	}

	return nil
}

func (mm MoveMount) String() string {
	return fmt.Sprintf("mount --move %s %s", mm.Source, mm.Target)
}
