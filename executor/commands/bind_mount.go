package commands

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
)

type BindMount struct {
	Source    string
	Target    string
	Recursive bool
}

func (bm BindMount) Execute(context executor.Context) error {
	err := context.Mounter().Bind(bm.Source, bm.Target, bm.Recursive)
	if err != nil {
		return fmt.Errorf("bind %s to %s: %s", bm.Source, bm.Target, err)
	}

	return nil
}

func (bm BindMount) String() string {
	flag := "--bind"
	if bm.Recursive {
		flag = "--rbind"
	}
	return fmt.Sprintf("mount %s %s %s", flag, bm.Source, bm.Target)
}
