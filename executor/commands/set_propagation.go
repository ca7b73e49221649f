package commands

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
)

type SetPropagation struct {
	Path      string
	Shared    bool
	Recursive bool
}

func (sp SetPropagation) Execute(context executor.Context) error {
	mounter := context.Mounter()

	var err error
	if sp.Shared {
		err = mounter.MakeShared(sp.Path, sp.Recursive)
	} else {
		err = mounter.MakePrivate(sp.Path, sp.Recursive)
	}

	if err != nil {
		return fmt.Errorf("make %s %s: %s", sp.mode(), sp.Path, err)
	}

	return nil
}

func (sp SetPropagation) mode() string {
	mode := "private"
	if sp.Shared {
		mode = "shared"
	}
	if sp.Recursive {
		mode = "r" + mode
	}
	return mode
}

func (sp SetPropagation) String() string {
	return fmt.Sprintf("mount --make-%s %s", sp.mode(), sp.Path)
}
