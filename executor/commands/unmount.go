package commands

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
)

type Unmount struct {
	Path   string
	Detach bool
}

func (u Unmount) Execute(context executor.Context) error {
	var err error
	if u.Detach {
		err = context.Mounter().Detach(u.Path)
	} else {
		err = context.Mounter().Unmount(u.Path)
	}

	if err != nil {
		return fmt.Errorf("unmount %s: %s", u.Path, err)
	}

	return nil
}

func (u Unmount) String() string {
	if u.Detach {
		return fmt.Sprintf("umount -l %s", u.Path)
	}
	return fmt.Sprintf("umount %s", u.Path)
}
