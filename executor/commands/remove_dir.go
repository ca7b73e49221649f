package commands

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
)

type RemoveDir struct {
	Path string
}

func (rd RemoveDir) Execute(context executor.Context) error {
	err := context.Filesystem().Remove(rd.Path)
	if err != nil {
		return fmt.Errorf("remove directory %s: %s", rd.Path, err)
	}

	return nil
}

func (rd RemoveDir) String() string {
	return fmt.Sprintf("rmdir %s", rd.Path)
}
