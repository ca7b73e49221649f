package commands

import (
	"fmt"
	"os"

	"github.com/canonical/lxd-shmounts/executor"
)

type CreateFile struct {
	Path string
	Mode os.FileMode
}

func (cf CreateFile) Execute(context executor.Context) error {
	err := context.Filesystem().CreateFile(cf.Path, cf.Mode)
	if err != nil {
		return fmt.Errorf("create file %s: %s", cf.Path, err)
	}

	return nil
}

func (cf CreateFile) String() string {
	return fmt.Sprintf("install -m %04o /dev/null %s", cf.Mode.Perm(), cf.Path)
}
