package commands

import (
	"fmt"
	"os"

	"github.com/canonical/lxd-shmounts/executor"
)

type MakeDir struct {
	Path    string
	Mode    os.FileMode
	Parents bool
}

func (md MakeDir) Execute(context executor.Context) error {
	var err error
	if md.Parents {
		err = context.Filesystem().MkdirAll(md.Path, md.Mode)
	} else {
		err = context.Filesystem().Mkdir(md.Path, md.Mode)
	}

	if err != nil {
		return fmt.Errorf("create directory %s: %s", md.Path, err)
	}

	return nil
}

func (md MakeDir) String() string {
	if md.Parents {
		return fmt.Sprintf("mkdir -p -m %04o %s", md.Mode.Perm(), md.Path)
	}
	return fmt.Sprintf("mkdir -m %04o %s", md.Mode.Perm(), md.Path)
}
