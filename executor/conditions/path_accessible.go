package conditions

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
)

type PathAccessible struct {
	Path string
}

func (p PathAccessible) Satisfied(context executor.Context) (bool, error) {
	return context.Filesystem().Accessible(p.Path), nil
}

func (p PathAccessible) String() string {
	return fmt.Sprintf(`check if path "%s" is accessible`, p.Path)
}
