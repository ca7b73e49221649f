package conditions

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/lib/namespace"
)

type NamespaceExists struct {
	Name       string
	Repository namespace.Repository
}

func (n NamespaceExists) Satisfied(context executor.Context) (bool, error) {
	handle, err := n.Repository.Get(n.Name)
	if err != nil {
		return false, nil
	}

	return true, handle.Close()
}

func (n NamespaceExists) String() string {
	return fmt.Sprintf(`check if mount namespace "%s" exists`, n.Repository.PathOf(n.Name))
}
