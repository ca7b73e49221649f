package conditions

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/lib/mounts"
)

// MountedAs is satisfied when the mount visible at Path has filesystem type
// FSType.
type MountedAs struct {
	Path   string
	FSType string
}

func (m MountedAs) Satisfied(context executor.Context) (bool, error) {
	entries, err := context.MountTable().Entries()
	if err != nil {
		return false, fmt.Errorf("read mount table: %s", err)
	}

	entry, found := mounts.Lookup(entries, m.Path)
	if !found {
		return false, nil
	}

	return entry.FSType == m.FSType, nil
}

func (m MountedAs) String() string {
	return fmt.Sprintf(`check if "%s" is a %s mount`, m.Path, m.FSType)
}
