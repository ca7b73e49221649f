package namespace

import (
	"fmt"

	"github.com/canonical/lxd-shmounts/lib/ns"
	"golang.org/x/sys/unix"
)

// Describe renders a handle as name:[inode] for logging.
func Describe(handle ns.Handle) string {
	return fmt.Sprintf("%s:[%s]", handle.Name(), inode(handle))
}

func inode(handle ns.Handle) string {
	var stat unix.Stat_t

	err := unix.Fstat(int(handle.Fd()), &stat)
	if err != nil {
		return "unknown"
	}

	return fmt.Sprintf("%d", stat.Ino)
}
