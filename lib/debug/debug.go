package debug

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/lib/ns"
	"golang.org/x/sys/unix"
)

var orig = inode(ns.TaskPath())

func inode(path string) string {
	var stat unix.Stat_t

	err := unix.Stat(path, &stat)
	if err != nil {
		return "unknown"
	}

	return fmt.Sprintf("%d", stat.Ino)
}

// MntNS describes the mount namespace of the calling thread relative to the
// one the process started in.
func MntNS() lager.Data {
	curInode := inode(ns.TaskPath())

	return lager.Data{"mntns-inode": curInode, "isOriginal": curInode == orig}
}
