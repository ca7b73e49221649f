package mounts

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/moby/sys/mountinfo"
	"golang.org/x/sys/unix"
)

// Entry is one record of the mount table.
type Entry struct {
	Source     string
	Mountpoint string
	FSType     string
	Optional   string
}

// Shared reports whether the mount belongs to a shared peer group.
func (e Entry) Shared() bool {
	for _, field := range strings.Fields(e.Optional) {
		if strings.HasPrefix(field, "shared:") {
			return true
		}
	}
	return false
}

//go:generate counterfeiter -o ../../fakes/mount_table.go --fake-name MountTable . Table
type Table interface {
	Entries() ([]Entry, error)
}

// TaskTable reads the mount table of the namespace the calling thread is
// attached to.
type TaskTable struct{}

func (TaskTable) Entries() ([]Entry, error) {
	f, err := os.Open(taskMountinfoPath())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	infos, err := mountinfo.GetMountsFromReader(f, nil)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{
			Source:     info.Source,
			Mountpoint: info.Mountpoint,
			FSType:     info.FSType,
			Optional:   info.Optional,
		})
	}

	return entries, nil
}

func taskMountinfoPath() string {
	return fmt.Sprintf("/proc/%d/task/%d/mountinfo", os.Getpid(), unix.Gettid())
}

// Descendants returns the paths, relative to root, of every entry mounted
// strictly below root. Order follows the table; a path mounted more than once
// is reported at its first occurrence only.
func Descendants(entries []Entry, root string) []string {
	prefix := path.Clean(root) + "/"

	seen := map[string]bool{}
	relative := []string{}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Mountpoint, prefix) {
			continue
		}

		rel := strings.Trim(strings.TrimPrefix(entry.Mountpoint, prefix), "/")
		if rel == "" || seen[rel] {
			continue
		}

		seen[rel] = true
		relative = append(relative, rel)
	}

	return relative
}

// Lookup returns the last entry mounted at mountpoint, which is the one
// visible at that path.
func Lookup(entries []Entry, mountpoint string) (Entry, bool) {
	mountpoint = path.Clean(mountpoint)

	var found Entry
	ok := false
	for _, entry := range entries {
		if entry.Mountpoint == mountpoint {
			found = entry
			ok = true
		}
	}

	return found, ok
}
