package ns

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

const (
	nsfsMagic   = 0x6e736673
	procfsMagic = 0x9fa0
)

type ns struct{}

type handle struct {
	fd     uintptr
	name   string
	closed bool
}

var LinuxNamespacer = &ns{}

// TaskPath is the mount namespace of the calling thread. /proc/self would
// name the thread group leader, which may be attached elsewhere.
func TaskPath() string {
	return TaskPathOf(os.Getpid(), unix.Gettid())
}

func TaskPathOf(pid, tid int) string {
	return "/proc/" + strconv.Itoa(pid) + "/task/" + strconv.Itoa(tid) + "/ns/mnt"
}

func (*ns) GetFromPath(path string) (Handle, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open failed: %s", err)
	}

	var stat unix.Statfs_t
	if err := unix.Fstatfs(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("statfs failed: %s", err)
	}

	switch stat.Type {
	case nsfsMagic, procfsMagic:
	default:
		unix.Close(fd)
		return nil, ErrNotNamespace
	}

	return &handle{
		fd:   uintptr(fd),
		name: path,
	}, nil
}

func (*ns) Set(handle Handle) error {
	err := unix.Setns(int(handle.Fd()), unix.CLONE_NEWNS)
	if err != nil {
		return fmt.Errorf("failed to set namespace: %s", err)
	}

	return nil
}

func (*ns) Unshare() error {
	err := unix.Unshare(unix.CLONE_NEWNS)
	if err != nil {
		return fmt.Errorf("failed to unshare namespace: %s", err)
	}

	return nil
}

func (h *handle) Fd() uintptr {
	return h.fd
}

func (h *handle) Name() string {
	return h.name
}

func (h *handle) Close() error {
	if err := unix.Close(int(h.fd)); err != nil {
		return fmt.Errorf("close failed: %s", err)
	}

	h.closed = true
	return nil
}

func (h *handle) IsOpen() bool {
	return !h.closed
}
